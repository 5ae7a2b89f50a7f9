// Package log construye los loggers de logrus que usan los comandos.
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Logger envuelve una entrada de logrus con el campo "name" del módulo.
type Logger struct {
	*logrus.Entry
}

// NewLogger crea un logger de texto en stderr con el nivel indicado.
func NewLogger(module, level string) (*Logger, error) {
	return NewLoggerTo(os.Stderr, module, level)
}

// NewLoggerTo es como NewLogger pero escribe en out.
func NewLoggerTo(out io.Writer, module, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "nivel de log %q", level)
	}

	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
	})
	base.SetOutput(out)
	base.SetLevel(lvl)

	return &Logger{base.WithField("name", module)}, nil
}

// AddFileHook agrega un hook que escribe los eventos en JSON a
// path.info (debug/info) y path.warn (warn o superior).
func AddFileHook(logger *Logger, path string) {
	pathMap := lfshook.PathMap{
		logrus.DebugLevel: path + ".info",
		logrus.InfoLevel:  path + ".info",
		logrus.WarnLevel:  path + ".warn",
		logrus.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&logrus.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Logger.AddHook(hook)
}
