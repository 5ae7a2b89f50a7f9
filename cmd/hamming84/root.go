package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/config"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
	hlog "github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/log"
)

// app es el estado compartido por los subcomandos, armado en PersistentPreRunE.
type app struct {
	configPath string
	layoutName string
	logLevel   string
	logFile    string

	cfg    *config.Config
	layout *hamming.Layout
	log    *hlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hamming84",
		Short: "Códec Hamming(8,4) SECDED",
		Long: `hamming84 codifica nibbles en palabras Hamming(8,4), decodifica y
clasifica palabras recibidas, verifica el códec de forma exhaustiva y simula
un canal ruidoso.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "archivo YAML de configuración")
	flags.StringVar(&a.layoutName, "layout", "", "layout de bits (canonical, positional o uno del archivo)")
	flags.StringVar(&a.logLevel, "log-level", "", "nivel de log (debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "prefijo de archivos de log JSON")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newVerifyCmd(a),
		newSimulateCmd(a),
		newSendCmd(a),
		newLayoutsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.layoutName != "" {
		cfg.Layout = a.layoutName
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}

	layout, err := cfg.ResolveLayout()
	if err != nil {
		return err
	}

	logger, err := hlog.NewLoggerTo(cmd.ErrOrStderr(), "hamming84", cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "configurando logging")
	}
	if cfg.Log.File != "" {
		hlog.AddFileHook(logger, cfg.Log.File)
	}

	a.cfg, a.layout, a.log = cfg, layout, logger
	a.log.WithField("layout", layout.Name()).Debug("configuración cargada")
	return nil
}
