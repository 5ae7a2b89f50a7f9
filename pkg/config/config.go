// Package config carga la configuración de las herramientas hamming84.
//
// La configuración sale de un archivo YAML opcional; los valores que no
// aparecen conservan los de Default(). Los flags de la línea de comandos se
// aplican encima con ApplySimulation / ApplyTransport.
package config

import (
	"os"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

// Config contiene la configuración completa.
type Config struct {
	// Layout es el nombre del layout activo: uno incluido (canonical,
	// positional) o uno definido en Layouts.
	Layout string `yaml:"layout"`

	// Layouts define layouts adicionales.
	Layouts []LayoutConfig `yaml:"layouts,omitempty"`

	Simulation SimulationConfig `yaml:"simulation"`
	Transport  TransportConfig  `yaml:"transport"`
	Log        LogConfig        `yaml:"log"`
}

// LayoutConfig es la forma YAML de hamming.LayoutSpec.
type LayoutConfig struct {
	Name     string  `yaml:"name"`
	Data     []uint8 `yaml:"data"`     // posiciones de d0..d3
	Check    []uint8 `yaml:"check"`    // posiciones de h0..h2
	Coverage []uint8 `yaml:"coverage"` // máscara de datos cubierta por h0..h2
	Parity   uint8   `yaml:"parity"`
}

// SimulationConfig configura el canal ruidoso simulado.
type SimulationConfig struct {
	BER        float64 `yaml:"ber"`
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"` // 0 = semilla aleatoria
}

// TransportConfig configura el envío por WebSocket.
type TransportConfig struct {
	URL          string        `yaml:"url"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LogConfig configura el logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // prefijo de los archivos de log; vacío = sólo consola
}

// Default devuelve la configuración por defecto.
func Default() *Config {
	return &Config{
		Layout: hamming.Canonical.Name(),
		Simulation: SimulationConfig{
			BER:        0.01,
			Iterations: 1000,
		},
		Transport: TransportConfig{
			URL:          "ws://localhost:9000",
			WriteTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load lee path sobre los valores por defecto y valida el resultado.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "leyendo configuración")
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "interpretando %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "configuración %s", path)
	}
	return cfg, nil
}

// Validate verifica que la configuración sea válida.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("configuración es nil")
	}
	if c.Simulation.BER < 0.0 || c.Simulation.BER > 1.0 {
		return errors.Errorf("BER inválido: %.3f (debe estar entre 0.0 y 1.0)", c.Simulation.BER)
	}
	if c.Simulation.Iterations <= 0 {
		return errors.Errorf("cantidad de iteraciones inválida: %d", c.Simulation.Iterations)
	}
	if c.Transport.WriteTimeout < 0 {
		return errors.Errorf("write_timeout negativo: %v", c.Transport.WriteTimeout)
	}
	if _, err := c.ResolveLayout(); err != nil {
		return err
	}
	return nil
}

// ResolveLayout construye el layout activo.
func (c *Config) ResolveLayout() (*hamming.Layout, error) {
	for _, lc := range c.Layouts {
		if lc.Name == c.Layout {
			spec, err := lc.Spec()
			if err != nil {
				return nil, err
			}
			l, err := hamming.NewLayout(spec)
			if err != nil {
				return nil, errors.Wrapf(err, "layout %q", lc.Name)
			}
			return l, nil
		}
	}
	if l, ok := hamming.LayoutByName(c.Layout); ok {
		return l, nil
	}
	return nil, errors.Errorf("layout desconocido: %q", c.Layout)
}

// Spec convierte la forma YAML en un hamming.LayoutSpec.
func (lc LayoutConfig) Spec() (hamming.LayoutSpec, error) {
	spec := hamming.LayoutSpec{Name: lc.Name, Parity: lc.Parity}
	if len(lc.Data) != len(spec.Data) {
		return spec, errors.Errorf("layout %q: data debe tener %d posiciones, tiene %d", lc.Name, len(spec.Data), len(lc.Data))
	}
	if len(lc.Check) != len(spec.Check) {
		return spec, errors.Errorf("layout %q: check debe tener %d posiciones, tiene %d", lc.Name, len(spec.Check), len(lc.Check))
	}
	if len(lc.Coverage) != len(spec.Coverage) {
		return spec, errors.Errorf("layout %q: coverage debe tener %d máscaras, tiene %d", lc.Name, len(spec.Coverage), len(lc.Coverage))
	}
	copy(spec.Data[:], lc.Data)
	copy(spec.Check[:], lc.Check)
	for i, m := range lc.Coverage {
		spec.Coverage[i] = hamming.Nibble(m)
	}
	return spec, nil
}

// ApplySimulation copia sobre c.Simulation los campos no nulos de o.
func (c *Config) ApplySimulation(o SimulationConfig) error {
	if err := copier.CopyWithOption(&c.Simulation, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return errors.Wrap(err, "aplicando flags de simulación")
	}
	return nil
}

// ApplyTransport copia sobre c.Transport los campos no nulos de o.
func (c *Config) ApplyTransport(o TransportConfig) error {
	if err := copier.CopyWithOption(&c.Transport, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return errors.Wrap(err, "aplicando flags de transporte")
	}
	return nil
}
