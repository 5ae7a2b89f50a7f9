package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hamming84.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
layout: low-data
layouts:
  - name: low-data
    data: [0, 1, 2, 3]
    check: [4, 5, 6]
    coverage: [7, 11, 13]
    parity: 7
simulation:
  ber: 0.05
  iterations: 250
  seed: 42
transport:
  url: ws://receiver:8765
  write_timeout: 2s
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := &Config{
		Layout: "low-data",
		Layouts: []LayoutConfig{{
			Name:     "low-data",
			Data:     []uint8{0, 1, 2, 3},
			Check:    []uint8{4, 5, 6},
			Coverage: []uint8{7, 11, 13},
			Parity:   7,
		}},
		Simulation: SimulationConfig{BER: 0.05, Iterations: 250, Seed: 42},
		Transport:  TransportConfig{URL: "ws://receiver:8765", WriteTimeout: 2 * time.Second},
		Log:        LogConfig{Level: "debug"},
	}
	if diff := pretty.Compare(want, cfg); diff != "" {
		t.Errorf("Load(): -want/+got:\n%s", diff)
	}

	l, err := cfg.ResolveLayout()
	if err != nil {
		t.Fatalf("ResolveLayout() error: %v", err)
	}
	if l.Name() != "low-data" || l.Spec().Parity != 7 {
		t.Errorf("ResolveLayout() = %+v", l.Spec())
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "layout: positional\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Default()
	want.Layout = "positional"
	if diff := pretty.Compare(want, cfg); diff != "" {
		t.Errorf("Load(): -want/+got:\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "layout: [unterminated"},
		{name: "unknown layout", body: "layout: nope"},
		{name: "bad BER", body: "simulation:\n  ber: 1.5"},
		{name: "short data", body: "layout: x\nlayouts:\n  - name: x\n    data: [0, 1]\n    check: [4, 5, 6]\n    coverage: [7, 11, 13]\n    parity: 7"},
		{name: "invalid code", body: "layout: x\nlayouts:\n  - name: x\n    data: [0, 1, 2, 3]\n    check: [4, 5, 6]\n    coverage: [7, 7, 7]\n    parity: 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Errorf("Load() = nil error, want error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load(missing) = nil error, want error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "default", modify: func(*Config) {}},
		{name: "negative BER", modify: func(c *Config) { c.Simulation.BER = -0.1 }, wantErr: true},
		{name: "BER too high", modify: func(c *Config) { c.Simulation.BER = 1.5 }, wantErr: true},
		{name: "zero iterations", modify: func(c *Config) { c.Simulation.Iterations = 0 }, wantErr: true},
		{name: "negative timeout", modify: func(c *Config) { c.Transport.WriteTimeout = -time.Second }, wantErr: true},
		{name: "unknown layout", modify: func(c *Config) { c.Layout = "invalid" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Errorf("Validate(nil) = nil error")
	}
}

func TestConfig_ApplyOverrides(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplySimulation(SimulationConfig{Iterations: 10, Seed: 3}); err != nil {
		t.Fatalf("ApplySimulation() error: %v", err)
	}
	if err := cfg.ApplyTransport(TransportConfig{URL: "ws://other:1"}); err != nil {
		t.Fatalf("ApplyTransport() error: %v", err)
	}

	want := Default()
	want.Simulation.Iterations = 10
	want.Simulation.Seed = 3
	want.Transport.URL = "ws://other:1"
	if diff := pretty.Compare(want, cfg); diff != "" {
		t.Errorf("overrides: -want/+got:\n%s", diff)
	}
}
