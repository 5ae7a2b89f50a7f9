package presentation

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

func TestParseNibble(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    hamming.Nibble
		wantErr bool
	}{
		{name: "binary", input: "0b1010", want: 10},
		{name: "hex", input: "0xF", want: 15},
		{name: "decimal", input: "7", want: 7},
		{name: "underscores", input: "0b10_01", want: 9},
		{name: "upper prefix", input: "0B0001", want: 1},
		{name: "too large", input: "16", wantErr: true},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "0bxyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNibble(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNibble() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNibble() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCodeword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    hamming.Codeword
		wantErr bool
	}{
		{name: "binary", input: "0b00011110", want: 0x1E},
		{name: "hex", input: "0xff", want: 0xFF},
		{name: "decimal", input: "135", want: 0x87},
		{name: "too large", input: "0x100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodeword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCodeword() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCodeword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatBits(t *testing.T) {
	if got := FormatBits(0x1E, 8); got != "00011110" {
		t.Errorf("FormatBits(0x1E, 8) = %q", got)
	}
	if got := FormatBits(0x05, 4); got != "0101" {
		t.Errorf("FormatBits(0x05, 4) = %q", got)
	}
}

func TestPresentationLayer_Desglose(t *testing.T) {
	tests := []struct {
		name   string
		layout *hamming.Layout
		in     hamming.Codeword
		want   string
	}{
		{
			name:   "canonical",
			layout: hamming.Canonical,
			in:     0b10000111,
			want:   "[d3=1 d2=0 d1=0 d0=0 h2=0 h1=1 h0=1 p=1]",
		},
		{
			name:   "positional",
			layout: hamming.Positional,
			in:     0b11010010,
			want:   "[h0=1 h1=1 d3=0 h2=1 d2=0 d1=0 d0=1 p=0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPresentationLayer(tt.layout)
			if got := p.Desglose(tt.in); got != tt.want {
				t.Errorf("Desglose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresentationLayer_ObtenerEstadisticas(t *testing.T) {
	p := NewPresentationLayer(hamming.Canonical)

	got := p.ObtenerEstadisticas(0b00011100)
	want := map[string]interface{}{
		"layout":        "canonical",
		"recibido":      "00011100",
		"corregido":     "00011110",
		"datos":         "0001",
		"error":         "SingleBitError",
		"confiable":     true,
		"bit_corregido": 1,
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("ObtenerEstadisticas(): -want/+got:\n%s", diff)
	}
}
