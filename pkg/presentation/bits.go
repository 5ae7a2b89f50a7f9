package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

// PresentationLayer convierte entre texto y los valores del códec
// (nibbles y palabras código) para mostrarlos o leerlos de la línea de comandos.
type PresentationLayer struct {
	layout *hamming.Layout
}

// NewPresentationLayer crea una nueva instancia para layout.
func NewPresentationLayer(layout *hamming.Layout) *PresentationLayer {
	return &PresentationLayer{layout: layout}
}

// ParseValue interpreta un literal binario (0b...), hexadecimal (0x...) o
// decimal y verifica que no supere max.
func ParseValue(s string, max uint64) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("valor vacío")
	}
	s = strings.ReplaceAll(s, "_", "")

	var (
		v   uint64
		err error
	)
	switch lower := strings.ToLower(s); {
	case strings.HasPrefix(lower, "0b"):
		v, err = strconv.ParseUint(s[2:], 2, 64)
	case strings.HasPrefix(lower, "0x"):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	default:
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "valor inválido %q", s)
	}
	if v > max {
		return 0, errors.Errorf("valor %d fuera de rango (máximo %d)", v, max)
	}
	return v, nil
}

// ParseNibble interpreta un valor de 4 bits.
func ParseNibble(s string) (hamming.Nibble, error) {
	v, err := ParseValue(s, 0x0F)
	if err != nil {
		return 0, errors.Wrap(err, "nibble")
	}
	return hamming.Nibble(v), nil
}

// ParseCodeword interpreta una palabra código de 8 bits.
func ParseCodeword(s string) (hamming.Codeword, error) {
	v, err := ParseValue(s, 0xFF)
	if err != nil {
		return 0, errors.Wrap(err, "palabra código")
	}
	return hamming.Codeword(v), nil
}

// FormatBits devuelve los width bits bajos de v, del más significativo al menos.
func FormatBits(v uint8, width int) string {
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		sb.WriteByte('0' + v>>i&1)
	}
	return sb.String()
}

// Desglose describe, de bit 7 a bit 0, qué bit lógico ocupa cada posición
// de c y su valor, por ejemplo "[d3=1 d2=0 d1=0 d0=0 h2=0 h1=1 h0=1 p=1]".
func (p *PresentationLayer) Desglose(c hamming.Codeword) string {
	labels := p.Etiquetas()
	parts := make([]string, 0, 8)
	for pos := 7; pos >= 0; pos-- {
		parts = append(parts, fmt.Sprintf("%s=%d", labels[pos], c>>pos&1))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Etiquetas devuelve el nombre lógico de cada posición física.
func (p *PresentationLayer) Etiquetas() [8]string {
	var labels [8]string
	spec := p.layout.Spec()
	for j, pos := range spec.Data {
		labels[pos] = fmt.Sprintf("d%d", j)
	}
	for i, pos := range spec.Check {
		labels[pos] = fmt.Sprintf("h%d", i)
	}
	labels[spec.Parity] = "p"
	return labels
}

// ObtenerEstadisticas resume una decodificación para mostrarla o registrarla.
func (p *PresentationLayer) ObtenerEstadisticas(in hamming.Codeword) map[string]interface{} {
	fixed, kind := p.layout.Correct(in)
	stats := map[string]interface{}{
		"layout":    p.layout.Name(),
		"recibido":  FormatBits(uint8(in), 8),
		"corregido": FormatBits(uint8(fixed), 8),
		"datos":     FormatBits(uint8(p.layout.Extract(fixed)), 4),
		"error":     kind.String(),
		"confiable": kind.Reliable(),
	}
	if diff := in ^ fixed; diff != 0 {
		for pos := 0; pos < 8; pos++ {
			if diff>>pos&1 == 1 {
				stats["bit_corregido"] = pos
			}
		}
	}
	return stats
}
