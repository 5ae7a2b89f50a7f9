package hamming

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// noBit marca la entrada 0 de la tabla síndrome→bit (síndrome nulo, no hay bit que corregir).
const noBit = 0xFF

// ErrInvalidLayout se devuelve cuando un LayoutSpec no describe un código SECDED válido.
var ErrInvalidLayout = errors.New("layout inválido")

// LayoutSpec describe qué posición física (0-7) ocupa cada bit lógico.
//
// Data[j] es la posición del bit de datos dj, Check[i] la del bit de
// paridad Hamming hi y Coverage[i] la máscara (4 bits) de los datos que
// hi cubre. Parity es la posición del bit de paridad global.
type LayoutSpec struct {
	Name     string
	Data     [4]uint8
	Check    [3]uint8
	Coverage [3]Nibble
	Parity   uint8
}

// Layout es un LayoutSpec validado junto con las tablas derivadas de él:
// filas de la matriz generadora, filas de la matriz de control y la tabla
// síndrome→bit. Es inmutable y se puede usar desde varias goroutines.
type Layout struct {
	spec      LayoutSpec
	gen       [4]Codeword
	checks    [3]Codeword
	synToBit  [8]uint8
	parityBit Codeword
}

// NewLayout valida spec y calcula las matrices del código.
func NewLayout(spec LayoutSpec) (*Layout, error) {
	var used uint8
	mark := func(what string, pos uint8) error {
		if pos > 7 {
			return errors.Wrapf(ErrInvalidLayout, "%s: posición %d fuera de rango (0-7)", what, pos)
		}
		if used&(1<<pos) != 0 {
			return errors.Wrapf(ErrInvalidLayout, "%s: posición %d repetida", what, pos)
		}
		used |= 1 << pos
		return nil
	}

	for j, p := range spec.Data {
		if err := mark(fmt.Sprintf("d%d", j), p); err != nil {
			return nil, err
		}
	}
	for i, p := range spec.Check {
		if err := mark(fmt.Sprintf("h%d", i), p); err != nil {
			return nil, err
		}
		if spec.Coverage[i] > 0x0F {
			return nil, errors.Wrapf(ErrInvalidLayout, "h%d: cobertura 0x%02x no cabe en 4 bits", i, spec.Coverage[i])
		}
	}
	if err := mark("p", spec.Parity); err != nil {
		return nil, err
	}

	l := &Layout{spec: spec, parityBit: 1 << spec.Parity}

	// Filas de control: hi junto con los datos que cubre.
	for i := range spec.Check {
		row := Codeword(1) << spec.Check[i]
		for j := range spec.Data {
			if spec.Coverage[i]>>j&1 == 1 {
				row |= 1 << spec.Data[j]
			}
		}
		l.checks[i] = row
	}

	// Columnas de la matriz de control: cada posición salvo la de paridad
	// global debe producir un síndrome distinto y no nulo.
	for i := range l.synToBit {
		l.synToBit[i] = noBit
	}
	for pos := uint8(0); pos < 8; pos++ {
		if pos == spec.Parity {
			continue
		}
		col := l.column(pos)
		if col == 0 {
			return nil, errors.Wrapf(ErrInvalidLayout, "bit %d no está cubierto por ningún bit de control", pos)
		}
		if prev := l.synToBit[col]; prev != noBit {
			return nil, errors.Wrapf(ErrInvalidLayout, "bits %d y %d comparten síndrome %03b", prev, pos, col)
		}
		l.synToBit[col] = pos
	}

	// Filas de la generadora: dj, los bits de control que lo cubren y la
	// paridad global de todo lo anterior.
	for j := range spec.Data {
		row := Codeword(1) << spec.Data[j]
		for i := range spec.Check {
			if spec.Coverage[i]>>j&1 == 1 {
				row |= 1 << spec.Check[i]
			}
		}
		if bits.OnesCount8(uint8(row))&1 == 1 {
			row |= l.parityBit
		}
		l.gen[j] = row
	}

	return l, nil
}

// MustLayout es como NewLayout pero entra en pánico si spec no es válido.
// Pensado para inicializar variables de paquete.
func MustLayout(spec LayoutSpec) *Layout {
	l, err := NewLayout(spec)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) column(pos uint8) Syndrome {
	var s Syndrome
	for i, row := range l.checks {
		if row>>pos&1 == 1 {
			s |= 1 << i
		}
	}
	return s
}

// Name devuelve el nombre del layout.
func (l *Layout) Name() string { return l.spec.Name }

// Spec devuelve el descriptor a partir del cual se construyó el layout.
func (l *Layout) Spec() LayoutSpec { return l.spec }

// GeneratorRows devuelve la palabra código de cada bit de datos d0..d3.
func (l *Layout) GeneratorRows() [4]Codeword { return l.gen }

// CheckRows devuelve las filas de la matriz de control (sin la paridad global).
func (l *Layout) CheckRows() [3]Codeword { return l.checks }

// SyndromeToBit devuelve la tabla síndrome→posición. La entrada 0 vale 0xFF.
func (l *Layout) SyndromeToBit() [8]uint8 { return l.synToBit }

// Canonical: bits 7..4 = d3..d0, bit 3 = d2^d1^d0, bit 2 = d3^d1^d0,
// bit 1 = d3^d2^d0, bit 0 = paridad global.
var Canonical = MustLayout(LayoutSpec{
	Name:     "canonical",
	Data:     [4]uint8{4, 5, 6, 7},
	Check:    [3]uint8{1, 2, 3},
	Coverage: [3]Nibble{0b1101, 0b1011, 0b0111},
	Parity:   0,
})

// Positional sigue la numeración posicional clásica de Hamming con el bit 7
// como posición 1: los bits de control quedan en las potencias de dos
// (bits 7, 6 y 4) y los datos en bits 5, 3, 2, 1. Bit 0 = paridad global.
var Positional = MustLayout(LayoutSpec{
	Name:     "positional",
	Data:     [4]uint8{1, 2, 3, 5},
	Check:    [3]uint8{7, 6, 4},
	Coverage: [3]Nibble{0b1101, 0b1011, 0b0111},
	Parity:   0,
})

var builtin = []*Layout{Canonical, Positional}

// Layouts devuelve los layouts incluidos en el paquete.
func Layouts() []*Layout {
	out := make([]*Layout, len(builtin))
	copy(out, builtin)
	return out
}

// LayoutByName busca un layout incluido por nombre.
func LayoutByName(name string) (*Layout, bool) {
	for _, l := range builtin {
		if l.spec.Name == name {
			return l, true
		}
	}
	return nil, false
}
