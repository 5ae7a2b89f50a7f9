package hamming

import "github.com/pkg/errors"

// ErrNibbleRange se devuelve cuando el valor a codificar no cabe en 4 bits.
var ErrNibbleRange = errors.New("el valor no cabe en 4 bits")

// Encode codifica n como palabra Hamming(8,4). Sólo se usan los 4 bits
// bajos de n; el resto se ignora.
func (l *Layout) Encode(n Nibble) Codeword {
	var c Codeword
	for j, row := range l.gen {
		if n>>j&1 == 1 {
			c ^= row
		}
	}
	return c
}

// EncodeChecked es como Encode pero rechaza valores mayores que 15.
func (l *Layout) EncodeChecked(n Nibble) (Codeword, error) {
	if n > 0x0F {
		return 0, errors.Wrapf(ErrNibbleRange, "valor %d", n)
	}
	return l.Encode(n), nil
}

// Encode codifica n con el layout Canonical.
func Encode(n Nibble) Codeword {
	return Canonical.Encode(n)
}
