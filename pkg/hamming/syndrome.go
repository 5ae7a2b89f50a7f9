package hamming

import "math/bits"

// Syndrome calcula el síndrome de c y si la paridad global no coincide con
// el XOR de los otros 7 bits.
func (l *Layout) Syndrome(c Codeword) (Syndrome, bool) {
	var s Syndrome
	for i, row := range l.checks {
		s |= Syndrome(parity(c&row)) << i
	}
	mismatch := parity(c&^l.parityBit) != parity(c&l.parityBit)
	return s, mismatch
}

func parity(c Codeword) uint8 {
	return uint8(bits.OnesCount8(uint8(c)) & 1)
}
