package hamming

// Classify combina el síndrome s y la discrepancia de paridad global de c
// en un ErrorKind y devuelve la palabra corregida.
//
//	síndrome  discrepancia  resultado
//	0         no            NoError, c sin cambios
//	0         sí            ParityBitError, se invierte el bit de paridad
//	≠0        sí            SingleBitError, se invierte SyndromeToBit[s]
//	≠0        no            DoubleBitError, se invierte SyndromeToBit[s] igual
//
// En el caso DoubleBitError la palabra devuelta es sólo un intento: el
// código no puede corregir dos errores y el resultado no es confiable.
func (l *Layout) Classify(c Codeword, s Syndrome, mismatch bool) (ErrorKind, Codeword) {
	s &= 0x07
	switch {
	case s == 0 && !mismatch:
		return NoError, c
	case s == 0:
		return ParityBitError, c ^ l.parityBit
	case mismatch:
		return SingleBitError, c ^ 1<<l.synToBit[s]
	default:
		return DoubleBitError, c ^ 1<<l.synToBit[s]
	}
}
