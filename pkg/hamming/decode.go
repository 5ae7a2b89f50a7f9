package hamming

// Correct corrige c según su síndrome y devuelve la palabra resultante
// junto con la clasificación del error.
func (l *Layout) Correct(c Codeword) (Codeword, ErrorKind) {
	s, mismatch := l.Syndrome(c)
	kind, fixed := l.Classify(c, s, mismatch)
	return fixed, kind
}

// Extract devuelve los 4 bits de datos de c sin corregir nada.
func (l *Layout) Extract(c Codeword) Nibble {
	var n Nibble
	for j, pos := range l.spec.Data {
		n |= Nibble(c>>pos&1) << j
	}
	return n
}

// Decode corrige c y extrae los datos. Con DoubleBitError el valor
// devuelto es el mejor esfuerzo y no debe usarse como correcto.
func (l *Layout) Decode(c Codeword) (Nibble, ErrorKind) {
	fixed, kind := l.Correct(c)
	return l.Extract(fixed), kind
}

// Decode decodifica c con el layout Canonical.
func Decode(c Codeword) (Nibble, ErrorKind) {
	return Canonical.Decode(c)
}
