// Package hamming implementa el código Hamming(8,4) SECDED: corrige
// cualquier error de un bit y detecta (sin corregir) cualquier error de dos
// bits en una palabra de 8 bits que transporta 4 bits de datos.
//
// El orden físico de los bits lo fija un Layout. Las funciones del paquete
// (Encode, Decode) usan el layout Canonical.
package hamming

import "fmt"

// Nibble es un valor de 4 bits (0-15).
type Nibble uint8

// Codeword es una palabra código de 8 bits.
type Codeword uint8

// Syndrome es el síndrome de 3 bits de una palabra código.
type Syndrome uint8

// ErrorKind clasifica la corrupción detectada al decodificar.
type ErrorKind int

const (
	// NoError: palabra consistente, los datos son confiables.
	NoError ErrorKind = iota
	// SingleBitError: uno de los 7 bits de datos/control estaba invertido y se corrigió.
	SingleBitError
	// ParityBitError: sólo el bit de paridad global estaba invertido.
	ParityBitError
	// DoubleBitError: dos bits invertidos. Se detecta pero no se puede
	// corregir; los datos devueltos no son confiables.
	DoubleBitError
)

var kindNames = [...]string{
	NoError:        "NoError",
	SingleBitError: "SingleBitError",
	ParityBitError: "ParityBitError",
	DoubleBitError: "DoubleBitError",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Reliable indica si los datos decodificados con esta clasificación son
// confiables. Sólo DoubleBitError devuelve false.
func (k ErrorKind) Reliable() bool {
	return k != DoubleBitError
}
