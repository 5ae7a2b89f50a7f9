// Package selftest verifica exhaustivamente un códec Hamming(8,4): los 16
// valores de datos sin error, con cada uno de los 8 errores de un bit y con
// cada una de las 28 combinaciones de dos bits.
package selftest

import (
	"fmt"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

// Codec es lo mínimo que necesita la verificación.
type Codec interface {
	Encode(hamming.Nibble) hamming.Codeword
	Decode(hamming.Codeword) (hamming.Nibble, hamming.ErrorKind)
}

// parityLocator lo implementan los códecs que saben dónde está su bit de
// paridad global; si no, se asume el bit 0.
type parityLocator interface {
	Spec() hamming.LayoutSpec
}

// Vectors guarda las codificaciones conocidas de los layouts incluidos,
// calculadas a mano a partir de la matriz generadora.
var Vectors = map[string][16]hamming.Codeword{
	"canonical": {
		0b00000000, 0b00011110, 0b00101101, 0b00110011, 0b01001011, 0b01010101, 0b01100110, 0b01111000,
		0b10000111, 0b10011001, 0b10101010, 0b10110100, 0b11001100, 0b11010010, 0b11100001, 0b11111111,
	},
	"positional": {
		0b00000000, 0b11010010, 0b01010101, 0b10000111, 0b10011001, 0b01001011, 0b11001100, 0b00011110,
		0b11100001, 0b00110011, 0b10110100, 0b01100110, 0b01111000, 0b10101010, 0b00101101, 0b11111111,
	},
}

// Failure describe un caso que no dio el resultado esperado.
type Failure struct {
	Data     hamming.Nibble
	Received hamming.Codeword
	Got      hamming.Nibble
	GotKind  hamming.ErrorKind
	Want     string
}

func (f Failure) String() string {
	return fmt.Sprintf("dato %04b recibido %08b: obtuvo (%04b, %v), esperaba %s",
		f.Data, f.Received, f.Got, f.GotKind, f.Want)
}

// Check es el resultado de un grupo de casos.
type Check struct {
	Name     string
	Cases    int
	Failures []Failure
}

// Passed indica si todos los casos del grupo pasaron.
func (c Check) Passed() bool { return len(c.Failures) == 0 }

// Report agrupa los resultados de todas las verificaciones.
type Report struct {
	Checks []Check
}

// Passed indica si todas las verificaciones pasaron.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// Cases devuelve la cantidad total de casos evaluados.
func (r *Report) Cases() int {
	n := 0
	for _, c := range r.Checks {
		n += c.Cases
	}
	return n
}

// Run ejecuta todas las verificaciones sobre codec. Si expected no es nil
// también compara las 16 codificaciones contra esos valores.
func Run(codec Codec, expected *[16]hamming.Codeword) *Report {
	parityPos := uint8(0)
	if pl, ok := codec.(parityLocator); ok {
		parityPos = pl.Spec().Parity
	}

	var words [16]hamming.Codeword
	for n := range words {
		words[n] = codec.Encode(hamming.Nibble(n))
	}

	r := &Report{}
	if expected != nil {
		r.Checks = append(r.Checks, checkVectors(words, expected))
	}
	r.Checks = append(r.Checks,
		checkLinearity(words),
		checkNoError(codec, words),
		checkSingle(codec, words, parityPos),
		checkDouble(codec, words),
	)
	return r
}

func checkVectors(words [16]hamming.Codeword, expected *[16]hamming.Codeword) Check {
	c := Check{Name: "codificaciones esperadas"}
	for n, w := range words {
		c.Cases++
		if w != expected[n] {
			c.Failures = append(c.Failures, Failure{
				Data:     hamming.Nibble(n),
				Received: w,
				Want:     fmt.Sprintf("palabra %08b", expected[n]),
			})
		}
	}
	return c
}

func checkLinearity(words [16]hamming.Codeword) Check {
	c := Check{Name: "linealidad"}
	for a := range words {
		for b := range words {
			c.Cases++
			if got := words[a] ^ words[b]; got != words[a^b] {
				c.Failures = append(c.Failures, Failure{
					Data:     hamming.Nibble(a ^ b),
					Received: got,
					Want:     fmt.Sprintf("Encode(%d)^Encode(%d) = Encode(%d) = %08b", a, b, a^b, words[a^b]),
				})
			}
		}
	}
	return c
}

func checkNoError(codec Codec, words [16]hamming.Codeword) Check {
	c := Check{Name: "sin errores"}
	for n, w := range words {
		c.expect(codec, hamming.Nibble(n), w, hamming.NoError, true)
	}
	return c
}

func checkSingle(codec Codec, words [16]hamming.Codeword, parityPos uint8) Check {
	c := Check{Name: "errores de un bit / paridad"}
	for n, w := range words {
		for j := uint8(0); j < 8; j++ {
			kind := hamming.SingleBitError
			if j == parityPos {
				kind = hamming.ParityBitError
			}
			c.expect(codec, hamming.Nibble(n), w^1<<j, kind, true)
		}
	}
	return c
}

func checkDouble(codec Codec, words [16]hamming.Codeword) Check {
	c := Check{Name: "errores de dos bits"}
	for n, w := range words {
		for _, mask := range DoubleFlips() {
			c.expect(codec, hamming.Nibble(n), w^mask, hamming.DoubleBitError, false)
		}
	}
	return c
}

func (c *Check) expect(codec Codec, n hamming.Nibble, received hamming.Codeword, kind hamming.ErrorKind, checkData bool) {
	c.Cases++
	got, gotKind := codec.Decode(received)
	if gotKind == kind && (!checkData || got == n) {
		return
	}
	want := kind.String()
	if checkData {
		want = fmt.Sprintf("(%04b, %v)", n, kind)
	}
	c.Failures = append(c.Failures, Failure{
		Data:     n,
		Received: received,
		Got:      got,
		GotKind:  gotKind,
		Want:     want,
	})
}

// DoubleFlips devuelve las 28 máscaras de 8 bits con exactamente dos bits en 1.
func DoubleFlips() []hamming.Codeword {
	masks := make([]hamming.Codeword, 0, 28)
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			masks = append(masks, 1<<i|1<<j)
		}
	}
	return masks
}
