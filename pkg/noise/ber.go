package noise

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

// NoiseLayer inyecta errores de bit en palabras código.
//
// No es seguro para uso concurrente: comparte un único *rand.Rand.
type NoiseLayer struct {
	rng *rand.Rand
}

// NewNoiseLayer crea una nueva instancia con semilla aleatoria.
func NewNoiseLayer() *NoiseLayer {
	return NewNoiseLayerWithSeed(ObtenerSemilla())
}

// NewNoiseLayerWithSeed crea una instancia con semilla específica (para tests reproducibles).
func NewNoiseLayerWithSeed(seed int64) *NoiseLayer {
	return &NoiseLayer{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ErrorResult contiene información sobre los errores inyectados en una palabra.
type ErrorResult struct {
	Original       hamming.Codeword
	Noisy          hamming.Codeword
	ErrorPositions []int // posiciones invertidas, de menor a mayor
}

// ErrorsInjected devuelve la cantidad de bits invertidos.
func (r *ErrorResult) ErrorsInjected() int { return len(r.ErrorPositions) }

// AplicarRuido invierte cada bit de c con probabilidad ber.
func (n *NoiseLayer) AplicarRuido(c hamming.Codeword, ber float64) (*ErrorResult, error) {
	if err := validarBER(ber); err != nil {
		return nil, err
	}

	result := &ErrorResult{Original: c, Noisy: c}
	for pos := 0; pos < 8; pos++ {
		if n.rng.Float64() < ber {
			result.Noisy ^= 1 << pos
			result.ErrorPositions = append(result.ErrorPositions, pos)
		}
	}
	return result, nil
}

// ChannelStats contiene estadísticas de un canal ruidoso simulado.
type ChannelStats struct {
	Layout     string
	TargetBER  float64
	ActualBER  float64
	BERStdDev  float64
	Iterations int
	TotalBits  int
	TotalFlips int

	// ByKind cuenta las decodificaciones por clasificación.
	ByKind map[hamming.ErrorKind]int
	// ErrorDistribution: cantidad de bits invertidos -> frecuencia.
	ErrorDistribution map[int]int
	// Delivered: datos correctos entregados (NoError, SingleBitError o ParityBitError).
	Delivered int
	// Detected: palabras marcadas como DoubleBitError.
	Detected int
	// Miscorrected: datos incorrectos entregados como confiables (3 o más errores).
	Miscorrected int
}

// SimularCanalRuidoso codifica nibbles aleatorios, les aplica ruido,
// los decodifica con layout y acumula estadísticas.
func (n *NoiseLayer) SimularCanalRuidoso(layout *hamming.Layout, ber float64, iteraciones int) (*ChannelStats, error) {
	if iteraciones <= 0 {
		return nil, errors.Errorf("iteraciones debe ser mayor a 0: %d", iteraciones)
	}
	if err := validarBER(ber); err != nil {
		return nil, err
	}

	stats := &ChannelStats{
		Layout:            layout.Name(),
		TargetBER:         ber,
		Iterations:        iteraciones,
		TotalBits:         8 * iteraciones,
		ByKind:            make(map[hamming.ErrorKind]int),
		ErrorDistribution: make(map[int]int),
	}

	berValues := make([]float64, 0, iteraciones)
	for i := 0; i < iteraciones; i++ {
		data := hamming.Nibble(n.rng.Intn(16))
		result, err := n.AplicarRuido(layout.Encode(data), ber)
		if err != nil {
			return nil, errors.Wrapf(err, "iteración %d", i)
		}

		flips := result.ErrorsInjected()
		stats.TotalFlips += flips
		stats.ErrorDistribution[flips]++
		berValues = append(berValues, float64(flips)/8)

		got, kind := layout.Decode(result.Noisy)
		stats.ByKind[kind]++
		switch {
		case !kind.Reliable():
			stats.Detected++
		case got == data:
			stats.Delivered++
		default:
			stats.Miscorrected++
		}
	}

	stats.ActualBER = float64(stats.TotalFlips) / float64(stats.TotalBits)

	var variance float64
	for _, v := range berValues {
		diff := v - stats.ActualBER
		variance += diff * diff
	}
	stats.BERStdDev = math.Sqrt(variance / float64(len(berValues)))

	return stats, nil
}

// DistribucionOrdenada devuelve la distribución de errores ordenada por
// frecuencia descendente (a igual frecuencia, por cantidad de errores).
func (stats *ChannelStats) DistribucionOrdenada() [][2]int {
	out := make([][2]int, 0, len(stats.ErrorDistribution))
	for flips, count := range stats.ErrorDistribution {
		out = append(out, [2]int{flips, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] > out[j][1]
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// EstimarImpacto estima, para cada BER, la probabilidad de que una palabra
// llegue con 0, 1, 2 o 3+ errores (distribución binomial sobre 8 bits).
func EstimarImpacto(berValues []float64) map[float64][4]float64 {
	estimaciones := make(map[float64][4]float64, len(berValues))
	for _, ber := range berValues {
		var probs [4]float64
		for k := 0; k <= 2; k++ {
			probs[k] = binomial(8, k) * math.Pow(ber, float64(k)) * math.Pow(1-ber, float64(8-k))
		}
		probs[3] = 1 - probs[0] - probs[1] - probs[2]
		if probs[3] < 0 {
			probs[3] = 0
		}
		estimaciones[ber] = probs
	}
	return estimaciones
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

func validarBER(ber float64) error {
	if ber < 0.0 || ber > 1.0 || math.IsNaN(ber) {
		return errors.Errorf("BER inválido: %.3f (debe estar entre 0.0 y 1.0)", ber)
	}
	return nil
}

// ObtenerSemilla devuelve una nueva semilla basada en el tiempo actual.
func ObtenerSemilla() int64 {
	return time.Now().UnixNano()
}
