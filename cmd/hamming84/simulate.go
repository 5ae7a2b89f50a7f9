package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/config"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/noise"
)

func newSimulateCmd(a *app) *cobra.Command {
	var flags config.SimulationConfig
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simula un canal ruidoso y cuenta las clasificaciones",
		Long: `Codifica nibbles aleatorios, invierte cada bit con probabilidad BER,
decodifica y muestra cuántas palabras llegaron bien, cuántas se detectaron
como no corregibles y cuántas se corrigieron mal (3 o más errores).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.ApplySimulation(flags); err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			sim := a.cfg.Simulation

			layer := noise.NewNoiseLayer()
			if sim.Seed != 0 {
				layer = noise.NewNoiseLayerWithSeed(sim.Seed)
			}
			a.log.WithField("ber", sim.BER).WithField("iteraciones", sim.Iterations).Info("🎯 iniciando simulación")

			stats, err := layer.SimularCanalRuidoso(a.layout, sim.BER, sim.Iterations)
			if err != nil {
				return err
			}
			mostrarEstadisticas(cmd.OutOrStdout(), stats)

			if stats.Miscorrected > 0 {
				a.log.WithField("miscorrected", stats.Miscorrected).Warn("hubo datos corruptos entregados como confiables")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&flags.BER, "ber", 0, "bit error rate (0.0-1.0); 0 usa el de la configuración")
	cmd.Flags().IntVar(&flags.Iterations, "iterations", 0, "cantidad de palabras a simular")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "semilla del generador (0 = aleatoria)")
	return cmd
}

func mostrarEstadisticas(out io.Writer, stats *noise.ChannelStats) {
	pct := func(n int) float64 { return float64(n) / float64(stats.Iterations) * 100 }

	fmt.Fprintln(out, "📡 Estadísticas del Canal Ruidoso:")
	fmt.Fprintf(out, "   Layout: %s\n", stats.Layout)
	fmt.Fprintf(out, "   BER objetivo: %.4f (%.2f%%)\n", stats.TargetBER, stats.TargetBER*100)
	fmt.Fprintf(out, "   BER real: %.4f (desviación std %.4f)\n", stats.ActualBER, stats.BERStdDev)
	fmt.Fprintf(out, "   Palabras: %d (%d bits, %d invertidos)\n", stats.Iterations, stats.TotalBits, stats.TotalFlips)
	fmt.Fprintln(out, "   Clasificación:")
	for _, kind := range []hamming.ErrorKind{hamming.NoError, hamming.ParityBitError, hamming.SingleBitError, hamming.DoubleBitError} {
		fmt.Fprintf(out, "     %-15s %6d (%.1f%%)\n", kind, stats.ByKind[kind], pct(stats.ByKind[kind]))
	}
	fmt.Fprintf(out, "   Entregadas correctas: %d (%.1f%%)\n", stats.Delivered, pct(stats.Delivered))
	fmt.Fprintf(out, "   Detectadas (no corregibles): %d (%.1f%%)\n", stats.Detected, pct(stats.Detected))
	fmt.Fprintf(out, "   Corregidas mal: %d (%.1f%%)\n", stats.Miscorrected, pct(stats.Miscorrected))

	exp := noise.EstimarImpacto([]float64{stats.TargetBER})[stats.TargetBER]
	fmt.Fprintf(out, "   Esperado por palabra: 0 err %.1f%%, 1 err %.1f%%, 2 err %.1f%%, 3+ err %.1f%%\n",
		exp[0]*100, exp[1]*100, exp[2]*100, exp[3]*100)

	fmt.Fprintln(out, "   Distribución de errores (top 5):")
	for i, d := range stats.DistribucionOrdenada() {
		if i == 5 {
			break
		}
		fmt.Fprintf(out, "     %d errores: %d veces (%.1f%%)\n", d[0], d[1], pct(d[1]))
	}
}
