package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/presentation"
)

func newDecodeCmd(a *app) *cobra.Command {
	var desglose bool
	cmd := &cobra.Command{
		Use:   "decode <codeword>...",
		Short: "Decodifica y clasifica palabras de 8 bits",
		Long: `Decodifica cada argumento (0b..., 0x... o decimal, 0-255) y muestra los
datos recuperados y el tipo de error. Con DoubleBitError los datos no son
confiables y se marcan como tales.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := presentation.NewPresentationLayer(a.layout)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				c, err := presentation.ParseCodeword(arg)
				if err != nil {
					return err
				}
				fixed, kind := a.layout.Correct(c)
				n := a.layout.Extract(fixed)

				mark := "✅"
				if !kind.Reliable() {
					mark = "⚠️ no confiable"
				}
				fmt.Fprintf(out, "%s -> %s %s %s",
					presentation.FormatBits(uint8(c), 8), presentation.FormatBits(uint8(n), 4), kind, mark)
				if desglose {
					fmt.Fprintf(out, " %s", p.Desglose(fixed))
				}
				fmt.Fprintln(out)

				entry := a.log.WithFields(logrus.Fields(p.ObtenerEstadisticas(c)))
				if kind.Reliable() {
					entry.Debug("decodificado")
				} else {
					entry.Warn("error doble detectado")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&desglose, "desglose", false, "mostrar el bit lógico de cada posición de la palabra corregida")
	return cmd
}
