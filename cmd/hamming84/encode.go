package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/presentation"
)

func newEncodeCmd(a *app) *cobra.Command {
	var desglose bool
	cmd := &cobra.Command{
		Use:   "encode <nibble>...",
		Short: "Codifica valores de 4 bits",
		Long: `Codifica cada argumento (0b..., 0x... o decimal, 0-15) como palabra
Hamming(8,4) con el layout activo.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := presentation.NewPresentationLayer(a.layout)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := presentation.ParseNibble(arg)
				if err != nil {
					return err
				}
				c, err := a.layout.EncodeChecked(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s -> %s (0x%02X)",
					presentation.FormatBits(uint8(n), 4), presentation.FormatBits(uint8(c), 8), uint8(c))
				if desglose {
					fmt.Fprintf(out, " %s", p.Desglose(c))
				}
				fmt.Fprintln(out)
				a.log.WithField("nibble", uint8(n)).WithField("codeword", uint8(c)).Debug("codificado")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&desglose, "desglose", false, "mostrar el bit lógico de cada posición")
	return cmd
}
