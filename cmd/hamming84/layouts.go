package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/presentation"
)

func newLayoutsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "Muestra el layout activo y sus matrices derivadas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			names := []string{}
			for _, l := range hamming.Layouts() {
				names = append(names, l.Name())
			}
			for _, lc := range a.cfg.Layouts {
				names = append(names, lc.Name)
			}
			fmt.Fprintf(out, "Layouts disponibles: %v\n", names)

			l := a.layout
			p := presentation.NewPresentationLayer(l)
			labels := p.Etiquetas()
			fmt.Fprintf(out, "\nLayout activo: %s\n", l.Name())
			fmt.Fprint(out, "  posiciones (bit 7..0):")
			for pos := 7; pos >= 0; pos-- {
				fmt.Fprintf(out, " %s", labels[pos])
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  G (fila por dato):")
			for j, row := range l.GeneratorRows() {
				fmt.Fprintf(out, "    d%d %s\n", j, presentation.FormatBits(uint8(row), 8))
			}
			fmt.Fprintln(out, "  H (fila por bit de control):")
			for i, row := range l.CheckRows() {
				fmt.Fprintf(out, "    s%d %s\n", i, presentation.FormatBits(uint8(row), 8))
			}
			fmt.Fprintln(out, "  síndrome -> bit:")
			for s, pos := range l.SyndromeToBit() {
				if s == 0 {
					continue
				}
				fmt.Fprintf(out, "    %s -> bit %d (%s)\n", presentation.FormatBits(uint8(s), 3), pos, labels[pos])
			}
			return nil
		},
	}
}
