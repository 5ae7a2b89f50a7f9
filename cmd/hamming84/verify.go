package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/selftest"
)

func newVerifyCmd(a *app) *cobra.Command {
	var maxFailures int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verifica el códec con todos los casos de 0, 1 y 2 errores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var expected *[16]hamming.Codeword
			if v, ok := selftest.Vectors[a.layout.Name()]; ok {
				expected = &v
			}
			report := selftest.Run(a.layout, expected)

			out := cmd.OutOrStdout()
			for _, c := range report.Checks {
				status := "PASS"
				if !c.Passed() {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%-4s %-30s %d casos\n", status, c.Name, c.Cases)
				for i, f := range c.Failures {
					if i == maxFailures {
						fmt.Fprintf(out, "     ... %d fallos más\n", len(c.Failures)-maxFailures)
						break
					}
					fmt.Fprintf(out, "     %v\n", f)
				}
			}

			a.log.WithField("layout", a.layout.Name()).
				WithField("casos", report.Cases()).
				WithField("ok", report.Passed()).
				Info("verificación terminada")

			if !report.Passed() {
				return errors.Errorf("la verificación del layout %q falló", a.layout.Name())
			}
			fmt.Fprintf(out, "TODAS LAS PRUEBAS PASARON (%d casos)\n", report.Cases())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFailures, "max-failures", 5, "fallos a mostrar por grupo")
	return cmd
}
