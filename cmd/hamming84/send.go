package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/config"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/noise"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/presentation"
	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/wsclient"
)

func newSendCmd(a *app) *cobra.Command {
	var (
		transport config.TransportConfig
		ber       float64
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "send <nibble>...",
		Short: "Codifica nibbles y los envía a un receptor WebSocket",
		Long: `Codifica cada argumento, opcionalmente aplica ruido con --ber y envía
las palabras resultantes como un mensaje binario (un byte por palabra).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ApplyTransport(transport); err != nil {
				return err
			}
			if ber < 0 || ber > 1 {
				return errors.Errorf("BER inválido: %.3f (debe estar entre 0.0 y 1.0)", ber)
			}

			layer := noise.NewNoiseLayer()
			if seed != 0 {
				layer = noise.NewNoiseLayerWithSeed(seed)
			}

			frame := make([]hamming.Codeword, 0, len(args))
			injected := 0
			for _, arg := range args {
				n, err := presentation.ParseNibble(arg)
				if err != nil {
					return err
				}
				result, err := layer.AplicarRuido(a.layout.Encode(n), ber)
				if err != nil {
					return err
				}
				injected += result.ErrorsInjected()
				frame = append(frame, result.Noisy)
			}

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt)
			defer stop()

			url := a.cfg.Transport.URL
			log := a.log.WithField("url", url).WithField("palabras", len(frame)).WithField("errores", injected)
			if err := wsclient.SendFrame(ctx, url, frame, a.cfg.Transport.WriteTimeout); err != nil {
				log.WithError(err).Error("❌ error de transmisión")
				return err
			}
			log.Info("✅ trama enviada")
			fmt.Fprintf(cmd.OutOrStdout(), "Trama enviada a %s: %d palabras, %d bits invertidos\n", url, len(frame), injected)
			return nil
		},
	}
	cmd.Flags().StringVar(&transport.URL, "ws-url", "", "URL del receptor WebSocket")
	cmd.Flags().DurationVar(&transport.WriteTimeout, "write-timeout", 0, "timeout de escritura")
	cmd.Flags().Float64Var(&ber, "ber", 0, "bit error rate a aplicar antes de enviar")
	cmd.Flags().Int64Var(&seed, "seed", 0, "semilla del generador de ruido (0 = aleatoria)")
	return cmd
}

// contextOrBackground evita un contexto nil cuando el comando se ejecuta sin ExecuteContext.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
