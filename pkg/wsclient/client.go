package wsclient

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/Diegoval-Dev/R-Lab2/hamming84/pkg/hamming"
)

// DefaultWriteTimeout se usa cuando SendFrame recibe un timeout nulo.
const DefaultWriteTimeout = 5 * time.Second

// SendFrame se conecta al servidor WebSocket en url y envía las palabras
// código como un único mensaje binario (un byte por palabra).
func SendFrame(ctx context.Context, url string, frame []hamming.Codeword, timeout time.Duration) error {
	if len(frame) == 0 {
		return errors.New("trama vacía")
	}
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}

	// 1) Conexión
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return errors.Wrapf(err, "conectando a %s", url)
	}
	defer conn.Close()

	// 2) Establecer un deadline para la escritura
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return errors.Wrap(err, "configurando deadline")
	}

	// 3) Enviar trama como mensaje binario
	payload := make([]byte, len(frame))
	for i, c := range frame {
		payload[i] = byte(c)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return errors.Wrap(err, "enviando trama")
	}

	// 4) Cierre ordenado; el receptor puede haber cerrado ya, no es un error.
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, closeMsg, deadline)
	return nil
}
