package ws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var errClientClosed = errors.New("websocket closed by client")

// Writer sends frames over one WebSocket connection.
type Writer struct {
	conn *websocket.Conn
}

func (w *Writer) WriteSnapshot(collection string, at time.Time, docs any) error {
	if err := WriteSnapshot(w.conn, collection, at, docs); err != nil {
		// Use a specific error to signal that the client has disconnected.
		return errClientClosed
	}
	return nil
}

func (w *Writer) WriteEvent(kind string, data any) error {
	if err := WriteEvent(w.conn, kind, data); err != nil {
		return errClientClosed
	}
	return nil
}

func (w *Writer) WriteStatus(level, message string) {
	_ = WriteStatus(w.conn, level, message)
}

// StreamWebSocket upgrades to WebSocket and streams using the provided streamer function.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, writer *Writer) error) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		ctx := context.Background()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		writer := &Writer{conn: conn}

		// Use a cancellable context tied to the client connection.
		streamCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			<-closed
			cancel()
		}()

		err := streamer(streamCtx, writer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errClientClosed) {
			_ = WriteStatus(conn, "error", "stream failed")
		}

		_ = WriteStatus(conn, "info", "stream ended")
	})
}
