package ws

import (
	"encoding/json"
	"time"

	"admindash/internal/env"

	githubws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// Upgrader upgrades HTTP connections to WebSocket connections.
var Upgrader = githubws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		// In drain mode, reject new WebSocket connections with 503
		if env.DRAIN_MODE {
			ctx.SetStatusCode(503)
			ctx.SetBodyString(`{"message": "Service is draining - please reconnect to active instance"}`)
			return false
		}
		return true
	},
}

// WriteStatus sends a status message to the websocket client.
func WriteStatus(conn *githubws.Conn, status string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    status,
		"message": message,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

type snapshotFrame struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
	Docs       any       `json:"docs"`
}

// WriteSnapshot sends one full result set of a live query.
func WriteSnapshot(conn *githubws.Conn, collection string, at time.Time, docs any) error {
	payload, err := json.Marshal(snapshotFrame{
		Type:       "snapshot",
		Collection: collection,
		At:         at,
		Docs:       docs,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

// WriteEvent sends an arbitrary typed payload.
func WriteEvent(conn *githubws.Conn, kind string, data any) error {
	payload, err := json.Marshal(map[string]any{
		"type": kind,
		"data": data,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}
