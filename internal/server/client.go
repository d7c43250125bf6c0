package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/app"
)

// client is one websocket viewer and its private session.
type client struct {
	server  *Server
	conn    *websocket.Conn
	session *app.Context
	log     *zap.Logger

	writeMu sync.Mutex
	done    chan struct{}
}

func (c *client) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.server.write(c.conn, v)
}

func (c *client) sendMesh() error {
	return c.send(NewMeshMessage(c.session.Planet))
}

func (c *client) sendError(err error) error {
	return c.send(ErrorMessage{Type: TypeError, Error: err.Error()})
}

func (c *client) readLoop() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if err := c.handle(data); err != nil {
			c.log.Warn("write failed", zap.Error(err))
			return
		}
	}
}

// handle applies one client message. Rejected requests get an error reply;
// only write failures end the session.
func (c *client) handle(data []byte) error {
	var msg SettingsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return c.sendError(fmt.Errorf("bad message: %w", err))
	}
	if msg.Type != TypeSettings {
		return c.sendError(fmt.Errorf("unknown message type %q", msg.Type))
	}

	settings := msg.Settings()
	if limit := c.server.cfg.Server.MaxResolution; settings.Resolution > limit {
		return c.sendError(fmt.Errorf("%w: %d > %d", ErrTooDetailed, settings.Resolution, limit))
	}

	c.session.Settings = settings
	rebuilt, err := c.session.Update(0, app.Controls{})
	if err != nil {
		return c.sendError(err)
	}
	if !rebuilt {
		return nil
	}
	c.log.Debug("session rebuilt",
		zap.Int("resolution", settings.Resolution),
		zap.Uint64("generation", c.session.Planet.Generation()),
	)
	return c.sendMesh()
}

func (c *client) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				c.log.Debug("ping failed", zap.Error(err))
				return
			}
		}
	}
}
