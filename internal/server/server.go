// Package server streams planet meshes to browser viewers over websockets.
// Every connection owns an independent session; nothing is shared between
// clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/logger"
)

// ErrTooDetailed is returned for a resolution above the server limit.
var ErrTooDetailed = errors.New("server: resolution above limit")

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

// Server serves /ws, /mesh and /healthz.
type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	log      *zap.Logger
	active   atomic.Int64
	nextID   atomic.Uint64
}

// New creates a server. cfg must already be validated.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // viewers are served from anywhere
			},
		},
		log: logger.Named("server"),
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /mesh", s.handleMesh)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

// Active returns the number of open websocket sessions.
func (s *Server) Active() int64 {
	return s.active.Load()
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("mesh server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("mesh server shutting down", zap.Int64("active", s.Active()))
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleMesh(w http.ResponseWriter, _ *http.Request) {
	session, err := app.New(s.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(NewMeshMessage(session.Planet)); err != nil {
		s.log.Warn("encoding mesh", zap.Error(err))
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := s.nextID.Add(1)
	log := s.log.With(zap.Uint64("conn", id), zap.String("remote", r.RemoteAddr))
	s.active.Add(1)
	log.Info("viewer connected", zap.Int64("active", s.Active()))
	defer func() {
		conn.Close()
		s.active.Add(-1)
		log.Info("viewer disconnected", zap.Int64("active", s.Active()))
	}()

	session, err := app.New(s.cfg)
	if err != nil {
		log.Error("creating session", zap.Error(err))
		_ = s.write(conn, ErrorMessage{Type: TypeError, Error: err.Error()})
		return
	}

	c := &client{server: s, conn: conn, session: session, log: log, done: make(chan struct{})}
	go c.pingLoop()
	defer close(c.done)

	if err := c.sendMesh(); err != nil {
		log.Warn("sending initial mesh", zap.Error(err))
		return
	}
	c.readLoop()
}

// write serializes v as one JSON text frame. Only the owning goroutine and
// the ping loop write, and they are serialized by the connection mutex.
func (s *Server) write(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}
