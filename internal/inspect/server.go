// Package inspect serves a live debug view of a running model: a
// websocket stream of resolved frame state and prometheus metrics for
// the frame loop.
package inspect

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Server owns the inspector's subscriber set and HTTP surface.
type Server struct {
	log     *zap.Logger
	metrics *Metrics

	mu   sync.Mutex
	subs map[*subscriber]struct{}

	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewServer creates an inspector around the given metrics.
func NewServer(log *zap.Logger, metrics *Metrics) *Server {
	return &Server{
		log:     log,
		metrics: metrics,
		subs:    make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			// The inspector is a local debug surface.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the inspector's HTTP mux: /state for the websocket
// stream, /metrics for prometheus.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.handleState)
	mux.Handle("/metrics", s.metrics.Handler())
	return mux
}

// Start listens on addr and serves in a background goroutine.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.httpSrv = &http.Server{Handler: s.Handler()}
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error("inspector server failed", zap.Error(err))
		}
	}()
	s.log.Info("inspector listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Shutdown stops the HTTP server and closes all subscriber connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for sub := range s.subs {
		_ = sub.conn.Close()
	}
	s.subs = make(map[*subscriber]struct{})
	s.mu.Unlock()
	s.metrics.Subscribers.Set(0)

	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	sub := &subscriber{conn: conn}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	n := len(s.subs)
	s.mu.Unlock()
	s.metrics.Subscribers.Set(float64(n))
	s.log.Debug("inspector client connected", zap.String("remote", conn.RemoteAddr().String()))

	// Drain reads so control frames are processed; drop the subscriber
	// when the client goes away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.remove(sub)
				return
			}
		}
	}()
}

func (s *Server) remove(sub *subscriber) {
	s.mu.Lock()
	if _, ok := s.subs[sub]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.subs, sub)
	n := len(s.subs)
	s.mu.Unlock()
	s.metrics.Subscribers.Set(float64(n))
	_ = sub.conn.Close()
}

// Broadcast sends the frame state to every connected client. Slow or dead
// clients are dropped.
func (s *Server) Broadcast(state FrameState) {
	data, err := json.Marshal(state)
	if err != nil {
		s.log.Error("failed to encode frame state", zap.Error(err))
		return
	}

	s.mu.Lock()
	subs := make([]*subscriber, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			s.log.Debug("dropping inspector client", zap.Error(err))
			s.remove(sub)
		}
	}
}
