// Package liveview publishes incremental search progress to web clients
// over a websocket, driven externally by a caller running step_single in
// batches (spec.md §5 calls this out explicitly as a supported external
// driver pattern). It never steps the search itself.
package liveview

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 1 * time.Second
	pingResolution = 200 * time.Millisecond
	pongWait       = pingResolution * 4
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Snapshot is the cheap, externally-observable progress state a batch
// driver captures between step_single batches.
type Snapshot struct {
	BestX         float32 `json:"best_x"`
	NodesExpanded int     `json:"nodes_expanded"`
	OpenLen       int     `json:"open_len"`
	Done          bool    `json:"done"`
}

// Server fans published Snapshots out to any number of connected
// websocket viewers. Each viewer has a one-snapshot buffer and never a
// queue: a Publish that finds the buffer still full drops its snapshot for
// that viewer, which keeps the older one and receives a later Publish once
// it has drained.
type Server struct {
	mu       sync.RWMutex
	latest   Snapshot
	has      bool
	subs     map[chan Snapshot]struct{}
	subsLock sync.Mutex
}

// NewServer creates an empty progress broadcaster.
func NewServer() *Server {
	return &Server{subs: make(map[chan Snapshot]struct{})}
}

// Publish records the latest snapshot and wakes any waiting subscribers.
// Intended to be called once per batch from the driver goroutine; never
// called concurrently with itself.
func (s *Server) Publish(snap Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.has = true
	s.mu.Unlock()

	s.subsLock.Lock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Subscriber hasn't drained the last update yet; the next
			// Publish will still deliver the newer snapshot, so dropping
			// this one is safe for idempotent progress data.
		}
	}
	s.subsLock.Unlock()
}

func (s *Server) subscribe() chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.RLock()
	if s.has {
		ch <- s.latest
	}
	s.mu.RUnlock()

	s.subsLock.Lock()
	s.subs[ch] = struct{}{}
	s.subsLock.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan Snapshot) {
	s.subsLock.Lock()
	delete(s.subs, ch)
	s.subsLock.Unlock()
}

// HandleWebSocket upgrades r and streams snapshots to it until the client
// disconnects or an error occurs.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	updates := s.subscribe()
	defer s.unsubscribe(updates)

	group, ctx := errgroup.WithContext(r.Context())

	group.Go(func() error {
		return readUntilClosed(ctx, conn)
	})
	group.Go(func() error {
		return pingLoop(ctx, conn)
	})
	group.Go(func() error {
		return publishLoop(ctx, conn, updates)
	})

	_ = group.Wait()
}

func readUntilClosed(ctx context.Context, conn *websocket.Conn) error {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func pingLoop(ctx context.Context, conn *websocket.Conn) error {
	ticker := time.NewTicker(pingResolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

func publishLoop(ctx context.Context, conn *websocket.Conn, updates <-chan Snapshot) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(snap)
			if err != nil {
				return err
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return err
			}
			if snap.Done {
				return nil
			}
		}
	}
}

// HandleSnapshotJSON serves the latest snapshot as a single JSON object,
// for pollers that don't want a websocket.
func (s *Server) HandleSnapshotJSON(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap := s.latest
	has := s.has
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if !has {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	json.NewEncoder(w).Encode(snap)
}

// RegisterRoutes wires the server's handlers onto mux using plain
// http.HandleFunc routing, matching the surface of two routes this
// package exposes.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.HandleWebSocket)
	mux.HandleFunc("/snapshot", s.HandleSnapshotJSON)
}
