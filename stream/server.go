// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/brainview/base/errors"
	"cogentcore.org/brainview/colors/colormap"
	"github.com/gorilla/websocket"
)

// sendBuffer is the number of frames queued per client;
// frames for clients that fall further behind are dropped.
const sendBuffer = 8

// Server is an [http.Handler] upgrading requests to websockets
// and broadcasting frames to them.
type Server struct {

	// Interval is the time between frames of [Server.Run].
	Interval time.Duration

	// Source produces the frames of [Server.Run].
	Source Source

	// ColorLimits and ColorMapName are sent with every frame if set.
	ColorLimits  []float64
	ColorMapName colormap.Name

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	seq     uint64
}

// NewServer returns a new server sending a frame from src every interval.
func NewServer(interval time.Duration, src Source) *Server {
	return &Server{
		Interval: interval,
		Source:   src,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  map[*websocket.Conn]chan []byte{},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	send := make(chan []byte, sendBuffer)
	s.mu.Lock()
	s.clients[conn] = send
	n := len(s.clients)
	s.mu.Unlock()
	slog.Info("stream: client connected", "remote", r.RemoteAddr, "clients", n)

	go s.write(conn, send)
	// reads only detect the client closing
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.remove(conn)
	slog.Info("stream: client disconnected", "remote", r.RemoteAddr)
}

func (s *Server) write(conn *websocket.Conn, send chan []byte) {
	defer conn.Close()
	for msg := range send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("stream: write failed", "err", err)
			s.remove(conn)
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// remove unregisters the connection and stops its writer.
func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if send, ok := s.clients[conn]; ok {
		close(send)
		delete(s.clients, conn)
	}
}

// NumClients returns the number of connected clients.
func (s *Server) NumClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Broadcast sends the frame to every client, dropping it for clients
// whose queue is full.
func (s *Server) Broadcast(fr *Frame) error {
	msg, err := fr.Encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, send := range s.clients {
		select {
		case send <- msg:
		default:
			slog.Warn("stream: dropping frame for slow client", "remote", conn.RemoteAddr(), "seq", fr.Seq)
		}
	}
	return nil
}

// Next returns the next frame from the source.
func (s *Server) Next(now time.Time) *Frame {
	s.mu.Lock()
	seq := s.seq
	s.seq++
	s.mu.Unlock()
	fr := &Frame{Seq: seq, Time: now}
	fr.Values = s.Source(seq)
	fr.ColorLimits = s.ColorLimits
	fr.ColorMapName = s.ColorMapName
	return fr
}

// Run broadcasts a frame every interval until the context is done,
// then closes all of the clients and returns the context error.
func (s *Server) Run(ctx context.Context) error {
	tick := time.NewTicker(s.Interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return ctx.Err()
		case now := <-tick.C:
			errors.Log(s.Broadcast(s.Next(now)))
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, send := range s.clients {
		close(send)
		delete(s.clients, conn)
	}
}
