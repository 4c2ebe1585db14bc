// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"

	"cogentcore.org/brainview/base/errors"
	"github.com/gorilla/websocket"
)

// Client is a connection to a [Server].
// You can use [Dial] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}
}

// Dial connects to the feed at the given ws:// url.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnFrame sets a callback function to be called for each frame received,
// on a goroutine of the client. Invalid frames are logged and skipped.
// This function can only be called once.
func (c *Client) OnFrame(f func(fr *Frame)) {
	go func() {
		defer close(c.done)
		defer c.conn.Close()
		for {
			_, msg, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					errors.Log(err)
				}
				return
			}
			fr, err := DecodeFrame(msg)
			if errors.Log(err) != nil {
				continue
			}
			f(fr)
		}
	}()
}

// Done returns a channel that is closed once the connection is closed
// and [Client.OnFrame] has returned.
func (c *Client) Done() <-chan struct{} { return c.done }

// Close cleanly closes the connection.
// [Client.Done] is closed once the server acknowledges it.
func (c *Client) Close() error {
	return c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
