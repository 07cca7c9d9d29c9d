package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/matatu/engine"
	"github.com/minaorangina/matatu/protocol"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBuffer = 256
)

// client connects one websocket to one session
type client struct {
	conn    *websocket.Conn
	session *engine.Session
	send    chan []byte
	done    chan struct{}
	logger  zerolog.Logger
}

func newClient(conn *websocket.Conn, session *engine.Session, logger zerolog.Logger) *client {
	return &client{
		conn:    conn,
		session: session,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Notify queues msg for the write pump. It never blocks the session.
func (c *client) Notify(msg protocol.OutboundMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error().Err(err).Msgf("could not encode %s", msg.Command)
		return
	}

	select {
	case <-c.done:
	case c.send <- data:
	default:
		c.logger.Warn().Msgf("client is behind, dropped %s", msg.Command)
	}
}

func (c *client) readPump() {
	defer func() {
		c.session.Detach(c)
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("websocket closed")
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug().Err(err).Msg("bad message")
			c.Notify(protocol.OutboundMessage{Command: protocol.Error, Error: "Invalid message format"})
			continue
		}

		if err := c.session.Receive(msg); err != nil {
			c.logger.Debug().Err(err).Msgf("%s refused", msg.Command)
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg)
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
