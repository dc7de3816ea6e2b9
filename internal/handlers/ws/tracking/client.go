package tracking

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second

	sendBufferSize = 64
)

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	joined map[int64]struct{}

	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		joined: make(map[int64]struct{}),
	}
}

// close помечает клиента отключённым. Канал send никогда не
// закрывается: читатель может конкурентно класть в него кадры, и
// закрытие превратило бы такую отправку в панику. Писатель один
// наблюдает done и завершает соединение.
func (c *client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// enqueue кладёт кадр в исходящий буфер. false — клиент отключён
// или буфер переполнен; отправка никогда не блокирует и не паникует.
func (c *client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// writePump — единственный писатель соединения. Пинги идут отсюда же,
// conn не потокобезопасен для записи.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
