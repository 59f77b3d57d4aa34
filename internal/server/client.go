package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitryshur/agar-io-back/internal/engine"
	"github.com/dmitryshur/agar-io-back/pkg/api"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendQueueSize  = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и координатором мира.
// Реализует engine.Session: исходящие сообщения складываются в
// буферизованный канал и уходят через writePump.
type Client struct {
	World *engine.World
	Conn  *websocket.Conn

	send chan any
	done chan struct{}

	pingPeriod time.Duration
	timeout    time.Duration
}

func NewClient(world *engine.World, conn *websocket.Conn, cfg engine.Config) *Client {
	return &Client{
		World:      world,
		Conn:       conn,
		send:       make(chan any, sendQueueSize),
		done:       make(chan struct{}),
		pingPeriod: cfg.PingInterval,
		timeout:    cfg.ClientTimeout,
	}
}

// Push реализует engine.Session. Никогда не блокирует: при переполнении
// очереди или закрытой сессии сообщение теряется, это допустимо для
// широковещательных снапшотов и недопустимо было бы для тика рассылки.
func (c *Client) Push(message any) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// readPump читает запросы клиента. Любой входящий фрейм (данные или
// pong) сдвигает дедлайн чтения; молчание дольше timeout закрывает
// соединение, и defer уведомляет координатор.
func (c *Client) readPump() {
	defer func() {
		c.World.Disconnect(c)
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close after readPump failed")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(c.timeout))
	})

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Warn("WS read error")
			}
			return
		}
		if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			logger.Log.WithError(err).Warn("failed to reset read deadline")
		}

		c.dispatch(payload)
	}
}

// dispatch разбирает payload и маршрутизирует его координатору.
// Ошибки протокола локальны: мусорное сообщение логируется и
// выбрасывается, соединение живет дальше.
func (c *Client) dispatch(payload []byte) {
	request := api.DecodeRequest(payload)

	switch request.Kind {
	case api.RequestCreate:
		response := c.World.Connect(*request.Create, c)
		if !c.Push(response) {
			logger.Log.WithField("player_id", response.ID).Error("Create response dropped: send queue full")
		}
	case api.RequestMove:
		c.World.Move(*request.Move)
	case api.RequestWin:
		logger.Log.WithField("win_id", request.Win.WinID).Info("Got win message")
	case api.RequestLose:
		logger.Log.WithField("lose_id", request.Lose.LoseID).Info("Got lose message")
	default:
		logger.Log.WithField("payload", string(payload)).Debug("Invalid message dropped")
	}
}

// writePump отправляет исходящие сообщения и пинги.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close after writePump failed")
		}
	}()

	for {
		select {
		case <-c.done:
			if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
				logger.Log.WithError(err).Debug("write close message failed")
			}
			return

		case message := <-c.send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
