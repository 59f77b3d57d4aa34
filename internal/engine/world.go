package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dmitryshur/agar-io-back/pkg/api"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

// Session - исходящая сторона одного клиентского подключения.
// Реализуется транспортным слоем (internal/server.Client).
type Session interface {
	// Push ставит сообщение в очередь отправки. Возвращает false, если
	// очередь переполнена или сессия мертва; доставка не гарантируется.
	Push(message any) bool
}

// World - координатор: владеет картой подключение -> игрок и
// склеивает межвладельческие последовательности (подключение, движение
// с поеданием точек). Сам state игроков и точек он не трогает - только
// ходит к их владельцам. Карта подключений закрыта RWMutex-ом:
// это единственный разделяемый ресурс координатора, и критические
// секции на ней короткие.
type World struct {
	mu          sync.RWMutex
	connections map[Session]uuid.UUID

	players *PlayerRegistry
	dots    *DotField

	cfg  Config
	done chan struct{}
}

func NewWorld(cfg Config, players *PlayerRegistry, dots *DotField) *World {
	return &World{
		connections: make(map[Session]uuid.UUID),
		players:     players,
		dots:        dots,
		cfg:         cfg,
		done:        make(chan struct{}),
	}
}

// Start запускает широковещательные тики.
func (w *World) Start() {
	go w.runBroadcasts()
}

func (w *World) Stop() {
	close(w.done)
}

// Connect обрабатывает первый запрос сессии: создает игрока, запрашивает
// видимые ему точки и регистрирует подключение. Запрос точек обязан
// использовать координаты, выданные реестром, - это строгая зависимость,
// а не произвольный порядок.
func (w *World) Connect(request api.CreateRequest, session Session) api.CreateResponse {
	id, coordinates := w.players.CreatePlayer(request.ViewportSize)
	dots := w.dots.ViewportDots(coordinates, request.ViewportSize)

	w.mu.Lock()
	w.connections[session] = id
	w.mu.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"player_id": id,
		"pos_x":     coordinates.X,
		"pos_y":     coordinates.Y,
	}).Info("Player connected")

	return api.CreateResponse{
		ID:        id,
		WorldSize: w.cfg.WorldSize,
		Dots:      dots,
	}
}

// Disconnect убирает подключение из карты. Сам игрок остается в реестре:
// так вел себя оригинальный мир, и мы воспроизводим это поведение
// (осиротевшие игроки продолжают занимать место и участвовать в
// коллизиях). Лог делает утечку наблюдаемой.
func (w *World) Disconnect(session Session) {
	w.mu.Lock()
	id, ok := w.connections[session]
	delete(w.connections, session)
	w.mu.Unlock()

	if ok {
		logger.Log.WithField("player_id", id).Info("Player disconnected, entry kept in registry")
	}
}

// Move пересылает движение владельцам. Обе команды односторонние и
// независимые: порядок между удалением точек и движением не важен,
// но обе обязаны уйти.
func (w *World) Move(request api.MoveRequest) {
	if len(request.DotsConsumed) > 0 {
		w.dots.DeleteDots(request.DotsConsumed)
	}
	w.players.MovePlayer(request.ID, request.Size, request.Moved)
}

// ConnectionCount возвращает число живых подключений (debug-эндпоинт).
func (w *World) ConnectionCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.connections)
}

// Players и Dots отдают владельцев состояния для debug-эндпоинтов.
// Мутировать их напрямую снаружи все равно нельзя - только командами.
func (w *World) Players() *PlayerRegistry {
	return w.players
}

func (w *World) Dots() *DotField {
	return w.dots
}

func (w *World) runBroadcasts() {
	dotsTicker := time.NewTicker(w.cfg.DotsBroadcastInterval)
	playersTicker := time.NewTicker(w.cfg.PlayersBroadcastInterval)
	defer dotsTicker.Stop()
	defer playersTicker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-dotsTicker.C:
			w.broadcastDots()
		case <-playersTicker.C:
			w.broadcastPlayers()
		}
	}
}

// snapshotConnections копирует карту под RLock: сами рассылки ходят
// к владельцам state и в сокеты, держать на это блокировку нельзя.
func (w *World) snapshotConnections() map[Session]uuid.UUID {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snapshot := make(map[Session]uuid.UUID, len(w.connections))
	for session, id := range w.connections {
		snapshot[session] = id
	}
	return snapshot
}

// broadcastDots пушит каждой сессии точки, видимые ее игроку.
// Каждая сессия - независимая единица работы: медленный или мертвый
// клиент не задерживает остальных и сам тик.
func (w *World) broadcastDots() {
	for session, id := range w.snapshotConnections() {
		go func(session Session, id uuid.UUID) {
			player, err := w.players.GetPlayer(id)
			if err != nil {
				// Подключение есть, игрока нет - возможно при гонке
				// с отключением; для рассылки это не ошибка.
				logger.Log.WithField("player_id", id).Debug("Dots broadcast: player vanished")
				return
			}

			dots := w.dots.ViewportDots(player.Coordinates, player.ViewportSize)
			if !session.Push(api.DotsResponse{Dots: dots}) {
				logger.Log.WithField("player_id", id).Warn("Dots broadcast: session queue full, dropped")
			}
		}(session, id)
	}
}

// broadcastPlayers пушит каждой сессии соседей по вьюпорту.
// Пустой список тоже отправляется: клиент должен убрать ушедших.
func (w *World) broadcastPlayers() {
	for session, id := range w.snapshotConnections() {
		go func(session Session, id uuid.UUID) {
			visible := w.players.PlayersInViewport(id)
			if !session.Push(api.PlayersResponse{Players: visible}) {
				logger.Log.WithField("player_id", id).Warn("Players broadcast: session queue full, dropped")
			}
		}(session, id)
	}
}
