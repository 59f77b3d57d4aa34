package engine

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dmitryshur/agar-io-back/internal/domain"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

// ErrPlayerNotFound возвращается GetPlayer для неизвестного id.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRegistry владеет всеми игроками. Та же модель, что у DotField:
// единственная горутина-владелец сериализует команды из канала, чужие
// горутины состояние не трогают.
type PlayerRegistry struct {
	commands chan any
	done     chan struct{}

	players map[uuid.UUID]domain.Player
	count   uint32

	defaultSize uint32
	worldSize   domain.Coordinates

	rng *rand.Rand
}

type createPlayer struct {
	viewportSize domain.Coordinates
	reply        chan createPlayerResult
}

type createPlayerResult struct {
	id          uuid.UUID
	coordinates domain.Coordinates
}

// movePlayer - односторонняя команда: коллизия, если случилась,
// логируется владельцем, отправитель результата не получает.
type movePlayer struct {
	id    uuid.UUID
	size  uint32
	moved domain.Coordinates
}

type queryPlayer struct {
	id    uuid.UUID
	reply chan queryPlayerResult
}

type queryPlayerResult struct {
	player domain.Player
	err    error
}

type queryPlayersInViewport struct {
	id    uuid.UUID
	reply chan []domain.PlayerView
}

type queryPlayersCount struct {
	reply chan uint32
}

func NewPlayerRegistry(cfg Config, rng *rand.Rand) *PlayerRegistry {
	return &PlayerRegistry{
		commands:    make(chan any, 256),
		done:        make(chan struct{}),
		players:     make(map[uuid.UUID]domain.Player),
		defaultSize: cfg.DefaultPlayerSize,
		worldSize:   cfg.WorldSize,
		rng:         rng,
	}
}

func (r *PlayerRegistry) Start() {
	go r.run()
}

func (r *PlayerRegistry) Stop() {
	close(r.done)
}

func (r *PlayerRegistry) run() {
	for {
		select {
		case <-r.done:
			return
		case cmd := <-r.commands:
			r.handle(cmd)
		}
	}
}

func (r *PlayerRegistry) handle(cmd any) {
	switch c := cmd.(type) {
	case createPlayer:
		c.reply <- r.create(c.viewportSize)
	case movePlayer:
		if event := r.move(c.id, c.size, c.moved); event != nil {
			// Результат коллизии пока только логируем: клиенты сами
			// считают поглощение и шлют win/lose.
			// TODO: пушить CollisionEvent сессиям победителя и проигравшего.
			logger.Log.WithFields(logrus.Fields{
				"winner":      event.WinnerID,
				"winner_size": event.WinnerSize,
				"loser":       event.LoserID,
			}).Debug("Collision resolved")
		}
	case queryPlayer:
		player, err := r.get(c.id)
		c.reply <- queryPlayerResult{player: player, err: err}
	case queryPlayersInViewport:
		c.reply <- r.playersInViewport(c.id)
	case queryPlayersCount:
		c.reply <- r.count
	default:
		logger.Log.Warnf("PlayerRegistry: unknown command %T", cmd)
	}
}

// CreatePlayer заводит игрока дефолтного размера в случайной точке мира
// и возвращает выданный id вместе со стартовыми координатами.
func (r *PlayerRegistry) CreatePlayer(viewportSize domain.Coordinates) (uuid.UUID, domain.Coordinates) {
	reply := make(chan createPlayerResult, 1)
	r.commands <- createPlayer{viewportSize: viewportSize, reply: reply}
	result := <-reply
	return result.id, result.coordinates
}

// MovePlayer применяет движение. Односторонний вызов: ответа нет,
// неизвестный id - тихий no-op.
func (r *PlayerRegistry) MovePlayer(id uuid.UUID, size uint32, moved domain.Coordinates) {
	r.commands <- movePlayer{id: id, size: size, moved: moved}
}

// GetPlayer возвращает копию игрока или ErrPlayerNotFound.
func (r *PlayerRegistry) GetPlayer(id uuid.UUID) (domain.Player, error) {
	reply := make(chan queryPlayerResult, 1)
	r.commands <- queryPlayer{id: id, reply: reply}
	result := <-reply
	return result.player, result.err
}

// PlayersInViewport возвращает всех ДРУГИХ игроков, чьи квадраты
// пересекают вьюпорт игрока id (в мировых координатах). Для неизвестного
// id - пустой срез, не ошибка.
func (r *PlayerRegistry) PlayersInViewport(id uuid.UUID) []domain.PlayerView {
	reply := make(chan []domain.PlayerView, 1)
	r.commands <- queryPlayersInViewport{id: id, reply: reply}
	return <-reply
}

// Count возвращает количество игроков в реестре (debug-эндпоинт и тесты).
func (r *PlayerRegistry) Count() uint32 {
	reply := make(chan uint32, 1)
	r.commands <- queryPlayersCount{reply: reply}
	return <-reply
}

// --- Внутренности: вызываются только из цикла run ---

func (r *PlayerRegistry) create(viewportSize domain.Coordinates) createPlayerResult {
	player := domain.Player{
		Size:         r.defaultSize,
		Coordinates:  domain.RandomCoordinates(r.rng, r.worldSize),
		ViewportSize: viewportSize,
	}
	id := uuid.New()

	r.players[id] = player
	r.count++

	return createPlayerResult{id: id, coordinates: player.Coordinates}
}

// move мутирует игрока и сканирует остальных на пересечение.
// Побеждает только строго больший двигавшийся игрок; ничья или проигрыш
// с точки зрения двигавшегося события не порождают и оппонента не трогают.
// Скан останавливается на ПЕРВОМ пересечении в порядке обхода мапы -
// при одновременном наезде на нескольких игроков результат
// недетерминирован, см. players_test.go.
func (r *PlayerRegistry) move(id uuid.UUID, size uint32, moved domain.Coordinates) *domain.CollisionEvent {
	player, ok := r.players[id]
	if !ok {
		return nil
	}

	player.Size = size
	player.Coordinates = player.Coordinates.Add(moved)
	r.players[id] = player

	for otherID, other := range r.players {
		if otherID == id {
			continue
		}

		if domain.SquaresOverlap(player.Coordinates, player.Size, other.Coordinates, other.Size) {
			if player.Size > other.Size {
				return &domain.CollisionEvent{
					WinnerID:   id,
					WinnerSize: player.Size + other.Size,
					LoserID:    otherID,
				}
			}
			return nil
		}
	}

	return nil
}

func (r *PlayerRegistry) get(id uuid.UUID) (domain.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return domain.Player{}, ErrPlayerNotFound
	}
	return player, nil
}

func (r *PlayerRegistry) playersInViewport(id uuid.UUID) []domain.PlayerView {
	player, ok := r.players[id]
	if !ok {
		return []domain.PlayerView{}
	}

	// Для игроков запас видимости не добавляется: виден ровно вьюпорт.
	rect := domain.ViewportRect(player.Coordinates, player.ViewportSize, 0)

	visible := make([]domain.PlayerView, 0)
	for otherID, other := range r.players {
		if otherID == id {
			continue
		}
		if rect.IntersectsSquare(other.Coordinates, other.Size) {
			visible = append(visible, domain.PlayerView{
				Coordinates: other.Coordinates,
				Size:        other.Size,
			})
		}
	}
	return visible
}
