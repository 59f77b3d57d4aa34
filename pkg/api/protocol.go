package api

import (
	"github.com/google/uuid"

	"github.com/dmitryshur/agar-io-back/internal/domain"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// CreateRequest - первый запрос новой сессии: клиент сообщает размер
// своего окна и просит заспавнить игрока.
type CreateRequest struct {
	// ViewportSize размер видимой области клиента в пикселях.
	// Фиксируется на все время жизни игрока.
	ViewportSize domain.Coordinates `json:"viewport_size"`
}

// MoveRequest - перемещение игрока. Fire-and-forget: сервер не отвечает.
// Клиенту доверяем и размер, и смещение (анти-чит вне скоупа ядра).
type MoveRequest struct {
	// ID игрока, выданный в CreateResponse.
	ID uuid.UUID `json:"id"`

	// Size текущий размер игрока по версии клиента.
	Size uint32 `json:"size"`

	// Moved смещение, прибавляемое к текущим координатам.
	Moved domain.Coordinates `json:"moved"`

	// DotsConsumed точки, которые клиент съел с прошлого запроса.
	// Может быть пустым. Уже удаленные id молча игнорируются -
	// клиенты гоняются за одними и теми же точками.
	DotsConsumed []uuid.UUID `json:"dots_consumed"`
}

// WinRequest - клиент сообщает, что поглотил другого игрока.
// Сервер только логирует: авторитетного применения пока нет.
type WinRequest struct {
	WinID uuid.UUID `json:"win_id"`
}

// LoseRequest - клиент сообщает, что был поглощен.
type LoseRequest struct {
	LoseID uuid.UUID `json:"lose_id"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// CreateResponse - ответ на CreateRequest.
type CreateResponse struct {
	// ID выданный игроку идентификатор. Клиент обязан передавать его
	// в каждом MoveRequest.
	ID uuid.UUID `json:"id"`

	// WorldSize полный размер мира (для отрисовки миникарты/границ).
	WorldSize domain.Coordinates `json:"world_size"`

	// Dots видимые точки. Координаты относительны минимальному углу
	// прямоугольника видимости, НЕ мировые.
	Dots map[uuid.UUID]domain.Coordinates `json:"dots"`
}

// DotsResponse - периодический пуш видимых точек (раз в
// DotsBroadcastInterval). Координаты относительные, как в CreateResponse.
type DotsResponse struct {
	Dots map[uuid.UUID]domain.Coordinates `json:"dots"`
}

// PlayersResponse - периодический пуш соседей по вьюпорту (раз в
// PlayersBroadcastInterval). Здесь координаты МИРОВЫЕ: клиент сам
// переводит их в экранные относительно своего игрока.
type PlayersResponse struct {
	Players []domain.PlayerView `json:"players"`
}
