package domain

import "github.com/google/uuid"

// Player - подконтрольная клиенту сущность: квадрат со стороной Size,
// Coordinates - его верхний левый угол. ViewportSize фиксируется при
// подключении и равен размеру окна клиента.
type Player struct {
	Size         uint32
	Coordinates  Coordinates
	ViewportSize Coordinates
}

// PlayerView - то, что другие клиенты видят про игрока: мировые
// координаты и размер, без id и viewport.
type PlayerView struct {
	Coordinates Coordinates `json:"coordinates"`
	Size        uint32      `json:"size"`
}

// CollisionEvent - результат наезда одного игрока на другого после
// движения. Побеждает строго больший; его новый размер - сумма обоих.
type CollisionEvent struct {
	WinnerID   uuid.UUID
	WinnerSize uint32
	LoserID    uuid.UUID
}
