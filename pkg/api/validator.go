package api

import (
	"errors"

	"github.com/google/uuid"
)

// Validator реализуют входящие DTO. Декодер (см. decode.go) использует
// Validate, чтобы отличить "форма совпала" от "совпала случайно":
// протокол бестеговый, и пустой JSON успешно декодируется в любую форму.
type Validator interface {
	Validate() error
}

func (r CreateRequest) Validate() error {
	if r.ViewportSize.X == 0 || r.ViewportSize.Y == 0 {
		return errors.New("viewport_size is required")
	}
	return nil
}

func (r MoveRequest) Validate() error {
	if r.ID == uuid.Nil {
		return errors.New("player id is required")
	}
	return nil
}

func (r WinRequest) Validate() error {
	if r.WinID == uuid.Nil {
		return errors.New("win_id is required")
	}
	return nil
}

func (r LoseRequest) Validate() error {
	if r.LoseID == uuid.Nil {
		return errors.New("lose_id is required")
	}
	return nil
}
