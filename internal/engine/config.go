package engine

import (
	"time"

	"github.com/dmitryshur/agar-io-back/internal/domain"
)

// Config хранит все тюнабельные параметры симуляции.
// Дефолты совпадают с константами domain; тесты и main могут
// переопределять любое поле.
type Config struct {
	// Seed - зерно для генераторов координат. От него зависят стартовые
	// позиции точек и игроков (каждый владелец состояния получает свой
	// rand.Rand, производный от Seed).
	Seed int64

	// Геометрия мира.
	WorldSize         domain.Coordinates
	DefaultPlayerSize uint32
	DotSize           uint32
	MaxDots           uint32
	ViewportDelta     uint32

	// Интервалы тиков.
	DotsRegenInterval        time.Duration // самогенерация точек до капа
	DotsBroadcastInterval    time.Duration // пуш видимых точек всем сессиям
	PlayersBroadcastInterval time.Duration // пуш соседей всем сессиям

	// Keepalive сессий (используется слоем транспорта).
	PingInterval  time.Duration
	ClientTimeout time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:              time.Now().UnixNano(),
		WorldSize:         domain.Coordinates{X: domain.WorldXSize, Y: domain.WorldYSize},
		DefaultPlayerSize: domain.DefaultPlayerSize,
		DotSize:           domain.DotSize,
		MaxDots:           domain.MaxDotsAmount,
		ViewportDelta:     domain.DeltaViewport,

		DotsRegenInterval:        5 * time.Second,
		DotsBroadcastInterval:    2 * time.Second,
		PlayersBroadcastInterval: 1 * time.Second,

		PingInterval:  2 * time.Second,
		ClientTimeout: 10 * time.Second,
	}
}
