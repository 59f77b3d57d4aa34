package domain

// Мир
const (
	WorldXSize    = 20_000
	WorldYSize    = 20_000
	DeltaViewport = 100 // запас видимости вокруг окна для точек, против поп-ина на краях
)

// Игроки
const (
	DefaultPlayerSize = 20
)

// Точки
const (
	MaxDotsAmount = 10_000
	DotSize       = 10
)
