package domain

import "math/rand"

// Coordinates - точка мира. Мир беззнаковый: обе оси лежат в
// [0, WorldXSize) x [0, WorldYSize), поэтому любая вычитающая арифметика
// обязана прижиматься к нулю, а не переполняться.
type Coordinates struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Add возвращает координаты, сдвинутые на delta.
func (c Coordinates) Add(delta Coordinates) Coordinates {
	return Coordinates{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// RandomCoordinates генерирует точку внутри мира размером worldSize.
// Генератор передается снаружи: каждый владелец состояния держит свой
// собственный rand.Rand (см. internal/engine).
func RandomCoordinates(rng *rand.Rand, worldSize Coordinates) Coordinates {
	return Coordinates{
		X: uint32(rng.Intn(int(worldSize.X))),
		Y: uint32(rng.Intn(int(worldSize.Y))),
	}
}

// subClamp вычитает b из a, возвращая 0 вместо переполнения вниз.
func subClamp(a, b int64) uint32 {
	if d := a - b; d > 0 {
		return uint32(d)
	}
	return 0
}
