package domain

// Rect - прямоугольник видимости. Минимальная сторона включается,
// максимальная - нет: [MinX, MaxX) x [MinY, MaxY). Асимметрия сделана
// намеренно, чтобы точка на общей границе двух соседних запросов не
// попадала в оба результата.
type Rect struct {
	MinX uint32
	MaxX uint32
	MinY uint32
	MaxY uint32
}

// ViewportRect строит прямоугольник вокруг origin: половина viewport в
// каждую сторону. margin корректирует обе границы наружу по формуле
// min = origin - viewport/2 + margin, max = origin + viewport/2 + margin;
// минимальная граница прижимается к нулю вместо переполнения.
func ViewportRect(origin, viewport Coordinates, margin uint32) Rect {
	return Rect{
		MinX: subClamp(int64(origin.X)+int64(margin), int64(viewport.X)/2),
		MaxX: origin.X + viewport.X/2 + margin,
		MinY: subClamp(int64(origin.Y)+int64(margin), int64(viewport.Y)/2),
		MaxY: origin.Y + viewport.Y/2 + margin,
	}
}

// ContainsSquare сообщает, лежит ли квадрат size со всем своим футпринтом
// внутри прямоугольника (строго - по максимальной стороне).
func (r Rect) ContainsSquare(pos Coordinates, size uint32) bool {
	return pos.X >= r.MinX && pos.X+size < r.MaxX &&
		pos.Y >= r.MinY && pos.Y+size < r.MaxY
}

// IntersectsSquare сообщает, пересекает ли квадрат size прямоугольник
// хотя бы частично. Используется для игроков: игрок виден, даже если
// торчит из-за границы окна.
func (r Rect) IntersectsSquare(pos Coordinates, size uint32) bool {
	return pos.X+size >= r.MinX && pos.X < r.MaxX &&
		pos.Y+size >= r.MinY && pos.Y < r.MaxY
}

// Translate переводит мировую точку в координаты, относительные
// минимальному углу прямоугольника.
func (r Rect) Translate(pos Coordinates) Coordinates {
	return Coordinates{X: pos.X - r.MinX, Y: pos.Y - r.MinY}
}

// SquaresOverlap - классический AABB-тест для двух квадратов.
func SquaresOverlap(aPos Coordinates, aSize uint32, bPos Coordinates, bSize uint32) bool {
	return aPos.X < bPos.X+bSize && aPos.X+aSize > bPos.X &&
		aPos.Y < bPos.Y+bSize && aPos.Y+aSize > bPos.Y
}
