package domain

import "testing"

func TestViewportRect(t *testing.T) {
	tests := []struct {
		name     string
		origin   Coordinates
		viewport Coordinates
		margin   uint32
		want     Rect
	}{
		{
			// origin - vp/2 + margin < 0: граница прижимается к нулю
			"Clamped at origin",
			Coordinates{X: 0, Y: 0}, Coordinates{X: 1000, Y: 1000}, 100,
			Rect{MinX: 0, MaxX: 600, MinY: 0, MaxY: 600},
		},
		{
			"Interior origin",
			Coordinates{X: 1000, Y: 1000}, Coordinates{X: 1000, Y: 1000}, 100,
			Rect{MinX: 600, MaxX: 1600, MinY: 600, MaxY: 1600},
		},
		{
			// Прижатие только по одной оси
			"Clamped on X only",
			Coordinates{X: 0, Y: 600}, Coordinates{X: 1000, Y: 1000}, 100,
			Rect{MinX: 0, MaxX: 600, MinY: 200, MaxY: 1200},
		},
		{
			// Без запаса (так строится вьюпорт игроков)
			"Zero margin",
			Coordinates{X: 200, Y: 200}, Coordinates{X: 500, Y: 500}, 0,
			Rect{MinX: 0, MaxX: 450, MinY: 0, MaxY: 450},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewportRect(tt.origin, tt.viewport, tt.margin); got != tt.want {
				t.Errorf("ViewportRect(%v, %v, %d) = %+v, want %+v", tt.origin, tt.viewport, tt.margin, got, tt.want)
			}
		})
	}
}

func TestRectContainsSquare(t *testing.T) {
	rect := Rect{MinX: 100, MaxX: 200, MinY: 100, MaxY: 200}

	tests := []struct {
		name string
		pos  Coordinates
		size uint32
		want bool
	}{
		{"Inside", Coordinates{X: 150, Y: 150}, 10, true},
		{"On min edge", Coordinates{X: 100, Y: 100}, 10, true},  // минимальная сторона включается
		{"Touching max edge", Coordinates{X: 190, Y: 150}, 10, false}, // 190+10 == 200, строго меньше не выполняется
		{"Just inside max edge", Coordinates{X: 189, Y: 150}, 10, true},
		{"Below min", Coordinates{X: 99, Y: 150}, 10, false},
		{"Outside", Coordinates{X: 300, Y: 300}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.ContainsSquare(tt.pos, tt.size); got != tt.want {
				t.Errorf("ContainsSquare(%v, %d) = %v, want %v", tt.pos, tt.size, got, tt.want)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	rect := Rect{MinX: 600, MaxX: 1600, MinY: 200, MaxY: 1200}

	got := rect.Translate(Coordinates{X: 900, Y: 900})
	want := Coordinates{X: 300, Y: 700}
	if got != want {
		t.Errorf("Translate = %v, want %v", got, want)
	}
}

func TestSquaresOverlap(t *testing.T) {
	tests := []struct {
		name  string
		aPos  Coordinates
		aSize uint32
		bPos  Coordinates
		bSize uint32
		want  bool
	}{
		{"Overlapping", Coordinates{X: 100, Y: 100}, 20, Coordinates{X: 110, Y: 110}, 10, true},
		{"Touching edges", Coordinates{X: 100, Y: 100}, 10, Coordinates{X: 110, Y: 100}, 10, false}, // касание - не пересечение
		{"Contained", Coordinates{X: 100, Y: 100}, 50, Coordinates{X: 110, Y: 110}, 10, true},
		{"Far apart", Coordinates{X: 0, Y: 0}, 10, Coordinates{X: 1000, Y: 1000}, 10, false},
		{"Diagonal corner overlap", Coordinates{X: 100, Y: 100}, 11, Coordinates{X: 110, Y: 110}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquaresOverlap(tt.aPos, tt.aSize, tt.bPos, tt.bSize); got != tt.want {
				t.Errorf("SquaresOverlap = %v, want %v", got, tt.want)
			}
			// Тест симметричен по построению
			if got := SquaresOverlap(tt.bPos, tt.bSize, tt.aPos, tt.aSize); got != tt.want {
				t.Errorf("SquaresOverlap (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
