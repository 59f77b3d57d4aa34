package api

import (
	"testing"

	"github.com/google/uuid"
)

func TestDecodeRequest(t *testing.T) {
	playerID := "f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4"
	dotID := "78a40100-4dc3-46e4-8a91-00e0316586e4"

	tests := []struct {
		name    string
		payload string
		want    RequestKind
	}{
		{
			"Create request",
			`{"viewport_size":{"x":1920,"y":1080}}`,
			RequestCreate,
		},
		{
			"Move request",
			`{"id":"` + playerID + `","size":25,"moved":{"x":10,"y":5},"dots_consumed":["` + dotID + `"]}`,
			RequestMove,
		},
		{
			"Move request without consumed dots",
			`{"id":"` + playerID + `","size":25,"moved":{"x":10,"y":5}}`,
			RequestMove,
		},
		{
			"Win request",
			`{"win_id":"` + playerID + `"}`,
			RequestWin,
		},
		{
			"Lose request",
			`{"lose_id":"` + playerID + `"}`,
			RequestLose,
		},
		{
			// Форма Create совпала, но viewport нулевой - Validate отбрасывает
			"Create with zero viewport",
			`{"viewport_size":{"x":0,"y":0}}`,
			RequestInvalid,
		},
		{
			"Empty object",
			`{}`,
			RequestInvalid,
		},
		{
			"Unknown fields",
			`{"action":"fly","speed":9000}`,
			RequestInvalid,
		},
		{
			"Malformed json",
			`{viewport_size`,
			RequestInvalid,
		},
		{
			"Not an object",
			`"hello"`,
			RequestInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeRequest([]byte(tt.payload)); got.Kind != tt.want {
				t.Errorf("DecodeRequest(%s).Kind = %v, want %v", tt.payload, got.Kind, tt.want)
			}
		})
	}
}

func TestDecodeRequestFields(t *testing.T) {
	playerID := uuid.MustParse("f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4")
	dotID := uuid.MustParse("78a40100-4dc3-46e4-8a91-00e0316586e4")

	payload := `{"id":"f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4","size":25,"moved":{"x":10,"y":5},"dots_consumed":["78a40100-4dc3-46e4-8a91-00e0316586e4"]}`
	request := DecodeRequest([]byte(payload))

	if request.Kind != RequestMove {
		t.Fatalf("Expected RequestMove, got %v", request.Kind)
	}
	move := request.Move
	if move.ID != playerID {
		t.Errorf("Expected id %s, got %s", playerID, move.ID)
	}
	if move.Size != 25 {
		t.Errorf("Expected size 25, got %d", move.Size)
	}
	if move.Moved.X != 10 || move.Moved.Y != 5 {
		t.Errorf("Expected moved (10,5), got %v", move.Moved)
	}
	if len(move.DotsConsumed) != 1 || move.DotsConsumed[0] != dotID {
		t.Errorf("Expected consumed [%s], got %v", dotID, move.DotsConsumed)
	}
}

// Порядок попыток фиксирован: Create разбирается первым, поэтому
// payload, подходящий под обе формы, обязан стать Create. Сейчас формы
// не пересекаются (strictUnmarshal), тест охраняет порядок на будущее.
func TestDecodeRequestOrder(t *testing.T) {
	payload := `{"viewport_size":{"x":800,"y":600}}`
	request := DecodeRequest([]byte(payload))

	if request.Kind != RequestCreate {
		t.Fatalf("Expected RequestCreate, got %v", request.Kind)
	}
	if request.Create.ViewportSize.X != 800 || request.Create.ViewportSize.Y != 600 {
		t.Errorf("Expected viewport (800,600), got %v", request.Create.ViewportSize)
	}
	if request.Move != nil || request.Win != nil || request.Lose != nil {
		t.Error("Expected only the Create pointer to be set")
	}
}
