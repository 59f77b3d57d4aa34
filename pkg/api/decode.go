package api

import (
	"bytes"
	"encoding/json"
)

// RequestKind - явный тег распознанного запроса. В самом протоколе тега
// нет (исторически клиент шлет "голые" JSON-объекты), поэтому тег
// восстанавливается структурно при декодировании.
type RequestKind int

const (
	RequestInvalid RequestKind = iota
	RequestCreate
	RequestMove
	RequestWin
	RequestLose
)

// Request - размеченное объединение всех входящих запросов.
// Заполнен ровно один указатель, соответствующий Kind;
// для RequestInvalid не заполнен ни один.
type Request struct {
	Kind   RequestKind
	Create *CreateRequest
	Move   *MoveRequest
	Win    *WinRequest
	Lose   *LoseRequest
}

// DecodeRequest распознает входящий payload, пробуя формы в
// фиксированном порядке: Create, Move, Win, Lose. Форма считается
// совпавшей, если payload декодируется без неизвестных полей и проходит
// Validate. Если не совпала ни одна - возвращается RequestInvalid;
// ошибок декодер не возвращает никогда, мусор от клиента не фатален.
func DecodeRequest(payload []byte) Request {
	var create CreateRequest
	if strictUnmarshal(payload, &create) == nil && create.Validate() == nil {
		return Request{Kind: RequestCreate, Create: &create}
	}

	var move MoveRequest
	if strictUnmarshal(payload, &move) == nil && move.Validate() == nil {
		return Request{Kind: RequestMove, Move: &move}
	}

	var win WinRequest
	if strictUnmarshal(payload, &win) == nil && win.Validate() == nil {
		return Request{Kind: RequestWin, Win: &win}
	}

	var lose LoseRequest
	if strictUnmarshal(payload, &lose) == nil && lose.Validate() == nil {
		return Request{Kind: RequestLose, Lose: &lose}
	}

	return Request{Kind: RequestInvalid}
}

// strictUnmarshal декодирует с запретом неизвестных полей: без него
// MoveRequest успешно "совпал" бы с любым payload, у которого есть id.
func strictUnmarshal(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
