package websocket

import "ecoavobot/internal/intent"

// Message types exchanged on the socket.
const (
	TypeConnected = "connected"
	TypeAnswer    = "answer"
	TypeError     = "error"
)

type clientMessage struct {
	Message string `json:"message"`
}

func (m clientMessage) toInput() intent.ClassifyInput {
	return intent.ClassifyInput{Message: m.Message}
}

type answerData struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Answer     string  `json:"answer"`
	Outcome    string  `json:"outcome"`
}

type serverMessage struct {
	Type  string      `json:"type"`
	Data  *answerData `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}
