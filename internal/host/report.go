package host

import (
	"encoding/json"
	"sync"
)

// Message is the single structured payload that crosses the embedding
// boundary when a run ends.
type Message struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload"`
}

// Payload carries the run's final score.
type Payload struct {
	Score int `json:"score"`
}

// GameOver builds the end-of-run message for the given score.
func GameOver(score int) Message {
	return Message{Type: "gameOver", Payload: Payload{Score: score}}
}

// Encode renders the message as JSON.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

var reportOnce sync.Once

// ReportGameOver delivers the game-over message to the embedding parent
// context. It fires at most once per process, and only when the game is
// actually embedded; standalone runs are a silent no-op.
func ReportGameOver(score int) {
	reportOnce.Do(func() {
		if !Embedded() {
			return
		}
		post(GameOver(score))
	})
}
