package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/skin"
)

// Output represents the JSON output format.
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON writes one Output document per event.
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSON creates a JSON presenter writing to w.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return &JSON{enc: enc}
}

// Render writes the result as a success document.
func (j *JSON) Render(result *lookup.Result) error {
	return j.write(Output{
		Status:  "success",
		Data:    result,
		Message: fmt.Sprintf("Found player %q", result.Username),
	})
}

// Hide is a no-op.
func (j *JSON) Hide() {}

// Notify writes message as an error document.
func (j *JSON) Notify(message string) {
	_ = j.write(Output{Status: "error", Error: message})
}

// Downloaded writes the saved file as a success document.
func (j *JSON) Downloaded(saved *skin.Saved) {
	_ = j.write(Output{
		Status:  "success",
		Data:    saved,
		Message: fmt.Sprintf("Saved skin to %s", saved.Path),
	})
}

func (j *JSON) write(out Output) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(out); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// WriteJSON encodes a single Output document to w.
func WriteJSON(w io.Writer, out Output) error {
	return NewJSON(w).write(out)
}
