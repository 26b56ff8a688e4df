package model

import (
	"encoding/json"
	"fmt"
)

// Overlay is a text annotation rendered on top of the live stream.
// Text and Position hold the client's JSON values verbatim; the server never interprets them.
// The JSON shape keeps the "_id" key browser clients already read.
type Overlay struct {
	ID       string          `json:"_id"`
	Text     json.RawMessage `json:"text" swaggertype:"object"`
	Position json.RawMessage `json:"position" swaggertype:"object"`
}

// OverlayInput is the client-supplied body for create and update.
// A nil field means the key was absent from the body. An explicit JSON null
// is present and kept as the literal "null".
type OverlayInput struct {
	Text     json.RawMessage `json:"text" swaggertype:"object"`
	Position json.RawMessage `json:"position" swaggertype:"object"`
}

// UnmarshalJSON records which keys the body carried, whatever their JSON type.
func (in *OverlayInput) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("overlay body must be a JSON object: %w", err)
	}
	*in = OverlayInput{}
	if v, ok := fields["text"]; ok {
		in.Text = v
	}
	if v, ok := fields["position"]; ok {
		in.Position = v
	}
	return nil
}
