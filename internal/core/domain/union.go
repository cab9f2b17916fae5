package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a tagged value carries a type that this
// version does not know how to decode.
var ErrUnknownVariant = errors.New("unknown variant")

// variant is implemented by every member of a closed set of alternatives.
type variant interface {
	variantName() string
}

// envelope is the wire shape of a variant: {"type": ..., "payload": ...}.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func marshalVariant(v variant) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", v.variantName(), err)
	}
	if bytes.Equal(payload, []byte("{}")) {
		payload = nil
	}
	return json.Marshal(envelope{Type: v.variantName(), Payload: payload})
}

// decodeEnvelope reports ok=false for an absent or null value.
func decodeEnvelope(data []byte) (env envelope, ok bool, err error) {
	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return envelope{}, false, nil
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, false, err
	}
	if env.Type == "" {
		return envelope{}, false, fmt.Errorf("%w: missing type tag", ErrUnknownVariant)
	}
	return env, true, nil
}

func decodePayload[V any](raw json.RawMessage) (V, error) {
	var v V
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

func unknownVariant(union, name string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownVariant, union, name)
}
