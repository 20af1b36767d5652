package action

import (
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMissingType is returned when the input has no string "type" field.
	ErrMissingType = errors.New("missing action type")
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode parses a JSON action of the form
//
//	{"type": "todos/ADD", "payload": ..., "error": false, "meta": {...}}
//
// The payload is not decoded here: it is kept as json.RawMessage and decoded
// by the Creator whose case matches, into that creator's payload type.
func Decode(raw []byte) (Action, error) {
	if !gjson.ValidBytes(raw) {
		return Action{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Action{}, fmt.Errorf("%w: not an object", ErrInvalidJSON)
	}

	typ := root.Get("type")
	if typ.Type != gjson.String {
		return Action{}, ErrMissingType
	}

	a := Action{
		Type:  typ.String(),
		Error: root.Get("error").Bool(),
	}

	if p := root.Get("payload"); p.Exists() && p.Type != gjson.Null {
		a.Payload = json.RawMessage(p.Raw)
	}

	if m := root.Get("meta"); m.IsObject() {
		var meta Meta
		if err := codec.UnmarshalFromString(m.Raw, &meta); err != nil {
			return Action{}, fmt.Errorf("decode meta: %w", err)
		}
		a.Meta = meta
	}

	return a, nil
}

type wireAction struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   bool   `json:"error,omitempty"`
	Meta    Meta   `json:"meta,omitempty"`
}

// Encode renders an action in the format Decode reads.
func Encode(a Action) ([]byte, error) {
	if a.Type == "" {
		return nil, ErrMissingType
	}
	return codec.Marshal(wireAction(a))
}
