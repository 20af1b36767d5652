// Package action defines tagged actions and the matchers reducers dispatch on.
//
// An Action carries a Type discriminant, an optional payload, an error flag
// and metadata. Creators build and recognize actions of a single type:
//
//	todos := action.NewFactory("todos")
//	add := action.Define[string](todos, "ADD")
//
//	a := add.New("buy milk") // Action{Type: "todos/ADD", Payload: "buy milk"}
//	add.Match(a)             // true
//	text, err := add.Payload(a)
//
// Async operations get a started/done/failed triple:
//
//	fetch := action.DefineAsync[string, User, string](users, "FETCH")
//	fetch.Started.Type() // "users/FETCH_STARTED"
//
// # Matchers
//
// Composable matchers are provided:
//   - Type: Action type equals one of the given types
//   - Prefix: Action type starts with a prefix
//   - IsError: Error flag is set
//   - HasMeta: Metadata keys are present
//   - MetaEquals: Metadata value equals
//   - And, Or, Not: Combinators
//
// # Wire Format
//
// Decode and Encode read and write
//
//	{"type": "todos/ADD", "payload": "buy milk", "error": false, "meta": {}}
//
// Decode leaves the payload as json.RawMessage; the creator that matches the
// action decodes it into its own payload type.
package action
