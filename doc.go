// Package reducer builds pure state transition functions that dispatch on an
// action's type.
//
// A reducer maps the current state and an action to the next state. Instead of
// a hand-written switch over action types, register cases on a Builder: each
// case pairs a matcher with a handler. At invocation the cases are scanned in
// registration order and the first match wins. If nothing matches, the
// default handler runs, or the state is returned unchanged.
//
// # Quick Start
//
// Define actions with the action package:
//
//	var (
//	    actions         = action.NewFactory("")
//	    sliceData       = action.Define[int](actions, "SLICE_DATA")
//	    dataToUpperCase = action.Define[struct{}](actions, "DATA_TO_UPPERCASE")
//	)
//
// Create a builder and register handlers:
//
//	b := reducer.WithInitialState(&State{Data: "hello"})
//
//	reducer.Case(b, sliceData, func(s *State, from int) *State {
//	    return &State{Data: s.Data[from:]}
//	})
//	reducer.Case(b, dataToUpperCase, func(s *State, _ struct{}) *State {
//	    return &State{Data: strings.ToUpper(s.Data)}
//	})
//
//	reduce := b.Build()
//	next := reduce(nil, sliceData.New(1)) // &State{Data: "ello"}
//
// # Builders
//
// Three constructors exist:
//
//   - WithInitialState: absent states are replaced with the initial value
//   - WithoutInitialState: absent states are passed through
//   - Upcasting: the input state type is wider than the output state type
//
// A state is absent when its type is nilable (pointer, map, slice, interface,
// func or channel) and the value is nil. Value types are never absent.
//
// Registration mutates the builder and returns it:
//
//   - Case and Cases register handlers that receive a typed payload
//   - CaseWithAction and CasesWithAction register handlers that receive the
//     whole action
//   - Default sets the fallback handler
//
// Case and Cases are package-level functions because methods cannot declare
// their own type parameters.
//
// # Snapshots
//
// Build returns a Reducer frozen at the moment of the call. Cases registered
// afterwards are visible to later Build calls and to Builder.Reduce, never to
// earlier snapshots:
//
//	b := reducer.WithoutInitialState[*State]()
//	before := b.Build()
//	reducer.Case(b, sliceData, handler)
//	after := b.Build()
//
//	before(s, sliceData.New(1)) // s, unchanged
//	after(s, sliceData.New(1))  // handler result
//
// Clone forks a builder when two variants should share a common prefix of
// cases.
//
// # No-op Path
//
// When no case matches and no default is set, the reducer returns the state
// it was given. For pointer and map states this is the same reference, so
// callers can detect "no change" with ==.
//
// # Payloads
//
// Case extracts the payload with the matcher's Payload method. Actions decoded
// from JSON with action.Decode carry a raw payload that the creator decodes
// into its payload type. When extraction fails the case is skipped, the
// OnPayloadError hooks run, and scanning continues.
//
// # Hooks
//
// Hooks provide observability without coupling to a logging library:
//
//	b := reducer.WithoutInitialState[*State](
//	    reducer.WithOnNoMatch(func(actionType string) {
//	        slog.Info("unhandled action", "type", actionType)
//	    }),
//	    reducer.WithOnPayloadError(func(actionType string, index int, err error) {
//	        slog.Warn("bad payload", "type", actionType, "error", err)
//	    }),
//	)
//
// Available hooks:
//   - WithOnMatch: Called after a case handles an action
//   - WithOnDefault: Called before the default handler runs
//   - WithOnNoMatch: Called when the state is returned unchanged
//   - WithOnPayloadError: Called when a matching case cannot extract its payload
//
// # Errors
//
// Handlers cannot fail; a panicking handler propagates to the caller
// unrecovered. No match is not an error.
//
// # Thread Safety
//
// Builders are not safe for concurrent mutation. A Reducer returned by Build
// is safe for concurrent use when its handlers and hooks are.
package reducer
