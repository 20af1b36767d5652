package reducer

import "github.com/bjaus/reducer/action"

// Reducer is a pure state transition: it maps the current state (possibly
// absent) and an action to the next state.
//
// Reducers returned by Builder.Build are frozen snapshots; they expose no
// builder methods and are unaffected by later registrations.
type Reducer[In, Out any] func(state In, a action.Action) Out

// Handler computes the next state from the current state and a typed payload.
//
// Example:
//
//	func sliceData(s *State, from int) *State {
//	    return &State{Data: s.Data[from:]}
//	}
type Handler[In, Out, P any] func(state In, payload P) Out

// ActionHandler computes the next state from the current state and the whole
// action, including its type, error flag and metadata.
type ActionHandler[In, Out any] func(state In, a action.Action) Out

// PayloadMatcher is a Matcher that can also extract a typed payload from the
// actions it matches. action.Creator implements it.
type PayloadMatcher[P any] interface {
	action.Matcher
	Payload(a action.Action) (P, error)
}
