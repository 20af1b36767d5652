package reducer

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/bjaus/reducer/action"
)

// invoker wraps a typed handler so cases with different payload types can be
// stored in a single list. It fails only when the payload cannot be
// extracted.
type invoker[In, Out any] func(state In, a action.Action) (Out, error)

// entry is one registered case.
type entry[In, Out any] struct {
	matcher action.Matcher
	invoke  invoker[In, Out]
}

// Builder accumulates cases and produces reducers.
//
// Usage:
//  1. Create a builder with WithInitialState, WithoutInitialState or Upcasting
//  2. Register cases with Case, Cases, CaseWithAction and CasesWithAction
//  3. Optionally set a fallback with Default
//  4. Call Build for a frozen Reducer, or Reduce on the builder directly
//
// Registration mutates the builder in place and returns it, so calls can be
// chained or spread across several call sites. Build snapshots the current
// cases; use Clone to fork a builder.
//
// Builder is not safe for concurrent mutation. Reducers returned by Build are
// safe for concurrent use as long as the handlers are.
type Builder[In, Out any] struct {
	t table[In, Out]
}

// table is the state shared by live builders and built snapshots.
type table[In, Out any] struct {
	cases      []entry[In, Out]
	initial    In
	hasInitial bool
	nilable    bool
	narrow     func(In) Out
	fallback   ActionHandler[In, Out]
	hooks      hooks
}

// WithInitialState creates a builder whose reducers substitute v when invoked
// with an absent state. A state is absent when its type is nilable (pointer,
// map, slice, interface, func or channel) and it is nil. Value-typed states
// (structs, numbers, strings) are never absent, so v is never substituted for
// them; use a pointer state or WithoutInitialState.
//
// Example:
//
//	b := reducer.WithInitialState(&State{Data: "hello"})
//	reducer.Case(b, sliceData, func(s *State, from int) *State {
//	    return &State{Data: s.Data[from:]}
//	})
func WithInitialState[S any](v S, opts ...Option) *Builder[S, S] {
	b := newBuilder(identity[S], opts)
	b.t.initial = v
	b.t.hasInitial = true
	return b
}

// WithoutInitialState creates a builder whose reducers pass an absent state
// through unchanged to the matching handler or the no-op path.
func WithoutInitialState[S any](opts ...Option) *Builder[S, S] {
	return newBuilder(identity[S], opts)
}

// Upcasting creates a builder whose input state In is a superset of its output
// state Out. Handlers narrow In to Out themselves; narrow converts the state
// on the paths where no handler runs. It panics if narrow is nil.
//
// Example:
//
//	type Full struct{ Data string; Count int }
//	type Slim struct{ Data string }
//
//	b := reducer.Upcasting(func(f Full) Slim { return Slim{Data: f.Data} })
func Upcasting[In, Out any](narrow func(In) Out, opts ...Option) *Builder[In, Out] {
	if narrow == nil {
		panic("reducer: Upcasting requires a narrow function")
	}
	return newBuilder(narrow, opts)
}

func newBuilder[In, Out any](narrow func(In) Out, opts []Option) *Builder[In, Out] {
	b := &Builder[In, Out]{
		t: table[In, Out]{
			nilable: nilable[In](),
			narrow:  narrow,
		},
	}
	for _, opt := range opts {
		opt(&b.t.hooks)
	}
	return b
}

func identity[S any](s S) S { return s }

// Case registers a handler that receives the payload extracted by m. It
// panics if m or h is nil.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// If m matches an action but cannot extract its payload, the case is skipped,
// the OnPayloadError hooks run, and scanning continues with the next case.
//
// Example:
//
//	reducer.Case(b, sliceData, sliceDataHandler)
//	reducer.Case(b, dataToUpperCase, dataToUpperCaseHandler)
func Case[In, Out, P any](b *Builder[In, Out], m PayloadMatcher[P], h Handler[In, Out, P]) *Builder[In, Out] {
	mustRegister(m, h == nil)
	b.t.cases = append(b.t.cases, entry[In, Out]{
		matcher: m,
		invoke: func(state In, a action.Action) (Out, error) {
			p, err := m.Payload(a)
			if err != nil {
				var out Out
				return out, err
			}
			return h(state, p), nil
		},
	})
	return b
}

// Cases registers h once per matcher, in order. It is equivalent to calling
// Case for each matcher.
func Cases[In, Out, P any](b *Builder[In, Out], ms []PayloadMatcher[P], h Handler[In, Out, P]) *Builder[In, Out] {
	for _, m := range ms {
		Case(b, m, h)
	}
	return b
}

// CaseWithAction registers a handler that receives the whole action. It
// panics if m or h is nil.
func (b *Builder[In, Out]) CaseWithAction(m action.Matcher, h ActionHandler[In, Out]) *Builder[In, Out] {
	mustRegister(m, h == nil)
	b.t.cases = append(b.t.cases, entry[In, Out]{
		matcher: m,
		invoke: func(state In, a action.Action) (Out, error) {
			return h(state, a), nil
		},
	})
	return b
}

func mustRegister(m action.Matcher, nilHandler bool) {
	if m == nil {
		panic("reducer: nil matcher")
	}
	if nilHandler {
		panic("reducer: nil handler")
	}
}

// CasesWithAction registers h once per matcher, in order.
func (b *Builder[In, Out]) CasesWithAction(ms []action.Matcher, h ActionHandler[In, Out]) *Builder[In, Out] {
	for _, m := range ms {
		b.CaseWithAction(m, h)
	}
	return b
}

// Default sets the handler invoked when no case matches, replacing any
// previous default.
func (b *Builder[In, Out]) Default(h ActionHandler[In, Out]) *Builder[In, Out] {
	b.t.fallback = h
	return b
}

// Len returns the number of registered cases.
func (b *Builder[In, Out]) Len() int {
	return len(b.t.cases)
}

// Clone returns an independent builder with the same cases, initial state,
// default handler and hooks.
func (b *Builder[In, Out]) Clone() *Builder[In, Out] {
	return &Builder[In, Out]{t: b.t.snapshot()}
}

// Build returns a reducer frozen at the builder's current configuration.
// Later registrations on b do not affect it.
func (b *Builder[In, Out]) Build() Reducer[In, Out] {
	t := b.t.snapshot()
	return t.reduce
}

// Reduce invokes the builder's current cases. Unlike a built Reducer, it sees
// every later registration.
func (b *Builder[In, Out]) Reduce(state In, a action.Action) Out {
	return b.t.reduce(state, a)
}

func (t *table[In, Out]) snapshot() table[In, Out] {
	c := *t
	c.cases = slices.Clone(t.cases)
	c.hooks = t.hooks.clone()
	return c
}

// reduce runs the dispatch:
//  1. Substitute the initial state if the state is absent
//  2. Invoke the first case whose matcher accepts the action
//  3. Otherwise invoke the default handler
//  4. Otherwise return the state unchanged
func (t *table[In, Out]) reduce(state In, a action.Action) Out {
	if t.hasInitial && t.nilable && isNil(state) {
		state = t.initial
	}

	for i, c := range t.cases {
		if !c.matcher.Match(a) {
			continue
		}
		out, err := c.invoke(state, a)
		if err != nil {
			t.hooks.callOnPayloadError(a.Type, i, &PayloadError{Type: a.Type, Index: i, Err: err})
			continue
		}
		t.hooks.callOnMatch(a.Type, i)
		return out
	}

	if t.fallback != nil {
		t.hooks.callOnDefault(a.Type)
		return t.fallback(state, a)
	}

	t.hooks.callOnNoMatch(a.Type)
	return t.narrow(state)
}

func nilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func isNil[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsNil()
}

// PayloadError reports a case whose matcher accepted an action whose payload
// could not be extracted.
type PayloadError struct {
	Type  string
	Index int
	Err   error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("case %d: payload of %s: %v", e.Index, e.Type, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }
