package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrDuplicateType is the panic value (wrapped) when a factory defines
	// the same action type twice.
	ErrDuplicateType = errors.New("duplicate action type")

	// ErrPayloadType is returned when an action's payload is neither the
	// creator's payload type nor raw JSON.
	ErrPayloadType = errors.New("unexpected payload type")

	// ErrPayloadDecode is returned when a raw JSON payload does not decode
	// into the creator's payload type.
	ErrPayloadDecode = errors.New("decode payload")
)

// Factory defines action creators that share a type prefix.
//
// Factory is not safe for concurrent use. Define creators at package
// initialization, the way handlers are registered on a mux.
type Factory struct {
	prefix  string
	isError func(payload any) bool
	types   []string
	seen    map[string]struct{}
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithErrorPayloads sets the predicate that decides the Error flag of actions
// built by the factory's creators. By default a payload is an error when it
// implements the error interface.
func WithErrorPayloads(fn func(payload any) bool) FactoryOption {
	return func(f *Factory) {
		f.isError = fn
	}
}

// NewFactory creates a Factory. Types defined on it are "prefix/name", or just
// "name" when prefix is empty.
//
// Example:
//
//	todos := action.NewFactory("todos")
//	add := action.Define[string](todos, "ADD") // type "todos/ADD"
func NewFactory(prefix string, opts ...FactoryOption) *Factory {
	f := &Factory{
		prefix:  prefix,
		isError: payloadIsError,
		seen:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Prefix returns the factory's type prefix.
func (f *Factory) Prefix() string { return f.prefix }

// Types returns the defined action types in definition order.
func (f *Factory) Types() []string {
	return append([]string(nil), f.types...)
}

func (f *Factory) qualify(name string) string {
	if f.prefix == "" {
		return name
	}
	return f.prefix + "/" + name
}

func (f *Factory) claim(typ string) {
	if _, dup := f.seen[typ]; dup {
		panic(fmt.Errorf("%w: %s", ErrDuplicateType, typ))
	}
	f.seen[typ] = struct{}{}
	f.types = append(f.types, typ)
}

func payloadIsError(payload any) bool {
	_, ok := payload.(error)
	return ok
}

// Define creates a Creator for payload type P. It panics if the type is
// already defined on the factory.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// Example:
//
//	var sliceData = action.Define[int](factory, "SLICE_DATA")
func Define[P any](f *Factory, name string) Creator[P] {
	typ := f.qualify(name)
	f.claim(typ)
	return Creator[P]{typ: typ, isError: f.isError}
}

// Creator builds and recognizes actions of one type with payload type P.
// Creator implements Matcher.
type Creator[P any] struct {
	typ     string
	isError func(payload any) bool
}

// Type returns the action type.
func (c Creator[P]) Type() string { return c.typ }

// New builds an action carrying payload. Multiple metas are merged, later keys
// winning.
func (c Creator[P]) New(payload P, meta ...Meta) Action {
	a := Action{Type: c.typ, Payload: payload}
	if c.isError != nil {
		a.Error = c.isError(payload)
	}
	if len(meta) > 0 {
		a.Meta = make(Meta)
		for _, m := range meta {
			for k, v := range m {
				a.Meta[k] = v
			}
		}
	}
	return a
}

// Match reports whether the action has this creator's type.
func (c Creator[P]) Match(a Action) bool {
	return a.Type == c.typ
}

// Payload extracts the typed payload. A nil payload yields the zero P. Raw
// JSON payloads (json.RawMessage or []byte), as produced by Decode, are
// decoded into P, including when P is an interface type. When P is itself
// json.RawMessage or []byte the bytes are returned as is.
func (c Creator[P]) Payload(a Action) (P, error) {
	var p P
	switch v := a.Payload.(type) {
	case nil:
		return p, nil
	case json.RawMessage:
		return rawPayload[P](a.Type, a.Payload, v)
	case []byte:
		return rawPayload[P](a.Type, a.Payload, v)
	case P:
		return v, nil
	}
	return p, fmt.Errorf("%w: %s carries %T, want %s", ErrPayloadType, a.Type, a.Payload, reflect.TypeOf((*P)(nil)).Elem())
}

func rawPayload[P any](typ string, payload any, raw []byte) (P, error) {
	if p, ok := payload.(P); ok && reflect.TypeOf((*P)(nil)).Elem().Kind() != reflect.Interface {
		return p, nil
	}
	return decodePayload[P](typ, raw)
}

func decodePayload[P any](typ string, raw []byte) (P, error) {
	var p P
	if len(raw) == 0 {
		return p, nil
	}
	if err := codec.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %s: %w", ErrPayloadDecode, typ, err)
	}
	return p, nil
}

// Success is the payload of an async Done action.
type Success[P, R any] struct {
	Params P `json:"params"`
	Result R `json:"result"`
}

// Failure is the payload of an async Failed action.
type Failure[P, E any] struct {
	Params P `json:"params"`
	Error  E `json:"error"`
}

// Async groups the creators of an operation that starts and later either
// completes or fails. P is the parameter type, R the result type and E the
// error type.
type Async[P, R, E any] struct {
	Type    string
	Started Creator[P]
	Done    Creator[Success[P, R]]
	Failed  Creator[Failure[P, E]]
}

// DefineAsync creates the creators "name_STARTED", "name_DONE" and
// "name_FAILED". Failed actions always carry the Error flag.
//
// Example:
//
//	fetch := action.DefineAsync[string, User, string](users, "FETCH")
//	reducer.Case(b, fetch.Done, func(s *State, p action.Success[string, User]) *State { ... })
func DefineAsync[P, R, E any](f *Factory, name string) Async[P, R, E] {
	a := Async[P, R, E]{
		Type:    f.qualify(name),
		Started: Define[P](f, name+"_STARTED"),
		Done:    Define[Success[P, R]](f, name+"_DONE"),
		Failed:  Define[Failure[P, E]](f, name+"_FAILED"),
	}
	a.Failed.isError = func(any) bool { return true }
	return a
}
