package action

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todo struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func TestFactory(t *testing.T) {
	t.Run("prefixes types", func(t *testing.T) {
		f := NewFactory("todos")
		add := Define[todo](f, "ADD")

		assert.Equal(t, "todos/ADD", add.Type())
		assert.Equal(t, "todos", f.Prefix())
	})

	t.Run("empty prefix leaves types bare", func(t *testing.T) {
		f := NewFactory("")

		assert.Equal(t, "ADD", Define[todo](f, "ADD").Type())
	})

	t.Run("lists types in definition order", func(t *testing.T) {
		f := NewFactory("todos")
		Define[todo](f, "ADD")
		Define[int](f, "REMOVE")
		DefineAsync[int, todo, string](f, "LOAD")

		assert.Equal(t, []string{
			"todos/ADD",
			"todos/REMOVE",
			"todos/LOAD_STARTED",
			"todos/LOAD_DONE",
			"todos/LOAD_FAILED",
		}, f.Types())
	})

	t.Run("panics on duplicate type", func(t *testing.T) {
		f := NewFactory("todos")
		Define[todo](f, "ADD")

		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrDuplicateType)
			assert.Contains(t, err.Error(), "todos/ADD")
		}()
		Define[string](f, "ADD")
	})

	t.Run("same name on different factories is allowed", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Define[todo](NewFactory("a"), "ADD")
			Define[todo](NewFactory("b"), "ADD")
		})
	})
}

func TestCreator_New(t *testing.T) {
	f := NewFactory("todos")
	add := Define[todo](f, "ADD")
	fail := Define[error](f, "FAIL")

	t.Run("builds action with payload", func(t *testing.T) {
		a := add.New(todo{Text: "milk"})

		assert.Equal(t, "todos/ADD", a.Type)
		assert.Equal(t, todo{Text: "milk"}, a.Payload)
		assert.False(t, a.Error)
		assert.Nil(t, a.Meta)
	})

	t.Run("merges meta", func(t *testing.T) {
		a := add.New(todo{}, Meta{"a": 1, "b": 1}, Meta{"b": 2})

		assert.Equal(t, Meta{"a": 1, "b": 2}, a.Meta)
	})

	t.Run("flags error payloads", func(t *testing.T) {
		a := fail.New(errors.New("boom"))

		assert.True(t, a.Error)
	})

	t.Run("custom error predicate", func(t *testing.T) {
		f := NewFactory("", WithErrorPayloads(func(p any) bool {
			s, ok := p.(string)
			return ok && s == "bad"
		}))
		c := Define[string](f, "CHECK")

		assert.True(t, c.New("bad").Error)
		assert.False(t, c.New("good").Error)
	})
}

func TestCreator_Match(t *testing.T) {
	f := NewFactory("todos")
	add := Define[todo](f, "ADD")

	assert.True(t, add.Match(add.New(todo{})))
	assert.True(t, add.Match(Action{Type: "todos/ADD"}))
	assert.False(t, add.Match(Action{Type: "ADD"}))
}

func TestCreator_Payload(t *testing.T) {
	f := NewFactory("")
	add := Define[todo](f, "ADD")

	t.Run("returns typed payload", func(t *testing.T) {
		p, err := add.Payload(add.New(todo{Text: "milk"}))

		require.NoError(t, err)
		assert.Equal(t, todo{Text: "milk"}, p)
	})

	t.Run("nil payload yields zero value", func(t *testing.T) {
		p, err := add.Payload(Action{Type: "ADD"})

		require.NoError(t, err)
		assert.Equal(t, todo{}, p)
	})

	t.Run("decodes json.RawMessage", func(t *testing.T) {
		p, err := add.Payload(Action{Type: "ADD", Payload: json.RawMessage(`{"text": "milk", "done": true}`)})

		require.NoError(t, err)
		assert.Equal(t, todo{Text: "milk", Done: true}, p)
	})

	t.Run("decodes []byte", func(t *testing.T) {
		p, err := add.Payload(Action{Type: "ADD", Payload: []byte(`{"text": "eggs"}`)})

		require.NoError(t, err)
		assert.Equal(t, "eggs", p.Text)
	})

	t.Run("returns decode error", func(t *testing.T) {
		_, err := add.Payload(Action{Type: "ADD", Payload: json.RawMessage(`{"text": 1}`)})

		assert.ErrorIs(t, err, ErrPayloadDecode)
	})

	t.Run("returns type error", func(t *testing.T) {
		_, err := add.Payload(Action{Type: "ADD", Payload: 42})

		assert.ErrorIs(t, err, ErrPayloadType)
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("byte slice payloads are returned as is", func(t *testing.T) {
		blob := Define[[]byte](f, "BLOB")

		p, err := blob.Payload(blob.New([]byte("raw")))

		require.NoError(t, err)
		assert.Equal(t, []byte("raw"), p)
	})

	t.Run("raw message payloads are returned as is", func(t *testing.T) {
		raw := Define[json.RawMessage](f, "RAW")

		p, err := raw.Payload(Action{Type: "RAW", Payload: json.RawMessage(`{"k": 1}`)})

		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`{"k": 1}`), p)
	})

	t.Run("interface payloads decode raw JSON", func(t *testing.T) {
		anyPayload := Define[any](f, "ANY")
		a, err := Decode([]byte(`{"type": "ANY", "payload": {"k": 1}}`))
		require.NoError(t, err)

		p, err := anyPayload.Payload(a)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"k": float64(1)}, p)
	})

	t.Run("interface payloads keep typed values", func(t *testing.T) {
		anyPayload := Define[any](NewFactory("typed"), "ANY")

		p, err := anyPayload.Payload(anyPayload.New(todo{Text: "milk"}))

		require.NoError(t, err)
		assert.Equal(t, todo{Text: "milk"}, p)
	})
}

func TestDefineAsync(t *testing.T) {
	f := NewFactory("users")
	fetch := DefineAsync[string, todo, string](f, "FETCH")

	assert.Equal(t, "users/FETCH", fetch.Type)
	assert.Equal(t, "users/FETCH_STARTED", fetch.Started.Type())
	assert.Equal(t, "users/FETCH_DONE", fetch.Done.Type())
	assert.Equal(t, "users/FETCH_FAILED", fetch.Failed.Type())

	t.Run("failed actions are errors", func(t *testing.T) {
		a := fetch.Failed.New(Failure[string, string]{Params: "1", Error: "nope"})

		assert.True(t, a.Error)
		assert.True(t, IsError().Match(a))
	})

	t.Run("done payload decodes from JSON", func(t *testing.T) {
		a, err := Decode([]byte(`{"type": "users/FETCH_DONE", "payload": {"params": "1", "result": {"text": "hi"}}}`))
		require.NoError(t, err)

		p, err := fetch.Done.Payload(a)

		require.NoError(t, err)
		assert.Equal(t, Success[string, todo]{Params: "1", Result: todo{Text: "hi"}}, p)
	})
}
