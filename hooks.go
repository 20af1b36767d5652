package reducer

import "slices"

// OnMatchFunc is called after the case at index handled the action.
type OnMatchFunc func(actionType string, index int)

// OnDefaultFunc is called just before the default handler runs.
type OnDefaultFunc func(actionType string)

// OnNoMatchFunc is called when neither a case nor a default handler applied
// and the state is returned unchanged.
type OnNoMatchFunc func(actionType string)

// OnPayloadErrorFunc is called when the case at index matched the action type
// but could not extract its payload. err is a *PayloadError. The scan
// continues with the next case.
type OnPayloadErrorFunc func(actionType string, index int, err error)

// hooks holds all configured hook functions.
type hooks struct {
	onMatch        []OnMatchFunc
	onDefault      []OnDefaultFunc
	onNoMatch      []OnNoMatchFunc
	onPayloadError []OnPayloadErrorFunc
}

// Option configures hook behavior.
type Option func(*hooks)

// WithOnMatch adds a hook called after a case handles an action.
// Multiple hooks are called in order.
//
// Example:
//
//	reducer.WithOnMatch(func(actionType string, index int) {
//	    slog.Debug("reduced", "type", actionType, "case", index)
//	})
func WithOnMatch(fn OnMatchFunc) Option {
	return func(h *hooks) {
		h.onMatch = append(h.onMatch, fn)
	}
}

// WithOnDefault adds a hook called when the default handler runs.
// Multiple hooks are called in order.
func WithOnDefault(fn OnDefaultFunc) Option {
	return func(h *hooks) {
		h.onDefault = append(h.onDefault, fn)
	}
}

// WithOnNoMatch adds a hook called when an action leaves the state unchanged.
// Multiple hooks are called in order.
//
// Example:
//
//	reducer.WithOnNoMatch(func(actionType string) {
//	    unhandled.WithLabelValues(actionType).Inc()
//	})
func WithOnNoMatch(fn OnNoMatchFunc) Option {
	return func(h *hooks) {
		h.onNoMatch = append(h.onNoMatch, fn)
	}
}

// WithOnPayloadError adds a hook called when a matching case cannot extract
// the action's payload. Multiple hooks are called in order.
//
// Example:
//
//	reducer.WithOnPayloadError(func(actionType string, index int, err error) {
//	    slog.Warn("bad payload", "type", actionType, "error", err)
//	})
func WithOnPayloadError(fn OnPayloadErrorFunc) Option {
	return func(h *hooks) {
		h.onPayloadError = append(h.onPayloadError, fn)
	}
}

func (h hooks) clone() hooks {
	return hooks{
		onMatch:        slices.Clone(h.onMatch),
		onDefault:      slices.Clone(h.onDefault),
		onNoMatch:      slices.Clone(h.onNoMatch),
		onPayloadError: slices.Clone(h.onPayloadError),
	}
}

func (h *hooks) callOnMatch(actionType string, index int) {
	for _, fn := range h.onMatch {
		fn(actionType, index)
	}
}

func (h *hooks) callOnDefault(actionType string) {
	for _, fn := range h.onDefault {
		fn(actionType)
	}
}

func (h *hooks) callOnNoMatch(actionType string) {
	for _, fn := range h.onNoMatch {
		fn(actionType)
	}
}

func (h *hooks) callOnPayloadError(actionType string, index int, err error) {
	for _, fn := range h.onPayloadError {
		fn(actionType, index, err)
	}
}
