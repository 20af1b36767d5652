package action

// Meta carries optional metadata alongside an action's payload.
type Meta map[string]any

// Action is a tagged value describing an intent to change state.
//
// Type is the discriminant reducers dispatch on. Payload is opaque to the
// reducer builder; creators know how to extract it (see Creator.Payload).
// When an action was decoded from JSON, Payload holds a json.RawMessage until
// a matching creator decodes it into its payload type.
type Action struct {
	Type    string
	Payload any
	Error   bool
	Meta    Meta
}

// Is reports whether the action's type equals any of the given types.
func (a Action) Is(types ...string) bool {
	for _, t := range types {
		if a.Type == t {
			return true
		}
	}
	return false
}
