package action

import (
	"reflect"
	"strings"
)

// Matcher decides whether a reducer case applies to an action. Matchers are
// evaluated in case registration order, so they should be cheap.
type Matcher interface {
	Match(a Action) bool
}

// MatcherFunc is a function adapter for Matcher:
//
//	action.MatcherFunc(func(a action.Action) bool {
//	    return a.Meta["source"] == "sync"
//	})
type MatcherFunc func(a Action) bool

// Match implements the Matcher interface.
func (f MatcherFunc) Match(a Action) bool {
	return f(a)
}

// Type returns a Matcher that matches when the action type equals any of the
// given types.
func Type(types ...string) Matcher {
	return typeIs{types: types}
}

type typeIs struct {
	types []string
}

func (m typeIs) Match(a Action) bool {
	return a.Is(m.types...)
}

// Prefix returns a Matcher that matches every action whose type starts with
// prefix. Use it with factory prefixes to catch a whole feature's actions:
//
//	action.Prefix("todos/")
func Prefix(prefix string) Matcher {
	return hasPrefix{prefix: prefix}
}

type hasPrefix struct {
	prefix string
}

func (m hasPrefix) Match(a Action) bool {
	return strings.HasPrefix(a.Type, m.prefix)
}

// IsError returns a Matcher that matches actions flagged as errors.
func IsError() Matcher {
	return MatcherFunc(func(a Action) bool { return a.Error })
}

// HasMeta returns a Matcher that matches when all keys are present in the
// action's metadata.
func HasMeta(keys ...string) Matcher {
	return hasMeta{keys: keys}
}

type hasMeta struct {
	keys []string
}

func (m hasMeta) Match(a Action) bool {
	for _, k := range m.keys {
		if _, ok := a.Meta[k]; !ok {
			return false
		}
	}
	return true
}

// MetaEquals returns a Matcher that matches when the metadata key exists and
// deeply equals value. Metadata decoded from JSON holds float64 numbers.
func MetaEquals(key string, value any) Matcher {
	return metaEquals{key: key, value: value}
}

type metaEquals struct {
	key   string
	value any
}

func (m metaEquals) Match(a Action) bool {
	v, ok := a.Meta[m.key]
	return ok && reflect.DeepEqual(v, m.value)
}

// And returns a Matcher that matches when all matchers match.
func And(ms ...Matcher) Matcher {
	return and{ms: ms}
}

type and struct {
	ms []Matcher
}

func (m and) Match(a Action) bool {
	for _, mm := range m.ms {
		if !mm.Match(a) {
			return false
		}
	}
	return true
}

// Or returns a Matcher that matches when any matcher matches.
func Or(ms ...Matcher) Matcher {
	return or{ms: ms}
}

type or struct {
	ms []Matcher
}

func (m or) Match(a Action) bool {
	for _, mm := range m.ms {
		if mm.Match(a) {
			return true
		}
	}
	return false
}

// Not inverts a Matcher.
func Not(m Matcher) Matcher {
	return MatcherFunc(func(a Action) bool { return !m.Match(a) })
}
