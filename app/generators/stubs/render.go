package stubs

import "strings"

// Var is a single placeholder binding.
type Var struct {
	Key   string
	Value string
}

// Vars is an ordered rendering context. Substitution runs in slice order.
type Vars []Var

// With returns vars extended by key=value.
func (v Vars) With(key, value string) Vars {
	out := make(Vars, len(v), len(v)+1)
	copy(out, v)
	return append(out, Var{Key: key, Value: value})
}

// Lookup returns the value bound to key.
func (v Vars) Lookup(key string) (string, bool) {
	for _, kv := range v {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Token returns the literal placeholder for key, e.g. $CLASS_NAME$.
func Token(key string) string {
	return "$" + key + "$"
}

// RenderString replaces every occurrence of each $KEY$ with its value, one
// key at a time in the order of vars. Replacement is not recursive within a
// key, but a value that itself contains a later $KEY$ token will be rewritten
// by that later key. Tokens with no binding are left in place.
func RenderString(content string, vars Vars) string {
	for _, kv := range vars {
		content = strings.ReplaceAll(content, Token(kv.Key), kv.Value)
	}
	return content
}
