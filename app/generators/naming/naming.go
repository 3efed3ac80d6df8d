// Package naming derives namespaces, type names and file names for
// scaffolded sources from a slash separated entity name such as
// "Admin/Posts".
package naming

import (
	"path"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// Separator splits an entity name into namespace segments.
const Separator = "/"

// Name is an entity name resolved against a base namespace.
type Name struct {
	Raw       string   // as typed, e.g. "Admin/Posts"
	Segments  []string // "Admin", "Posts"
	Namespace string   // base plus every segment but the last
	TypeName  string   // singular, capitalized last segment: "Post"
}

// Derive resolves raw against base. It performs no validation: an empty raw
// name yields an empty TypeName and callers decide whether that is fatal.
func Derive(raw, base string) Name {
	segments := strings.Split(raw, Separator)
	return Name{
		Raw:       raw,
		Segments:  segments,
		Namespace: Namespace(raw, base),
		TypeName:  TypeName(segments[len(segments)-1]),
	}
}

// Namespace returns base when raw has a single segment, otherwise base joined
// with all leading segments of raw. Pluralization never affects it.
func Namespace(raw, base string) string {
	segments := strings.Split(raw, Separator)
	if len(segments) == 1 {
		return base
	}
	return base + Separator + strings.Join(segments[:len(segments)-1], Separator)
}

// TypeName singularizes segment and capitalizes each of its words.
func TypeName(segment string) string {
	return Capitalize(Singular(segment))
}

// Singular returns the English singular of word using the same inflection
// rules gorm applies to table names.
func Singular(word string) string {
	if word == "" {
		return ""
	}
	return inflection.Singular(word)
}

// Capitalize upper-cases the first letter of every whitespace delimited word
// and leaves the remaining letters untouched.
func Capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			r = unicode.ToUpper(r)
			atWordStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Package returns the Go package name for a namespace: its last element,
// lower-cased, stripped of anything that is not a letter, digit or underscore.
func Package(namespace string) string {
	last := path.Base(namespace)
	var b strings.Builder
	for _, r := range strings.ToLower(last) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FileName returns the snake_case Go source file name for a type name.
func FileName(typeName string) string {
	return SnakeCase(typeName) + ".go"
}

// SnakeCase converts PascalCase or camelCase to snake_case. Runs of capitals
// are kept together ("HTTPClient" becomes "http_client") and whitespace
// becomes an underscore.
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if b.Len() > 0 {
				b.WriteRune('_')
			}
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Path joins the namespace and the file name of n.
func (n Name) Path() string {
	return path.Join(n.Namespace, FileName(n.TypeName))
}

// Package is the package clause for sources generated for n.
func (n Name) Package() string {
	return Package(n.Namespace)
}

// Empty reports whether the derived type name is blank.
func (n Name) Empty() bool {
	return strings.TrimSpace(n.TypeName) == ""
}
