package repositorygen

// DefaultModel is the --model value meaning "no model binding".
const DefaultModel = "default"

// Kind labels repository results in console output.
const Kind = "Repository"

// Request describes one make:repository invocation.
type Request struct {
	Name  string // entity name, e.g. "Admin/Posts"
	Model string // model type name, "" or DefaultModel for a plain repository
}

// Bound reports whether the request names a model.
func (r Request) Bound() bool {
	return r.Model != "" && r.Model != DefaultModel
}
