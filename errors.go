package graphbuild

import (
	"fmt"
	"strings"
)

// ValidationMessage is the fixed message of every ResolveError. Callers can
// compare against it to distinguish argument validation failures from all
// other error kinds.
const ValidationMessage = "graphbuild argument validation"

// ResolveError is the externally visible form of a validation failure
// caught by Field.Resolve. Its message is always ValidationMessage; the
// structured messages travel in Fields and Extensions.
type ResolveError struct {
	fields ByField
	err    *ValidationError
}

func newResolveError(verr *ValidationError) *ResolveError {
	var m ByField
	switch msg := verr.Message.(type) {
	case Single:
		m = ByField{"": Many{msg}}
	case Many:
		m = ByField{"": msg}
	case ByField:
		m = msg
	}
	return &ResolveError{fields: m, err: verr}
}

func (e *ResolveError) Error() string { return ValidationMessage }

// Unwrap returns the underlying ValidationError.
func (e *ResolveError) Unwrap() error { return e.err }

// Fields returns the messages, normalized so that bare string and list
// messages appear under the empty-string key.
func (e *ResolveError) Fields() ByField { return e.fields }

// Extensions returns the messages as plain values for inclusion in a
// GraphQL error's extensions.
func (e *ResolveError) Extensions() map[string]any {
	return messageValue(e.fields).(map[string]any)
}

// UndefinedTypeError reports every type name that was referenced in the
// graph but never defined. Names are sorted and reported together.
type UndefinedTypeError []string

func (e UndefinedTypeError) Error() string {
	quoted := make([]string, len(e))
	for i, name := range e {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf(
		"could not find definitions for the following type names: %s. All types"+
			" must be defined somewhere in the graph, or added to the schema.",
		strings.Join(quoted, ", "))
}
