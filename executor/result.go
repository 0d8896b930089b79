package executor

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Path locates a value in the response tree: field response names and list
// indexes, from the root down.
type Path []PathElement

type PathElement any

// GraphQLError is one error reported during execution.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       Path           `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// ExecutionResult is the response to one executed operation.
type ExecutionResult struct {
	Data   any            `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// EncodeJSON renders the result in the standard GraphQL response shape.
func (r *ExecutionResult) EncodeJSON() ([]byte, error) {
	return json.Marshal(r)
}
