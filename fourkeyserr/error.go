// Package fourkeyserr provides a typed error that can be surfaced to CLI users
// without leaking which upstream client produced it.
package fourkeyserr

import "fmt"

// Error codes used across the fetch -> join -> bucket -> render pipeline.
const (
	CodeConfig                   = "config"
	CodeCreateClient             = "create_client"
	CodeFetch                    = "fetch"
	CodeCommitNotFound           = "commit_not_found"
	CodeRepoCreatedAtUnavailable = "repo_created_at_unavailable"
	CodeEmptyResult              = "empty_result"
	CodeInvalidResponse          = "invalid_response"
	CodeEmptyBaseOrHead          = "empty_base_or_head"
	CodeBaseEqualsHead           = "base_equals_head"
	CodeAPIResponse              = "api_response"
	CodeParse                    = "parse"
)

// Error is a typed error carrying a stable code, a human message, and an
// optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e Error) Unwrap() error {
	return e.Err
}

// New constructs a new typed Error.
func New(code, message string, err error) Error {
	return Error{Code: code, Message: message, Err: err}
}
