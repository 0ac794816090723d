// Package validate holds the pure field validators for the post-a-project
// wizard. Every validator is total: invalid input comes back as a Result with
// Valid=false and a user-facing message, never as an error or panic.
package validate

// Result is the verdict returned by every validator. Error is set iff
// Valid is false.
type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}
