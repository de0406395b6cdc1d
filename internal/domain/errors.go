package domain

import "fmt"

// DocumentationError is returned when a run finished and at least one project
// has an error finding. Location tells the user where the details went.
type DocumentationError struct {
	Location string
}

func (e *DocumentationError) Error() string {
	return fmt.Sprintf("Documentation problems were found. Please see %s for more information.", e.Location)
}

// OutputError means the report could not be written. It aborts the run and is
// not a documentation problem.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("error writing results to output file: %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
