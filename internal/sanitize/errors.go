package sanitize

import (
	"fmt"
	"strings"
)

// ValidationError reports the payload field paths that failed shape checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload fields: %s", strings.Join(e.Fields, ", "))
}

type fieldErrors struct {
	paths []string
}

func (f *fieldErrors) add(path string) {
	f.paths = append(f.paths, path)
}

func (f *fieldErrors) addf(format string, args ...any) {
	f.paths = append(f.paths, fmt.Sprintf(format, args...))
}

func (f *fieldErrors) err() error {
	if len(f.paths) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.paths}
}
