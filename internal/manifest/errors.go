package manifest

import "fmt"

// ParseError reports a manifest that could not be read or understood.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a manifest whose version could not be written back.
type WriteError struct {
	Path   string
	Reason string
	Err    error
}

func (e *WriteError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("writing %s: %s: %v", e.Path, e.Reason, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("writing %s: %s", e.Path, e.Reason)
	}
}

func (e *WriteError) Unwrap() error { return e.Err }
