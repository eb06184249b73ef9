package preview

import "fmt"

// FetchError reports a thumbnail that could not be downloaded, decoded or
// rendered. All three are treated the same way by the caller.
type FetchError struct {
	StreamID string
	Op       string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s thumbnail %s: %v", e.Op, e.StreamID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
