package assess

import "fmt"

// ErrMalformedResponse indicates the model's reply could not be coerced
// into the expected structure after the full parse ladder. Raw carries the
// unmodified reply text for operator diagnosis.
type ErrMalformedResponse struct {
	Raw string
	Err error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed test reply: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrGrading indicates the reply decoded to an object but the expected
// top-level key is missing. Treated the same as a malformed response.
type ErrGrading struct {
	Raw        string
	MissingKey string
}

func (e *ErrGrading) Error() string {
	return fmt.Sprintf("test reply missing %q key", e.MissingKey)
}
