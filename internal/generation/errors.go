// Package generation implements the content generation client: prompt
// construction, the schema-constrained provider call, response validation,
// and the deterministic sub-competency correction pass.
package generation

// userFacingMessage is the single message shown for any generation failure.
// The underlying cause is logged, never surfaced.
const userFacingMessage = "Gagal menghasilkan data dari AI. Silakan coba lagi."

// GenerationError wraps any failure of a generation call: network, malformed
// response, or schema mismatch. Callers display Message; the cause is for logs.
//
//nolint:revive // the error is named for its operation, mirroring the domain term
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// newGenerationError wraps cause with the fixed user-facing message.
func newGenerationError(cause error) *GenerationError {
	return &GenerationError{Message: userFacingMessage, Cause: cause}
}
