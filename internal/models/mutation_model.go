package models

// MutationResult is the uniform outcome shape of every write operation.
// Mutations never surface raw errors to handlers; failures are translated
// into Success=false plus a user-facing message.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

// MutationOK builds a successful result.
func MutationOK(message, id string) MutationResult {
	return MutationResult{Success: true, Message: message, ID: id}
}

// MutationFail builds a failed result with a fallback message when the
// underlying error text is empty.
func MutationFail(message string) MutationResult {
	return MutationResult{Success: false, Message: message}
}
