package keybind

// OperationResult is the outcome of a single add/remove/save/restore
// attempt. Conflicts is populated only when the operation failed because
// the binding's slot was taken.
type OperationResult struct {
	Success   bool
	Message   string
	Conflicts []*Binding
}

// OK returns a successful result with an optional message.
func OK(message string) *OperationResult {
	return &OperationResult{Success: true, Message: message}
}

// Fail returns a failed result with a message.
func Fail(message string) *OperationResult {
	return &OperationResult{Success: false, Message: message}
}
