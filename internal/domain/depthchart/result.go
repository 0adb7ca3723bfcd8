package depthchart

// OperationResult is the outcome of a mutating chart operation.
// IsSuccess implies IsValid, and a failure always carries at least one detail.
type OperationResult struct {
	IsValid      bool
	IsSuccess    bool
	ErrorDetails []string
}

func Succeeded() OperationResult {
	return OperationResult{IsValid: true, IsSuccess: true}
}

// Rejected marks a request that is invalid against the current chart state.
func Rejected(details ...string) OperationResult {
	if len(details) == 0 {
		details = []string{"request rejected"}
	}
	return OperationResult{
		IsValid:      false,
		IsSuccess:    false,
		ErrorDetails: append([]string(nil), details...),
	}
}
