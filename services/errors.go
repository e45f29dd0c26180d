package services

// Error kinds surfaced to the presentation layer. Every failure carries one
// so callers can distinguish outcomes without parsing messages.
const (
	KindNotFound           = "not_found"
	KindEmptyOrder         = "empty_order"
	KindInvalidStatus      = "invalid_status"
	KindSkippedTransition  = "skipped_transition"
	KindBackwardTransition = "backward_transition"
	KindValidationFailure  = "validation_failure"
	KindInternal           = "internal"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	Kind       string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
