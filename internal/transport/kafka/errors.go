package kafka

// PermanentError marks an event that can never be handled, however often it is redelivered.
type PermanentError struct {
	Field  string
	Reason string
}

func (e PermanentError) Error() string {
	if e.Field == "" {
		return "invalid dispatch event: " + e.Reason
	}
	return "invalid dispatch event: " + e.Field + ": " + e.Reason
}

func invalid(field, reason string) error {
	return PermanentError{Field: field, Reason: reason}
}
