package gateway

// CommunicationError covers transport failures, non-2xx statuses and
// unparseable responses. Message is already bounded and safe to render.
type CommunicationError struct {
	Message string
}

func (e *CommunicationError) Error() string {
	return e.Message
}

func NewCommunicationError(message string) *CommunicationError {
	return &CommunicationError{Message: message}
}

// BusinessError is a well-formed failure response from the backend
// (success:false with a message).
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message}
}
