package services

// ServiceError is a typed error with an HTTP status code, carried from the
// service layer so controllers can map failures onto responses without
// inspecting error strings.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }
