package server

import "net/http"

type httpError struct {
	Status  int
	Message string
}

func (e *httpError) Error() string {
	return e.Message
}

var errNotFound = &httpError{
	Status:  http.StatusNotFound,
	Message: "Not found",
}
