package requests

import (
	"io"
	"net/http"
)

type APIRequest struct {
	// Method defaults to GET when empty
	Method string `validate:"http_method"`
	// Path is relative to the API base URL, e.g. "/reminders"
	Path   string `validate:"required,startswith=/"`
	Header http.Header
	Body   io.Reader
}
