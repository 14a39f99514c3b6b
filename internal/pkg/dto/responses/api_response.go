package responses

import "net/http"

type APIResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// APIErrorMessage is the body the SmartRx API sends with a failed mutation.
type APIErrorMessage struct {
	Message string `json:"message"`
}
