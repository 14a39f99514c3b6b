package testhelpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"smartrx-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

type FakeResponse struct {
	Status int
	Body   string
}

type recordedRequest struct {
	Header http.Header
	Body   string
}

type hold struct {
	received chan struct{}
	release  chan struct{}
	arrived  bool
	once     sync.Once
}

func (h *hold) open() {
	h.once.Do(func() { close(h.release) })
}

// FakeBackend stands in for the SmartRx API. Every route answers with the
// response registered for "METHOD /path", falling back to the route's
// default, and records what it received.
type FakeBackend struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]FakeResponse
	holds     map[string]*hold
	requests  []string
	last      map[string]recordedRequest
}

func NewFakeBackend(t testing.TB) *FakeBackend {
	fb := &FakeBackend{
		responses: map[string]FakeResponse{
			key(constvars.MethodGet, constvars.ResourcePrescriptions): {Status: http.StatusOK, Body: `[]`},
			key(constvars.MethodGet, constvars.ResourceMedications):   {Status: http.StatusOK, Body: `[]`},
			key(constvars.MethodGet, constvars.ResourceReminders):     {Status: http.StatusOK, Body: `[]`},
			key(constvars.MethodGet, constvars.ResourceProfile):       {Status: http.StatusOK, Body: `null`},
			key(constvars.MethodPost, constvars.ResourceUserProfile):  {Status: http.StatusOK, Body: `{"message":"saved"}`},
		},
		holds: map[string]*hold{},
		last:  map[string]recordedRequest{},
	}

	r := chi.NewRouter()
	r.Use(fb.record)
	r.Get(constvars.ResourcePrescriptions, fb.respond)
	r.Get(constvars.ResourceMedications, fb.respond)
	r.Get(constvars.ResourceReminders, fb.respond)
	r.Get(constvars.ResourceProfile, fb.respond)
	r.Post(constvars.ResourceUserProfile, fb.respond)
	r.Delete(constvars.ResourcePrescriptions+"/{id}", fb.respond)
	r.NotFound(fb.respond)
	r.MethodNotAllowed(fb.respond)

	fb.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		fb.mu.Lock()
		for _, h := range fb.holds {
			h.open()
		}
		fb.mu.Unlock()
		fb.Server.Close()
	})
	return fb
}

func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

func (fb *FakeBackend) SetResponse(method, path string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.responses[key(method, path)] = FakeResponse{Status: status, Body: body}
}

// Hold parks requests to method and path until release is called. received
// is closed once the first such request arrives.
func (fb *FakeBackend) Hold(method, path string) (received <-chan struct{}, release func()) {
	h := &hold{received: make(chan struct{}), release: make(chan struct{})}
	fb.mu.Lock()
	fb.holds[key(method, path)] = h
	fb.mu.Unlock()

	return h.received, h.open
}

// Requests lists every received request as "METHOD /path", in arrival order.
func (fb *FakeBackend) Requests() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.requests...)
}

func (fb *FakeBackend) Hits(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	count := 0
	for _, request := range fb.requests {
		if request == key(method, path) {
			count++
		}
	}
	return count
}

func (fb *FakeBackend) LastBody(method, path string) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.last[key(method, path)].Body
}

func (fb *FakeBackend) LastHeader(method, path string) http.Header {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.last[key(method, path)].Header
}

func (fb *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		k := key(r.Method, r.URL.Path)

		fb.mu.Lock()
		fb.requests = append(fb.requests, k)
		fb.last[k] = recordedRequest{Header: r.Header.Clone(), Body: string(body)}
		h := fb.holds[k]
		if h != nil && !h.arrived {
			h.arrived = true
			close(h.received)
		}
		fb.mu.Unlock()

		if h != nil {
			<-h.release
		}
		next.ServeHTTP(w, r)
	})
}

func (fb *FakeBackend) respond(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	response, ok := fb.responses[key(r.Method, r.URL.Path)]
	fb.mu.Unlock()

	if !ok {
		response = defaultResponse(r)
	}

	if response.Body != "" {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	w.WriteHeader(response.Status)
	io.WriteString(w, response.Body)
}

func defaultResponse(r *http.Request) FakeResponse {
	if r.Method == http.MethodDelete && chi.URLParam(r, "id") != "" {
		return FakeResponse{Status: http.StatusOK, Body: `{"message":"deleted"}`}
	}
	return FakeResponse{Status: http.StatusNotFound, Body: `{"message":"not found"}`}
}

func key(method, path string) string {
	return method + " " + path
}
