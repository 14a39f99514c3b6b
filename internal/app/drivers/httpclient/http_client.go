package httpclient

import (
	"net/http"
	"time"

	"smartrx-client/internal/app/config"

	"golang.org/x/time/rate"
)

// NewHTTPClient returns the client shared by every SmartRx API call. Without
// a configured timeout a hung request only ends when its context does.
func NewHTTPClient(internalConfig *config.InternalConfig) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport.(*http.Transport).Clone()
	if internalConfig.App.MaxRequestsPerSecond > 0 {
		transport = NewThrottledTransport(transport, internalConfig.App.MaxRequestsPerSecond)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(internalConfig.HTTPClient.TimeoutInSeconds) * time.Second,
	}
}

type throttledTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewThrottledTransport spaces outgoing requests to at most rps per second,
// allowing bursts of rps.
func NewThrottledTransport(next http.RoundTripper, rps int) http.RoundTripper {
	return &throttledTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	err := t.limiter.Wait(req.Context())
	if err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}
