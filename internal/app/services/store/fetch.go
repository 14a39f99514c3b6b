package store

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/dto/requests"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RequestOptions shape a FetchFromBackend call. An empty Method means GET.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   io.Reader
}

// FetchFromBackend calls endpoint, relative to the API base URL, and returns
// the decoded JSON body, or nil for an empty one. It never touches the
// store's state.
func (s *Store) FetchFromBackend(ctx context.Context, endpoint string, opts RequestOptions) (interface{}, error) {
	var out interface{}
	err := s.fetch(ctx, endpoint, opts, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FetchFromBackendAs is FetchFromBackend decoding into T.
func FetchFromBackendAs[T any](ctx context.Context, s *Store, endpoint string, opts RequestOptions) (T, error) {
	var out T
	err := s.fetch(ctx, endpoint, opts, &out)
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// JSONBody encodes v for use as RequestOptions.Body.
func JSONBody(v interface{}) (io.Reader, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(body), nil
}

func (s *Store) fetch(ctx context.Context, endpoint string, opts RequestOptions, out interface{}) error {
	ctx, requestID := utils.WithRequestID(ctx)

	resp, err := s.APIClient.Do(ctx, &requests.APIRequest{
		Method: opts.Method,
		Path:   endpoint,
		Header: opts.Header,
		Body:   opts.Body,
	})
	if err != nil {
		s.logFetchError(requestID, endpoint, err)
		return err
	}

	if !resp.OK() {
		err = exceptions.ErrUnexpectedStatus(resp.StatusCode)
		s.logFetchError(requestID, endpoint, err)
		return err
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	err = utils.DecodeJSON(resp.Body, out)
	if err != nil {
		err = exceptions.ErrDecodeResponse(err, endpoint)
		s.logFetchError(requestID, endpoint, err)
		return err
	}
	return nil
}

func (s *Store) logFetchError(requestID, endpoint string, err error) {
	s.Log.Error("error with API call to "+endpoint,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, exceptions.StatusCode(err)),
		zap.Error(err),
	)
}
