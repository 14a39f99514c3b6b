package apiclient

import (
	"context"
	"math"
	"net/http"
	"strings"
	"testing"

	"smartrx-client/internal/app/testhelpers"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/dto/requests"
	"smartrx-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAPIClientDo(t *testing.T) {
	backend := testhelpers.NewFakeBackend(t)
	client := NewAPIClient(backend.URL()+"/", "smartrx-test", backend.Server.Client(), zap.NewNop())

	t.Run("Returns Non Success Responses Without Error", func(t *testing.T) {
		backend.SetResponse(constvars.MethodGet, "/x", http.StatusInternalServerError, `{"message":"boom"}`)

		resp, err := client.Do(context.Background(), &requests.APIRequest{Path: "/x"})
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.False(t, resp.OK())
		assert.JSONEq(t, `{"message":"boom"}`, string(resp.Body))
	})

	t.Run("Sends Standard Headers", func(t *testing.T) {
		_, err := client.Do(context.Background(), &requests.APIRequest{Path: constvars.ResourceReminders})
		require.NoError(t, err)

		header := backend.LastHeader(constvars.MethodGet, constvars.ResourceReminders)
		assert.Equal(t, constvars.MIMEApplicationJSON, header.Get(constvars.HeaderAccept))
		assert.Equal(t, "smartrx-test", header.Get(constvars.HeaderUserAgent))
		assert.True(t, strings.HasPrefix(header.Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX))
	})

	t.Run("Default User Agent", func(t *testing.T) {
		unnamed := NewAPIClient(backend.URL(), "", backend.Server.Client(), zap.NewNop())

		_, err := unnamed.Do(context.Background(), &requests.APIRequest{Path: constvars.ResourceProfile})
		require.NoError(t, err)

		header := backend.LastHeader(constvars.MethodGet, constvars.ResourceProfile)
		assert.Equal(t, constvars.AppUserAgent, header.Get(constvars.HeaderUserAgent))
	})

	t.Run("Reuses Request ID From Context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-123")

		_, err := client.Do(ctx, &requests.APIRequest{Path: constvars.ResourceMedications})
		require.NoError(t, err)

		header := backend.LastHeader(constvars.MethodGet, constvars.ResourceMedications)
		assert.Equal(t, "req-123", header.Get(constvars.HeaderXRequestID))
	})

	t.Run("Caller Headers And Method", func(t *testing.T) {
		backend.SetResponse(constvars.MethodPut, "/notes/1", http.StatusOK, `{}`)

		_, err := client.Do(context.Background(), &requests.APIRequest{
			Method: "put",
			Path:   "/notes/1",
			Header: http.Header{"X-Custom": []string{"yes"}},
			Body:   strings.NewReader(`{"text":"hi"}`),
		})
		require.NoError(t, err)

		assert.Equal(t, "yes", backend.LastHeader(constvars.MethodPut, "/notes/1").Get("X-Custom"))
		assert.Equal(t, `{"text":"hi"}`, backend.LastBody(constvars.MethodPut, "/notes/1"))
	})

	t.Run("Rejects Invalid Requests", func(t *testing.T) {
		before := len(backend.Requests())

		_, err := client.Do(context.Background(), &requests.APIRequest{Path: "no-slash"})
		assert.Error(t, err)
		assert.Equal(t, "path must start with /", exceptions.Message(err))

		_, err = client.Do(context.Background(), &requests.APIRequest{Method: "BREW", Path: "/coffee"})
		assert.Error(t, err)

		assert.Len(t, backend.Requests(), before, "invalid requests should never be sent")
	})

	t.Run("Transport Failure", func(t *testing.T) {
		unreachable := NewAPIClient("http://127.0.0.1:1", "", nil, zap.NewNop())

		_, err := unreachable.Do(context.Background(), &requests.APIRequest{Path: "/prescriptions"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCode(err))
	})
}

func TestAPIClientDoJSON(t *testing.T) {
	backend := testhelpers.NewFakeBackend(t)
	client := NewAPIClient(backend.URL(), "", backend.Server.Client(), zap.NewNop())

	t.Run("Decodes Success Body", func(t *testing.T) {
		backend.SetResponse(constvars.MethodGet, constvars.ResourceMedications, http.StatusOK, `[{"id":7,"name":"Ibuprofen"}]`)

		var out []map[string]interface{}
		err := client.DoJSON(context.Background(), constvars.MethodGet, constvars.ResourceMedications, nil, &out)
		require.NoError(t, err)

		require.Len(t, out, 1)
		assert.Equal(t, json.Number("7"), out[0]["id"])
		assert.Equal(t, "Ibuprofen", out[0]["name"])
	})

	t.Run("Encodes Request Body", func(t *testing.T) {
		err := client.DoJSON(context.Background(), constvars.MethodPost, constvars.ResourceUserProfile, map[string]string{"gender": "F"}, nil)
		require.NoError(t, err)

		assert.JSONEq(t, `{"gender":"F"}`, backend.LastBody(constvars.MethodPost, constvars.ResourceUserProfile))
		assert.Equal(t, constvars.MIMEApplicationJSON, backend.LastHeader(constvars.MethodPost, constvars.ResourceUserProfile).Get(constvars.HeaderContentType))
	})

	t.Run("Non Success Status Is An Error", func(t *testing.T) {
		backend.SetResponse(constvars.MethodGet, "/x", http.StatusInternalServerError, `{}`)

		var out interface{}
		err := client.DoJSON(context.Background(), constvars.MethodGet, "/x", nil, &out)
		require.Error(t, err)

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		assert.Equal(t, "API error: 500", exceptions.Message(err))
		assert.Nil(t, out)
	})

	t.Run("Empty Body Leaves Out Untouched", func(t *testing.T) {
		backend.SetResponse(constvars.MethodGet, "/empty", http.StatusNoContent, ``)

		out := []int{1}
		err := client.DoJSON(context.Background(), constvars.MethodGet, "/empty", nil, &out)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, out)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		backend.SetResponse(constvars.MethodGet, "/broken", http.StatusOK, `[{"id":`)

		var out interface{}
		err := client.DoJSON(context.Background(), constvars.MethodGet, "/broken", nil, &out)
		assert.Error(t, err)
	})

	t.Run("Unmarshalable Body", func(t *testing.T) {
		err := client.DoJSON(context.Background(), constvars.MethodPost, "/x", map[string]float64{"dose": math.Inf(1)}, nil)
		assert.Error(t, err)
	})
}
