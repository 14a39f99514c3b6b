package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/dto/requests"
	"smartrx-client/internal/pkg/dto/responses"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type apiClient struct {
	BaseUrl    string
	UserAgent  string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewAPIClient(baseUrl, userAgent string, httpClient *http.Client, logger *zap.Logger) contracts.APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = constvars.AppUserAgent
	}
	return &apiClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		UserAgent:  userAgent,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *apiClient) BaseURL() string {
	return c.BaseUrl
}

// Do sends request and returns the response whatever its status. Only
// transport and read failures are errors.
func (c *apiClient) Do(ctx context.Context, request *requests.APIRequest) (*responses.APIResponse, error) {
	ctx, requestID := utils.WithRequestID(ctx)

	err := utils.ValidateStruct(request)
	if err != nil {
		c.Log.Error("apiClient.Do invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	method := strings.ToUpper(request.Method)
	if method == "" {
		method = constvars.MethodGet
	}

	c.Log.Debug("apiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, request.Path),
	)

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+request.Path, request.Body)
	if err != nil {
		c.Log.Error("apiClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	for key, values := range request.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if req.Header.Get(constvars.HeaderAccept) == "" {
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	}
	req.Header.Set(constvars.HeaderUserAgent, c.UserAgent)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("apiClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("apiClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	c.Log.Debug("apiClient.Do completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, request.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return &responses.APIResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       bodyBytes,
	}, nil
}

// DoJSON sends body encoded as JSON when it is not nil and decodes a 2xx
// response into out when out is not nil. Any other status is an error.
func (c *apiClient) DoJSON(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, requestID := utils.WithRequestID(ctx)

	request := &requests.APIRequest{
		Method: method,
		Path:   path,
		Header: http.Header{},
	}
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("apiClient.DoJSON error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		request.Body = bytes.NewReader(requestJSON)
		request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.Do(ctx, request)
	if err != nil {
		return err
	}

	if !resp.OK() {
		c.Log.Error("apiClient.DoJSON unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrUnexpectedStatus(resp.StatusCode)
	}

	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	err = utils.DecodeJSON(resp.Body, out)
	if err != nil {
		c.Log.Error("apiClient.DoJSON error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}
