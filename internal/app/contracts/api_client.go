package contracts

import (
	"context"

	"smartrx-client/internal/pkg/dto/requests"
	"smartrx-client/internal/pkg/dto/responses"
)

//go:generate mockgen -source=./api_client.go -destination=../mocks/mock_api_client.go -package mocks

type APIClient interface {
	BaseURL() string
	Do(ctx context.Context, request *requests.APIRequest) (*responses.APIResponse, error)
	DoJSON(ctx context.Context, method, path string, body, out interface{}) error
}
