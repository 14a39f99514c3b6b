package contracts

import (
	"context"

	"smartrx-client/internal/app/models"
)

//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile.go -package mocks

type ProfileClient interface {
	// FindProfile returns nil without error when the server has no profile.
	FindProfile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
}
