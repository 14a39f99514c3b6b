package profiles

import (
	"context"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewProfileClient(api contracts.APIClient, logger *zap.Logger) contracts.ProfileClient {
	return &profileClient{
		API: api,
		Log: logger,
	}
}

func (c *profileClient) FindProfile(ctx context.Context) (*models.UserProfile, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("profileClient.FindProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var profile *models.UserProfile
	err := c.API.DoJSON(ctx, constvars.MethodGet, constvars.ResourceProfile, nil, &profile)
	if err != nil {
		c.Log.Error("profileClient.FindProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNameProfile),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetResource(err, constvars.ResourceNameProfile)
	}

	if profile == nil {
		c.Log.Info("profileClient.FindProfile no profile stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	c.Log.Info("profileClient.FindProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileNameKey, profile.FullName),
	)
	return profile, nil
}

func (c *profileClient) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("profileClient.SaveProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.API.DoJSON(ctx, constvars.MethodPost, constvars.ResourceUserProfile, profile, nil)
	if err != nil {
		c.Log.Error("profileClient.SaveProfile error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNameProfile),
			zap.Error(err),
		)
		return exceptions.ErrSaveResource(err, constvars.ResourceNameProfile)
	}

	c.Log.Info("profileClient.SaveProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
