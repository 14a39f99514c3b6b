package reminders

import (
	"context"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type reminderClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewReminderClient(api contracts.APIClient, logger *zap.Logger) contracts.ReminderClient {
	return &reminderClient{
		API: api,
		Log: logger,
	}
}

func (c *reminderClient) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("reminderClient.ListReminders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var reminders []models.Reminder
	err := c.API.DoJSON(ctx, constvars.MethodGet, constvars.ResourceReminders, nil, &reminders)
	if err != nil {
		c.Log.Error("reminderClient.ListReminders error fetching reminders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNameReminder),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetResource(err, constvars.ResourceNameReminder)
	}

	c.Log.Info("reminderClient.ListReminders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(reminders)),
	)
	return reminders, nil
}
