package medications

import (
	"context"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicationClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewMedicationClient(api contracts.APIClient, logger *zap.Logger) contracts.MedicationClient {
	return &medicationClient{
		API: api,
		Log: logger,
	}
}

func (c *medicationClient) ListMedications(ctx context.Context) ([]models.Medication, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("medicationClient.ListMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var medications []models.Medication
	err := c.API.DoJSON(ctx, constvars.MethodGet, constvars.ResourceMedications, nil, &medications)
	if err != nil {
		c.Log.Error("medicationClient.ListMedications error fetching medications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNameMedication),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetResource(err, constvars.ResourceNameMedication)
	}

	c.Log.Info("medicationClient.ListMedications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(medications)),
	)
	return medications, nil
}
