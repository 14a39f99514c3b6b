package prescriptions

import (
	"context"
	"net/http"
	"net/url"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/dto/requests"
	"smartrx-client/internal/pkg/dto/responses"
	"smartrx-client/internal/pkg/exceptions"
	"smartrx-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type prescriptionClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewPrescriptionClient(api contracts.APIClient, logger *zap.Logger) contracts.PrescriptionClient {
	return &prescriptionClient{
		API: api,
		Log: logger,
	}
}

func (c *prescriptionClient) ListPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("prescriptionClient.ListPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var prescriptions []models.Prescription
	err := c.API.DoJSON(ctx, constvars.MethodGet, constvars.ResourcePrescriptions, nil, &prescriptions)
	if err != nil {
		c.Log.Error("prescriptionClient.ListPrescriptions error fetching prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNamePrescription),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetResource(err, constvars.ResourceNamePrescription)
	}

	c.Log.Info("prescriptionClient.ListPrescriptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(prescriptions)),
	)
	return prescriptions, nil
}

// DeletePrescription reports the server's {"message"} as the error of a
// rejected delete.
func (c *prescriptionClient) DeletePrescription(ctx context.Context, prescriptionID string) error {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("prescriptionClient.DeletePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	err := utils.ValidateUrlParamID(prescriptionID)
	if err != nil {
		c.Log.Error("prescriptionClient.DeletePrescription invalid prescription id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNamePrescription),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamPrescriptionID)
	}

	resp, err := c.API.Do(ctx, &requests.APIRequest{
		Method: constvars.MethodDelete,
		Path:   constvars.ResourcePrescriptions + "/" + url.PathEscape(prescriptionID),
		Header: http.Header{constvars.HeaderContentType: []string{constvars.MIMEApplicationJSON}},
	})
	if err != nil {
		c.Log.Error("prescriptionClient.DeletePrescription error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNamePrescription),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return err
	}

	if !resp.OK() {
		var outcome responses.APIErrorMessage
		err = utils.DecodeJSON(resp.Body, &outcome)
		if err != nil {
			c.Log.Error("prescriptionClient.DeletePrescription error decoding error response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, constvars.ResourceNamePrescription),
				zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
				zap.Error(err),
			)
			return exceptions.ErrDecodeResponse(err, constvars.ResourceNamePrescription)
		}

		deleteErr := exceptions.ErrDeletePrescription(resp.StatusCode, outcome.Message)
		c.Log.Error("prescriptionClient.DeletePrescription rejected by server",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, constvars.ResourceNamePrescription),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(deleteErr),
		)
		return deleteErr
	}

	c.Log.Info("prescriptionClient.DeletePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return nil
}
