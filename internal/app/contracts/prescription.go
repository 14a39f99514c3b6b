package contracts

import (
	"context"

	"smartrx-client/internal/app/models"
)

//go:generate mockgen -source=./prescription.go -destination=../mocks/mock_prescription.go -package mocks

type PrescriptionClient interface {
	ListPrescriptions(ctx context.Context) ([]models.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
}
