package contracts

import (
	"context"

	"smartrx-client/internal/app/models"
)

//go:generate mockgen -source=./medication.go -destination=../mocks/mock_medication.go -package mocks

type MedicationClient interface {
	ListMedications(ctx context.Context) ([]models.Medication, error)
}
