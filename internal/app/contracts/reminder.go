package contracts

import (
	"context"

	"smartrx-client/internal/app/models"
)

//go:generate mockgen -source=./reminder.go -destination=../mocks/mock_reminder.go -package mocks

type ReminderClient interface {
	ListReminders(ctx context.Context) ([]models.Reminder, error)
}
