package mocks

import (
	"testing"

	"smartrx-client/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Compile-time checks that every mock still matches its contract.
var (
	_ contracts.APIClient          = (*MockAPIClient)(nil)
	_ contracts.PrescriptionClient = (*MockPrescriptionClient)(nil)
	_ contracts.MedicationClient   = (*MockMedicationClient)(nil)
	_ contracts.ReminderClient     = (*MockReminderClient)(nil)
	_ contracts.ProfileClient      = (*MockProfileClient)(nil)
)

func TestNewMocks(t *testing.T) {
	ctrl := gomock.NewController(t)

	assert.NotNil(t, NewMockAPIClient(ctrl).EXPECT())
	assert.NotNil(t, NewMockPrescriptionClient(ctrl).EXPECT())
	assert.NotNil(t, NewMockMedicationClient(ctrl).EXPECT())
	assert.NotNil(t, NewMockReminderClient(ctrl).EXPECT())
	assert.NotNil(t, NewMockProfileClient(ctrl).EXPECT())
}
