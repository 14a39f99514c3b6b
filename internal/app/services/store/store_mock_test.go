package store

import (
	"context"
	"errors"
	"testing"

	"smartrx-client/internal/app/mocks"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/dto/responses"
	"smartrx-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type mockClients struct {
	api           *mocks.MockAPIClient
	prescriptions *mocks.MockPrescriptionClient
	medications   *mocks.MockMedicationClient
	reminders     *mocks.MockReminderClient
	profiles      *mocks.MockProfileClient
}

func newMockedStore(t *testing.T) (*Store, mockClients) {
	ctrl := gomock.NewController(t)
	m := mockClients{
		api:           mocks.NewMockAPIClient(ctrl),
		prescriptions: mocks.NewMockPrescriptionClient(ctrl),
		medications:   mocks.NewMockMedicationClient(ctrl),
		reminders:     mocks.NewMockReminderClient(ctrl),
		profiles:      mocks.NewMockProfileClient(ctrl),
	}
	s := NewStore(m.api, m.prescriptions, m.medications, m.reminders, m.profiles, zap.NewNop())
	return s, m
}

func TestLoadWithMocks(t *testing.T) {
	t.Run("Requests In Order", func(t *testing.T) {
		s, m := newMockedStore(t)
		prescriptions := []models.Prescription{{"id": "1"}}
		medications := []models.Medication{{"id": "m1"}}
		reminders := []models.Reminder{{"id": "r1"}}

		gomock.InOrder(
			m.prescriptions.EXPECT().ListPrescriptions(gomock.Any()).Return(prescriptions, nil),
			m.medications.EXPECT().ListMedications(gomock.Any()).Return(medications, nil),
			m.reminders.EXPECT().ListReminders(gomock.Any()).Return(reminders, nil),
			m.profiles.EXPECT().FindProfile(gomock.Any()).Return(&models.UserProfile{FullName: "Ada"}, nil),
		)

		err := s.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, prescriptions, s.PrescriptionHistory())
		assert.Equal(t, medications, s.MedicationData())
		assert.Equal(t, reminders, s.Reminders())
		assert.Equal(t, "Ada", s.UserData().FullName)
	})

	t.Run("Reminders Failure Skips Profile", func(t *testing.T) {
		s, m := newMockedStore(t)
		remindersErr := errors.New("connection reset")

		m.prescriptions.EXPECT().ListPrescriptions(gomock.Any()).Return(nil, nil)
		m.medications.EXPECT().ListMedications(gomock.Any()).Return([]models.Medication{{"id": "m1"}}, nil)
		m.reminders.EXPECT().ListReminders(gomock.Any()).Return(nil, remindersErr)

		err := s.Load(context.Background())
		assert.ErrorIs(t, err, remindersErr)
		assert.Len(t, s.MedicationData(), 1)
		assert.Empty(t, s.Reminders())
	})
}

func TestDeletePrescriptionWithMocks(t *testing.T) {
	t.Run("Refreshes Each Dependent Once", func(t *testing.T) {
		s, m := newMockedStore(t)
		s.SetPrescriptionHistory([]models.Prescription{{"id": "41"}, {"id": "42"}})

		gomock.InOrder(
			m.prescriptions.EXPECT().DeletePrescription(gomock.Any(), "42").Return(nil),
			m.medications.EXPECT().ListMedications(gomock.Any()).Return([]models.Medication{}, nil).Times(1),
			m.reminders.EXPECT().ListReminders(gomock.Any()).Return([]models.Reminder{}, nil).Times(1),
		)

		result := s.DeletePrescription(context.Background(), "42")

		assert.True(t, result.Success)
		assert.Equal(t, []models.Prescription{{"id": "41"}}, s.PrescriptionHistory())
	})

	t.Run("Rejected Delete Fetches Nothing", func(t *testing.T) {
		s, m := newMockedStore(t)
		s.SetPrescriptionHistory([]models.Prescription{{"id": "42"}})

		m.prescriptions.EXPECT().DeletePrescription(gomock.Any(), "42").Return(exceptions.ErrDeletePrescription(404, "not found"))

		result := s.DeletePrescription(context.Background(), "42")

		assert.False(t, result.Success)
		assert.Equal(t, "not found", result.Message())
		assert.Len(t, s.PrescriptionHistory(), 1)
	})
}

func TestUpdateUserDataWithMocks(t *testing.T) {
	s, m := newMockedStore(t)

	m.profiles.EXPECT().
		SaveProfile(gomock.Any(), gomock.Eq(&models.UserProfile{PreferredPharmacy: "Boots"})).
		DoAndReturn(func(ctx context.Context, profile *models.UserProfile) error {
			assert.Equal(t, "Boots", s.UserData().PreferredPharmacy)
			return nil
		})

	pharmacy := "Boots"
	result := s.UpdateUserData(context.Background(), models.UserProfileUpdate{PreferredPharmacy: &pharmacy})
	assert.True(t, result.Success)
}

func TestFetchFromBackendWithMocks(t *testing.T) {
	s, m := newMockedStore(t)

	m.api.EXPECT().BaseURL().Return("https://smartrx.example")
	m.api.EXPECT().Do(gomock.Any(), gomock.Any()).Return(&responses.APIResponse{StatusCode: 404, Body: []byte(`{}`)}, nil)

	assert.Equal(t, "https://smartrx.example", s.APIBaseURL())

	_, err := s.FetchFromBackend(context.Background(), "/missing", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, 404, exceptions.StatusCode(err))
}
