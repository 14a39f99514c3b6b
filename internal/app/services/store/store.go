package store

import (
	"context"
	"sync"

	"smartrx-client/internal/app/contracts"
	"smartrx-client/internal/app/models"
	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/utils"

	"github.com/mohae/deepcopy"
	"go.uber.org/zap"
)

// Store is the client side mirror of the user's SmartRx data. The mutex only
// guards field access and is never held across a network call, so
// overlapping mutators are not coordinated and the last write wins.
type Store struct {
	APIClient          contracts.APIClient
	PrescriptionClient contracts.PrescriptionClient
	MedicationClient   contracts.MedicationClient
	ReminderClient     contracts.ReminderClient
	ProfileClient      contracts.ProfileClient
	Log                *zap.Logger

	mu                  sync.RWMutex
	userData            models.UserProfile
	prescriptionHistory []models.Prescription
	medicationData      []models.Medication
	reminders           []models.Reminder
}

func NewStore(
	apiClient contracts.APIClient,
	prescriptionClient contracts.PrescriptionClient,
	medicationClient contracts.MedicationClient,
	reminderClient contracts.ReminderClient,
	profileClient contracts.ProfileClient,
	logger *zap.Logger,
) *Store {
	return &Store{
		APIClient:           apiClient,
		PrescriptionClient:  prescriptionClient,
		MedicationClient:    medicationClient,
		ReminderClient:      reminderClient,
		ProfileClient:       profileClient,
		Log:                 logger,
		prescriptionHistory: []models.Prescription{},
		medicationData:      []models.Medication{},
		reminders:           []models.Reminder{},
	}
}

// Load fetches prescriptions, medications and reminders in that order,
// applying each as it arrives, then the profile on a best effort basis. The
// first failing collection aborts the sequence.
func (s *Store) Load(ctx context.Context) error {
	ctx, requestID := utils.WithRequestID(ctx)

	return utils.LogOperation(s.Log, "store.Load", requestID, func() error {
		err := s.loadCollections(ctx)
		if err != nil {
			s.Log.Error(constvars.ErrDevStoreInitialDataFetchFailed,
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}

		s.loadProfile(ctx, requestID)
		return nil
	})
}

// StartLoad runs Load in the background. The channel yields its result once
// and is then closed.
func (s *Store) StartLoad(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.Load(ctx)
	}()
	return done
}

func (s *Store) loadCollections(ctx context.Context) error {
	prescriptions, err := s.PrescriptionClient.ListPrescriptions(ctx)
	if err != nil {
		return err
	}
	s.SetPrescriptionHistory(prescriptions)

	return s.refreshDependents(ctx)
}

// refreshDependents re-fetches the collections derived from prescriptions.
func (s *Store) refreshDependents(ctx context.Context) error {
	medications, err := s.MedicationClient.ListMedications(ctx)
	if err != nil {
		return err
	}
	s.SetMedicationData(medications)

	reminders, err := s.ReminderClient.ListReminders(ctx)
	if err != nil {
		return err
	}
	s.SetReminders(reminders)
	return nil
}

func (s *Store) loadProfile(ctx context.Context, requestID string) {
	profile, err := s.ProfileClient.FindProfile(ctx)
	if err != nil {
		s.Log.Info("no existing user profile found or error fetching it",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if profile == nil {
		return
	}

	s.mu.Lock()
	s.userData = *profile
	s.mu.Unlock()
}

// UpdateUserData applies update locally before saving the merged profile.
// A failed save is reported but the local profile is kept.
func (s *Store) UpdateUserData(ctx context.Context, update models.UserProfileUpdate) Result {
	ctx, requestID := utils.WithRequestID(ctx)

	s.mu.Lock()
	profile := s.userData.Merge(update)
	s.userData = profile
	s.mu.Unlock()

	err := s.ProfileClient.SaveProfile(ctx, &profile)
	if err != nil {
		s.Log.Error("store.UpdateUserData error saving user data to backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProfileNameKey, profile.FullName),
			zap.Error(err),
		)
		return failed(err)
	}

	s.Log.Info("store.UpdateUserData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return succeeded()
}

// DeletePrescription removes the prescription on the server, then locally,
// then re-fetches medications and reminders. A rejected delete leaves the
// local list untouched; a failed re-fetch does not restore the prescription.
func (s *Store) DeletePrescription(ctx context.Context, prescriptionID string) Result {
	ctx, requestID := utils.WithRequestID(ctx)

	err := s.PrescriptionClient.DeletePrescription(ctx, prescriptionID)
	if err != nil {
		s.Log.Error("store.DeletePrescription error deleting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return failed(err)
	}

	s.mu.Lock()
	s.prescriptionHistory = models.WithoutID(s.prescriptionHistory, prescriptionID)
	s.mu.Unlock()

	err = s.refreshDependents(ctx)
	if err != nil {
		s.Log.Error("store.DeletePrescription error refreshing medications and reminders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return failed(err)
	}

	s.Log.Info("store.DeletePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return succeeded()
}

func (s *Store) UserData() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userData
}

func (s *Store) PrescriptionHistory() []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyResources(s.prescriptionHistory)
}

func (s *Store) MedicationData() []models.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyResources(s.medicationData)
}

func (s *Store) Reminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyResources(s.reminders)
}

func (s *Store) APIBaseURL() string {
	return s.APIClient.BaseURL()
}

// SetPrescriptionHistory stores a copy of prescriptions, as do the other
// setters, so later changes by the caller do not reach the store.
func (s *Store) SetPrescriptionHistory(prescriptions []models.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prescriptionHistory = copyResources(orEmpty(prescriptions))
}

func (s *Store) SetMedicationData(medications []models.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medicationData = copyResources(orEmpty(medications))
}

func (s *Store) SetReminders(reminders []models.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = copyResources(orEmpty(reminders))
}

func copyResources(resources []models.Resource) []models.Resource {
	return deepcopy.Copy(resources).([]models.Resource)
}

func orEmpty(resources []models.Resource) []models.Resource {
	if resources == nil {
		return []models.Resource{}
	}
	return resources
}
