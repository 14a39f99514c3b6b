package constvars

// Remote API paths, relative to the configured base URL.
const (
	ResourcePrescriptions = "/prescriptions"
	ResourceMedications   = "/medications"
	ResourceReminders     = "/reminders"
	ResourceProfile       = "/profile"
	ResourceUserProfile   = "/user-profile"
)

// Resource names used in error and log messages.
const (
	ResourceNamePrescription = "prescription"
	ResourceNameMedication   = "medication"
	ResourceNameReminder     = "reminder"
	ResourceNameProfile      = "user profile"
)
