package models

type UserProfile struct {
	FullName               string `json:"fullName"`
	Dob                    string `json:"dob"`
	Gender                 string `json:"gender"`
	MedicalConditions      string `json:"medicalConditions"`
	Medications            string `json:"medications"`
	Allergies              string `json:"allergies"`
	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
	PreferredPharmacy      string `json:"preferredPharmacy"`
}

// UserProfileUpdate is a partial profile. Nil fields keep the current value.
type UserProfileUpdate struct {
	FullName               *string `json:"fullName,omitempty"`
	Dob                    *string `json:"dob,omitempty"`
	Gender                 *string `json:"gender,omitempty"`
	MedicalConditions      *string `json:"medicalConditions,omitempty"`
	Medications            *string `json:"medications,omitempty"`
	Allergies              *string `json:"allergies,omitempty"`
	EmergencyContactName   *string `json:"emergencyContactName,omitempty"`
	EmergencyContactNumber *string `json:"emergencyContactNumber,omitempty"`
	PreferredPharmacy      *string `json:"preferredPharmacy,omitempty"`
}

// Merge returns p with every non-nil field of update applied.
func (p UserProfile) Merge(update UserProfileUpdate) UserProfile {
	mergeField(&p.FullName, update.FullName)
	mergeField(&p.Dob, update.Dob)
	mergeField(&p.Gender, update.Gender)
	mergeField(&p.MedicalConditions, update.MedicalConditions)
	mergeField(&p.Medications, update.Medications)
	mergeField(&p.Allergies, update.Allergies)
	mergeField(&p.EmergencyContactName, update.EmergencyContactName)
	mergeField(&p.EmergencyContactNumber, update.EmergencyContactNumber)
	mergeField(&p.PreferredPharmacy, update.PreferredPharmacy)
	return p
}

func mergeField(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
