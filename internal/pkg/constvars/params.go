package constvars

const (
	URLParamPrescriptionID = "prescription_id"
)
