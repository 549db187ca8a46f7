package models

// Event types published to the account events topic.
const (
	EventDonorRegistered    = "donor.registered"
	EventDonorPasswordReset = "donor.password_reset"
	EventHospitalRegistered = "hospital.registered"
)

// AccountEvent is the payload published to Kafka when an account
// changes in a way downstream consumers care about.
type AccountEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}
