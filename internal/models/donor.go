package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Gender values accepted for a donor record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// BloodGroups lists the 8 accepted ABO/Rh values.
var BloodGroups = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}

// Genotypes lists the accepted genotype values.
var Genotypes = []string{"AA", "AS", "SS"}

// MedicalConditions lists the accepted medical-condition flags.
var MedicalConditions = []string{"Yes", "No"}

// DonorDB represents a donor record in the database.
// The password hash is never serialized into API responses.
type DonorDB struct {
	DonorID          uuid.UUID      `json:"id" db:"donor_id"`
	Name             string         `json:"name" db:"name"`
	DateOfBirth      string         `json:"dateOfBirth" db:"date_of_birth"`
	PhoneNumber      string         `json:"phoneNumber" db:"phone_number"`
	Email            string         `json:"email" db:"email"` // unique
	Gender           string         `json:"gender" db:"gender"`
	PasswordHash     string         `json:"-" db:"password_hash"`
	BloodGroup       string         `json:"bloodGroup" db:"blood_group"`
	Genotype         string         `json:"genotype" db:"genotype"`
	MedicalCondition string         `json:"medicalCondition" db:"medical_condition"`
	LastDonationDate *string        `json:"lastDonationDate,omitempty" db:"last_donation_date"`
	CurrentLocation  string         `json:"currentLocation" db:"current_location"`
	PreferredRadius  *string        `json:"preferredRadius,omitempty" db:"preferred_radius"`
	PreferredCenters pq.StringArray `json:"preferredCenters,omitempty" db:"preferred_centers"`
	IsVerified       bool           `json:"isVerified" db:"is_verified"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`
}

// DonorUpdate carries a partial donor update. Nil fields are left
// unchanged. The password is not updatable here: the reset flow owns it.
type DonorUpdate struct {
	Name             *string  `json:"name,omitempty"`
	DateOfBirth      *string  `json:"dateOfBirth,omitempty"`
	PhoneNumber      *string  `json:"phoneNumber,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	BloodGroup       *string  `json:"bloodGroup,omitempty"`
	Genotype         *string  `json:"genotype,omitempty"`
	MedicalCondition *string  `json:"medicalCondition,omitempty"`
	LastDonationDate *string  `json:"lastDonationDate,omitempty"`
	CurrentLocation  *string  `json:"currentLocation,omitempty"`
	PreferredRadius  *string  `json:"preferredRadius,omitempty"`
	PreferredCenters []string `json:"preferredCenters,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u DonorUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.DateOfBirth == nil &&
		u.PhoneNumber == nil &&
		u.Gender == nil &&
		u.BloodGroup == nil &&
		u.Genotype == nil &&
		u.MedicalCondition == nil &&
		u.LastDonationDate == nil &&
		u.CurrentLocation == nil &&
		u.PreferredRadius == nil &&
		u.PreferredCenters == nil
}

// ValidGender reports whether v is an accepted gender value.
func ValidGender(v string) bool {
	return v == GenderMale || v == GenderFemale
}

// ValidBloodGroup reports whether v is an accepted blood group.
func ValidBloodGroup(v string) bool {
	return contains(BloodGroups, v)
}

// ValidGenotype reports whether v is an accepted genotype.
func ValidGenotype(v string) bool {
	return contains(Genotypes, v)
}

// ValidMedicalCondition reports whether v is an accepted flag.
func ValidMedicalCondition(v string) bool {
	return contains(MedicalConditions, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
