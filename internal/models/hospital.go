package models

import (
	"time"

	"github.com/google/uuid"
)

// Hospital type values.
const (
	HospitalTypePublic  = "Public"
	HospitalTypePrivate = "Private"
)

// HospitalDB represents a hospital record in the database.
// The password hash is never serialized into API responses.
type HospitalDB struct {
	HospitalID         uuid.UUID `json:"id" db:"hospital_id"`
	HospitalName       string    `json:"hospitalName" db:"hospital_name"`
	HospitalType       string    `json:"hospitalType" db:"hospital_type"`
	RegistrationNumber string    `json:"registrationNumber" db:"registration_number"` // unique
	PhoneNumber        string    `json:"phoneNumber" db:"phone_number"`
	OfficialEmail      string    `json:"officialEmail" db:"official_email"` // unique
	PasswordHash       string    `json:"-" db:"password_hash"`
	FullAddress        string    `json:"fullAddress" db:"full_address"`
	State              string    `json:"state" db:"state"`
	LGA                string    `json:"lga" db:"lga"`
	ContactPersonName  string    `json:"contactPersonName" db:"contact_person_name"`
	ContactPersonRole  string    `json:"contactPersonRole" db:"contact_person_role"`
	ContactPersonPhone string    `json:"contactPersonPhone" db:"contact_person_phone"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// HospitalUpdate carries a partial hospital update. Nil fields are left
// unchanged. A non-nil Password is re-hashed before persistence.
type HospitalUpdate struct {
	HospitalName       *string `json:"hospitalName,omitempty"`
	HospitalType       *string `json:"hospitalType,omitempty"`
	PhoneNumber        *string `json:"phoneNumber,omitempty"`
	Password           *string `json:"password,omitempty"`
	FullAddress        *string `json:"fullAddress,omitempty"`
	State              *string `json:"state,omitempty"`
	LGA                *string `json:"lga,omitempty"`
	ContactPersonName  *string `json:"contactPersonName,omitempty"`
	ContactPersonRole  *string `json:"contactPersonRole,omitempty"`
	ContactPersonPhone *string `json:"contactPersonPhone,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u HospitalUpdate) IsEmpty() bool {
	return u.HospitalName == nil &&
		u.HospitalType == nil &&
		u.PhoneNumber == nil &&
		u.Password == nil &&
		u.FullAddress == nil &&
		u.State == nil &&
		u.LGA == nil &&
		u.ContactPersonName == nil &&
		u.ContactPersonRole == nil &&
		u.ContactPersonPhone == nil
}

// ValidHospitalType reports whether v is an accepted hospital type.
func ValidHospitalType(v string) bool {
	return v == HospitalTypePublic || v == HospitalTypePrivate
}
