package models

// DonorRegistration is the full field set submitted at donor signup.
// LastDonationDate, PreferredRadius and PreferredCenters are optional;
// everything else is required.
type DonorRegistration struct {
	Name             string   `json:"name"`
	DateOfBirth      string   `json:"dateOfBirth"`
	PhoneNumber      string   `json:"phoneNumber"`
	Email            string   `json:"email"`
	Gender           string   `json:"gender"`
	Password         string   `json:"password"`
	ConfirmPassword  string   `json:"confirmPassword"`
	BloodGroup       string   `json:"bloodGroup"`
	Genotype         string   `json:"genotype"`
	MedicalCondition string   `json:"medicalCondition"`
	LastDonationDate *string  `json:"lastDonationDate,omitempty"`
	CurrentLocation  string   `json:"currentLocation"`
	PreferredRadius  *string  `json:"preferredRadius,omitempty"`
	PreferredCenters []string `json:"preferredCenters,omitempty"`
}

// HospitalRegistration is the full field set submitted at hospital
// signup. Every field is required.
type HospitalRegistration struct {
	HospitalName       string `json:"hospitalName"`
	HospitalType       string `json:"hospitalType"`
	RegistrationNumber string `json:"registrationNumber"`
	PhoneNumber        string `json:"phoneNumber"`
	OfficialEmail      string `json:"officialEmail"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	FullAddress        string `json:"fullAddress"`
	State              string `json:"state"`
	LGA                string `json:"lga"`
	ContactPersonName  string `json:"contactPersonName"`
	ContactPersonRole  string `json:"contactPersonRole"`
	ContactPersonPhone string `json:"contactPersonPhone"`
}
