package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
)

var (
	ErrHospitalAlreadyExists = errors.New("email or registration number already registered")
	ErrHospitalNotFound      = errors.New("hospital not found")
)

// HospitalReader defines read-only operations for hospital records.
type HospitalReader interface {
	GetByOfficialEmail(ctx context.Context, officialEmail string) (*models.HospitalDB, error)
	GetByID(ctx context.Context, hospitalID uuid.UUID) (*models.HospitalDB, error)
	List(ctx context.Context) ([]models.HospitalDB, error)
}

// HospitalWriter defines write operations for hospital records.
type HospitalWriter interface {
	Save(ctx context.Context, hospital models.HospitalDB) (inserted bool, err error)
	Update(ctx context.Context, hospitalID uuid.UUID, upd models.HospitalUpdate, passwordHash *string) (found bool, err error)
	Delete(ctx context.Context, hospitalID uuid.UUID) (found bool, err error)
}

// HospitalService handles hospital registration, login and profile
// CRUD. Structurally the donor service with a different record schema
// and no verification or reset flow.
type HospitalService struct {
	reader HospitalReader
	writer HospitalWriter
	hasher Hasher
	token  TokenGenerator
	events *EventPublisher
}

// NewHospitalService creates a new HospitalService instance.
func NewHospitalService(
	reader HospitalReader,
	writer HospitalWriter,
	hasher Hasher,
	token TokenGenerator,
	events *EventPublisher,
) *HospitalService {
	return &HospitalService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		token:  token,
		events: events,
	}
}

// Register creates a new hospital record. Conflicts on official email
// or registration number are resolved by the store's constraints.
func (svc *HospitalService) Register(ctx context.Context, reg models.HospitalRegistration) error {
	if err := validateHospitalRegistration(reg); err != nil {
		return err
	}

	hashed, err := svc.hasher.Hash(reg.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	hospital := models.HospitalDB{
		HospitalID:         uuid.New(),
		HospitalName:       reg.HospitalName,
		HospitalType:       reg.HospitalType,
		RegistrationNumber: reg.RegistrationNumber,
		PhoneNumber:        reg.PhoneNumber,
		OfficialEmail:      reg.OfficialEmail,
		PasswordHash:       hashed,
		FullAddress:        reg.FullAddress,
		State:              reg.State,
		LGA:                reg.LGA,
		ContactPersonName:  reg.ContactPersonName,
		ContactPersonRole:  reg.ContactPersonRole,
		ContactPersonPhone: reg.ContactPersonPhone,
	}

	inserted, err := svc.writer.Save(ctx, hospital)
	if err != nil {
		logger.Log.Errorw("failed to save hospital", "error", err)
		return err
	}
	if !inserted {
		logger.Log.Infow("hospital already exists",
			"official_email", reg.OfficialEmail,
			"registration_number", reg.RegistrationNumber,
		)
		return ErrHospitalAlreadyExists
	}

	svc.events.Publish(ctx, models.EventHospitalRegistered, hospital.HospitalID.String(), hospital.OfficialEmail)
	return nil
}

// Login authenticates a hospital and returns a signed bearer token.
func (svc *HospitalService) Login(ctx context.Context, officialEmail, password string) (string, error) {
	hospital, err := svc.reader.GetByOfficialEmail(ctx, officialEmail)
	if err != nil {
		logger.Log.Errorw("failed to get hospital", "error", err)
		return "", err
	}
	if hospital == nil {
		return "", ErrHospitalNotFound
	}

	if !svc.hasher.Verify(password, hospital.PasswordHash) {
		logger.Log.Infow("invalid credentials", "official_email", officialEmail)
		return "", ErrInvalidCredentials
	}

	token, err := svc.token.Generate(ctx, hospital.HospitalID, hospital.OfficialEmail)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return "", err
	}

	return token, nil
}

// List returns all hospital records.
func (svc *HospitalService) List(ctx context.Context) ([]models.HospitalDB, error) {
	hospitals, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list hospitals", "error", err)
		return nil, err
	}
	return hospitals, nil
}

// GetByID returns one hospital record.
func (svc *HospitalService) GetByID(ctx context.Context, hospitalID uuid.UUID) (*models.HospitalDB, error) {
	hospital, err := svc.reader.GetByID(ctx, hospitalID)
	if err != nil {
		logger.Log.Errorw("failed to get hospital", "error", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	return hospital, nil
}

// Update applies a partial profile update and returns the updated
// record. A password in the payload is re-hashed before persistence,
// never stored raw.
func (svc *HospitalService) Update(ctx context.Context, hospitalID uuid.UUID, upd models.HospitalUpdate) (*models.HospitalDB, error) {
	if upd.HospitalType != nil && !models.ValidHospitalType(*upd.HospitalType) {
		return nil, fmt.Errorf("%w: invalid hospital type", ErrValidation)
	}

	var passwordHash *string
	if upd.Password != nil {
		hashed, err := svc.hasher.Hash(*upd.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		passwordHash = &hashed
	}

	found, err := svc.writer.Update(ctx, hospitalID, upd, passwordHash)
	if err != nil {
		logger.Log.Errorw("failed to update hospital", "error", err)
		return nil, err
	}
	if !found {
		return nil, ErrHospitalNotFound
	}

	return svc.GetByID(ctx, hospitalID)
}

// Delete removes a hospital record.
func (svc *HospitalService) Delete(ctx context.Context, hospitalID uuid.UUID) error {
	found, err := svc.writer.Delete(ctx, hospitalID)
	if err != nil {
		logger.Log.Errorw("failed to delete hospital", "error", err)
		return err
	}
	if !found {
		return ErrHospitalNotFound
	}
	return nil
}

func validateHospitalRegistration(reg models.HospitalRegistration) error {
	if anyEmpty(reg.HospitalName, reg.HospitalType, reg.RegistrationNumber,
		reg.PhoneNumber, reg.OfficialEmail, reg.Password,
		reg.ConfirmPassword, reg.FullAddress, reg.State, reg.LGA,
		reg.ContactPersonName, reg.ContactPersonRole, reg.ContactPersonPhone) {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if reg.Password != reg.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if !models.ValidHospitalType(reg.HospitalType) {
		return fmt.Errorf("%w: invalid hospital type", ErrValidation)
	}
	return nil
}
