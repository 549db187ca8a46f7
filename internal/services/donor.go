package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
)

// Error variables shared by both account services.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("incorrect password")

	ErrDonorAlreadyExists = errors.New("email already registered")
	ErrDonorNotFound      = errors.New("donor not found")
	ErrAlreadyVerified    = errors.New("donor already verified")
	ErrInvalidResetCode   = errors.New("invalid email or code")
)

// DonorReader defines read-only operations for donor records.
type DonorReader interface {
	GetByEmail(ctx context.Context, email string) (*models.DonorDB, error)
	GetByID(ctx context.Context, donorID uuid.UUID) (*models.DonorDB, error)
	List(ctx context.Context) ([]models.DonorDB, error)
}

// DonorWriter defines write operations for donor records.
type DonorWriter interface {
	Save(ctx context.Context, donor models.DonorDB) (inserted bool, err error)
	Update(ctx context.Context, donorID uuid.UUID, upd models.DonorUpdate) (found bool, err error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (found bool, err error)
	SetVerified(ctx context.Context, email string) (found bool, err error)
	Delete(ctx context.Context, donorID uuid.UUID) (found bool, err error)
}

// ResetCodeStore defines storage for one-time password-reset codes.
type ResetCodeStore interface {
	Set(ctx context.Context, email, code string) error
	Consume(ctx context.Context, email, code string) (matched bool, err error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, subjectID uuid.UUID, email string) (string, error)
}

// DonorService handles donor registration, login, the emailless
// verification and password-reset flows, and profile CRUD.
type DonorService struct {
	reader DonorReader
	writer DonorWriter
	codes  ResetCodeStore
	hasher Hasher
	token  TokenGenerator
	events *EventPublisher
}

// NewDonorService creates a new DonorService instance.
func NewDonorService(
	reader DonorReader,
	writer DonorWriter,
	codes ResetCodeStore,
	hasher Hasher,
	token TokenGenerator,
	events *EventPublisher,
) *DonorService {
	return &DonorService{
		reader: reader,
		writer: writer,
		codes:  codes,
		hasher: hasher,
		token:  token,
		events: events,
	}
}

// Register creates a new donor record. No token is issued at
// registration; the record is created verified since no email channel
// exists. Duplicate emails are rejected by the store's unique
// constraint, not by a prior lookup.
func (svc *DonorService) Register(ctx context.Context, reg models.DonorRegistration) error {
	if err := validateDonorRegistration(reg); err != nil {
		return err
	}

	hashed, err := svc.hasher.Hash(reg.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	donor := models.DonorDB{
		DonorID:          uuid.New(),
		Name:             reg.Name,
		DateOfBirth:      reg.DateOfBirth,
		PhoneNumber:      reg.PhoneNumber,
		Email:            reg.Email,
		Gender:           reg.Gender,
		PasswordHash:     hashed,
		BloodGroup:       reg.BloodGroup,
		Genotype:         reg.Genotype,
		MedicalCondition: reg.MedicalCondition,
		LastDonationDate: reg.LastDonationDate,
		CurrentLocation:  reg.CurrentLocation,
		PreferredRadius:  reg.PreferredRadius,
		PreferredCenters: reg.PreferredCenters,
		IsVerified:       true,
	}

	inserted, err := svc.writer.Save(ctx, donor)
	if err != nil {
		logger.Log.Errorw("failed to save donor", "error", err)
		return err
	}
	if !inserted {
		logger.Log.Infow("donor already exists", "email", reg.Email)
		return ErrDonorAlreadyExists
	}

	svc.events.Publish(ctx, models.EventDonorRegistered, donor.DonorID.String(), donor.Email)
	return nil
}

// Login authenticates a donor and returns a signed bearer token.
func (svc *DonorService) Login(ctx context.Context, email, password string) (string, error) {
	donor, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get donor", "error", err)
		return "", err
	}
	if donor == nil {
		return "", ErrDonorNotFound
	}

	if !svc.hasher.Verify(password, donor.PasswordHash) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.token.Generate(ctx, donor.DonorID, donor.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "error", err)
		return "", err
	}

	return token, nil
}

// VerifyEmail flips the verification flag. The transition is one-way
// and, absent a real email channel, unconditional.
func (svc *DonorService) VerifyEmail(ctx context.Context, email string) error {
	donor, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get donor", "error", err)
		return err
	}
	if donor == nil {
		return ErrDonorNotFound
	}
	if donor.IsVerified {
		return ErrAlreadyVerified
	}

	if _, err := svc.writer.SetVerified(ctx, email); err != nil {
		logger.Log.Errorw("failed to set verified", "error", err)
		return err
	}
	return nil
}

// RequestPasswordReset issues a 6-digit code, stores it with a TTL and
// returns it. The HTTP response is the delivery channel: a documented
// weakness of the emailless flow.
func (svc *DonorService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	donor, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get donor", "error", err)
		return "", err
	}
	if donor == nil {
		return "", ErrDonorNotFound
	}

	code, err := generateResetCode()
	if err != nil {
		logger.Log.Errorw("failed to generate reset code", "error", err)
		return "", err
	}

	if err := svc.codes.Set(ctx, email, code); err != nil {
		logger.Log.Errorw("failed to store reset code", "error", err)
		return "", err
	}

	return code, nil
}

// ResetPassword consumes a reset code and replaces the stored hash.
// The code is invalidated on success; a second attempt with the same
// code fails.
func (svc *DonorService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return fmt.Errorf("%w: email, code and newPassword are required", ErrValidation)
	}

	matched, err := svc.codes.Consume(ctx, email, code)
	if err != nil {
		logger.Log.Errorw("failed to consume reset code", "error", err)
		return err
	}
	if !matched {
		return ErrInvalidResetCode
	}

	hashed, err := svc.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	found, err := svc.writer.UpdatePassword(ctx, email, hashed)
	if err != nil {
		logger.Log.Errorw("failed to update password", "error", err)
		return err
	}
	if !found {
		return ErrInvalidResetCode
	}

	donor, err := svc.reader.GetByEmail(ctx, email)
	if err == nil && donor != nil {
		svc.events.Publish(ctx, models.EventDonorPasswordReset, donor.DonorID.String(), donor.Email)
	}
	return nil
}

// List returns all donor records.
func (svc *DonorService) List(ctx context.Context) ([]models.DonorDB, error) {
	donors, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list donors", "error", err)
		return nil, err
	}
	return donors, nil
}

// GetByID returns one donor record.
func (svc *DonorService) GetByID(ctx context.Context, donorID uuid.UUID) (*models.DonorDB, error) {
	donor, err := svc.reader.GetByID(ctx, donorID)
	if err != nil {
		logger.Log.Errorw("failed to get donor", "error", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}
	return donor, nil
}

// Update applies a partial profile update and returns the updated
// record. Fields absent from the payload keep their stored values.
func (svc *DonorService) Update(ctx context.Context, donorID uuid.UUID, upd models.DonorUpdate) (*models.DonorDB, error) {
	if err := validateDonorUpdate(upd); err != nil {
		return nil, err
	}

	found, err := svc.writer.Update(ctx, donorID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update donor", "error", err)
		return nil, err
	}
	if !found {
		return nil, ErrDonorNotFound
	}

	return svc.GetByID(ctx, donorID)
}

// Delete removes a donor record.
func (svc *DonorService) Delete(ctx context.Context, donorID uuid.UUID) error {
	found, err := svc.writer.Delete(ctx, donorID)
	if err != nil {
		logger.Log.Errorw("failed to delete donor", "error", err)
		return err
	}
	if !found {
		return ErrDonorNotFound
	}
	return nil
}

func validateDonorRegistration(reg models.DonorRegistration) error {
	if anyEmpty(reg.Name, reg.DateOfBirth, reg.PhoneNumber, reg.Email,
		reg.Gender, reg.Password, reg.ConfirmPassword, reg.BloodGroup,
		reg.Genotype, reg.MedicalCondition, reg.CurrentLocation) {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if reg.Password != reg.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if !models.ValidGender(reg.Gender) {
		return fmt.Errorf("%w: invalid gender", ErrValidation)
	}
	if !models.ValidBloodGroup(reg.BloodGroup) {
		return fmt.Errorf("%w: invalid blood group", ErrValidation)
	}
	if !models.ValidGenotype(reg.Genotype) {
		return fmt.Errorf("%w: invalid genotype", ErrValidation)
	}
	if !models.ValidMedicalCondition(reg.MedicalCondition) {
		return fmt.Errorf("%w: invalid medical condition", ErrValidation)
	}
	return nil
}

func anyEmpty(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}
	return false
}

func validateDonorUpdate(upd models.DonorUpdate) error {
	if upd.Gender != nil && !models.ValidGender(*upd.Gender) {
		return fmt.Errorf("%w: invalid gender", ErrValidation)
	}
	if upd.BloodGroup != nil && !models.ValidBloodGroup(*upd.BloodGroup) {
		return fmt.Errorf("%w: invalid blood group", ErrValidation)
	}
	if upd.Genotype != nil && !models.ValidGenotype(*upd.Genotype) {
		return fmt.Errorf("%w: invalid genotype", ErrValidation)
	}
	if upd.MedicalCondition != nil && !models.ValidMedicalCondition(*upd.MedicalCondition) {
		return fmt.Errorf("%w: invalid medical condition", ErrValidation)
	}
	return nil
}
