package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
)

// HospitalReadRepository provides read-only access to hospital records.
type HospitalReadRepository struct {
	db *sqlx.DB
}

// NewHospitalReadRepository creates a new HospitalReadRepository.
func NewHospitalReadRepository(db *sqlx.DB) *HospitalReadRepository {
	return &HospitalReadRepository{db: db}
}

const hospitalColumns = `hospital_id, hospital_name, hospital_type, registration_number,
	phone_number, official_email, password_hash, full_address, state, lga,
	contact_person_name, contact_person_role, contact_person_phone,
	created_at, updated_at`

// GetByOfficialEmail returns the hospital with the given official email,
// or nil if absent.
func (r *HospitalReadRepository) GetByOfficialEmail(ctx context.Context, officialEmail string) (*models.HospitalDB, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE official_email = $1`

	var hospital models.HospitalDB
	err := r.db.GetContext(ctx, &hospital, query, officialEmail)

	logger.Log.Debugw("hospital query",
		"query", strings.Join(strings.Fields(query), " "),
		"official_email", officialEmail,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// GetByID returns the hospital with the given id, or nil if absent.
func (r *HospitalReadRepository) GetByID(ctx context.Context, hospitalID uuid.UUID) (*models.HospitalDB, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE hospital_id = $1`

	var hospital models.HospitalDB
	err := r.db.GetContext(ctx, &hospital, query, hospitalID)

	logger.Log.Debugw("hospital query",
		"query", strings.Join(strings.Fields(query), " "),
		"hospital_id", hospitalID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// List returns all hospital records.
func (r *HospitalReadRepository) List(ctx context.Context) ([]models.HospitalDB, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY created_at`

	hospitals := make([]models.HospitalDB, 0)
	err := r.db.SelectContext(ctx, &hospitals, query)

	logger.Log.Debugw("hospital query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(hospitals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

// HospitalWriteRepository provides write access to hospital records.
type HospitalWriteRepository struct {
	db *sqlx.DB
}

// NewHospitalWriteRepository creates a new HospitalWriteRepository.
func NewHospitalWriteRepository(db *sqlx.DB) *HospitalWriteRepository {
	return &HospitalWriteRepository{db: db}
}

// Save inserts a new hospital record. A conflict on either unique key
// (official email or registration number) makes Save report
// inserted=false; the constraint is the arbiter, not a prior check.
func (r *HospitalWriteRepository) Save(ctx context.Context, hospital models.HospitalDB) (inserted bool, err error) {
	query := `
		INSERT INTO hospitals (
			hospital_id, hospital_name, hospital_type, registration_number,
			phone_number, official_email, password_hash, full_address, state,
			lga, contact_person_name, contact_person_role, contact_person_phone,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT DO NOTHING
	`
	args := []any{
		hospital.HospitalID, hospital.HospitalName, hospital.HospitalType,
		hospital.RegistrationNumber, hospital.PhoneNumber,
		hospital.OfficialEmail, hospital.PasswordHash, hospital.FullAddress,
		hospital.State, hospital.LGA, hospital.ContactPersonName,
		hospital.ContactPersonRole, hospital.ContactPersonPhone,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("hospital insert",
		"official_email", hospital.OfficialEmail,
		"registration_number", hospital.RegistrationNumber,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Update applies a partial update; nil fields keep their stored value.
// The password hash, when present, must already be hashed by the caller.
func (r *HospitalWriteRepository) Update(ctx context.Context, hospitalID uuid.UUID, upd models.HospitalUpdate, passwordHash *string) (found bool, err error) {
	query := `
		UPDATE hospitals SET
			hospital_name = COALESCE($2, hospital_name),
			hospital_type = COALESCE($3, hospital_type),
			phone_number = COALESCE($4, phone_number),
			password_hash = COALESCE($5, password_hash),
			full_address = COALESCE($6, full_address),
			state = COALESCE($7, state),
			lga = COALESCE($8, lga),
			contact_person_name = COALESCE($9, contact_person_name),
			contact_person_role = COALESCE($10, contact_person_role),
			contact_person_phone = COALESCE($11, contact_person_phone),
			updated_at = NOW()
		WHERE hospital_id = $1
	`
	args := []any{
		hospitalID, upd.HospitalName, upd.HospitalType, upd.PhoneNumber,
		passwordHash, upd.FullAddress, upd.State, upd.LGA,
		upd.ContactPersonName, upd.ContactPersonRole, upd.ContactPersonPhone,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("hospital update",
		"hospital_id", hospitalID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Delete removes the hospital with the given id.
func (r *HospitalWriteRepository) Delete(ctx context.Context, hospitalID uuid.UUID) (found bool, err error) {
	query := `DELETE FROM hospitals WHERE hospital_id = $1`

	res, err := r.db.ExecContext(ctx, query, hospitalID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("hospital delete",
		"hospital_id", hospitalID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
