package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
)

// DonorReadRepository provides read-only access to donor records.
type DonorReadRepository struct {
	db *sqlx.DB
}

// NewDonorReadRepository creates a new DonorReadRepository.
func NewDonorReadRepository(db *sqlx.DB) *DonorReadRepository {
	return &DonorReadRepository{db: db}
}

const donorColumns = `donor_id, name, date_of_birth, phone_number, email, gender,
	password_hash, blood_group, genotype, medical_condition, last_donation_date,
	current_location, preferred_radius, preferred_centers, is_verified,
	created_at, updated_at`

// GetByEmail returns the donor with the given email, or nil if absent.
func (r *DonorReadRepository) GetByEmail(ctx context.Context, email string) (*models.DonorDB, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE email = $1`

	var donor models.DonorDB
	err := r.db.GetContext(ctx, &donor, query, email)

	logger.Log.Debugw("donor query",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByID returns the donor with the given id, or nil if absent.
func (r *DonorReadRepository) GetByID(ctx context.Context, donorID uuid.UUID) (*models.DonorDB, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE donor_id = $1`

	var donor models.DonorDB
	err := r.db.GetContext(ctx, &donor, query, donorID)

	logger.Log.Debugw("donor query",
		"query", strings.Join(strings.Fields(query), " "),
		"donor_id", donorID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// List returns all donor records.
func (r *DonorReadRepository) List(ctx context.Context) ([]models.DonorDB, error) {
	query := `SELECT ` + donorColumns + ` FROM donors ORDER BY created_at`

	donors := make([]models.DonorDB, 0)
	err := r.db.SelectContext(ctx, &donors, query)

	logger.Log.Debugw("donor query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(donors),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return donors, nil
}

// DonorWriteRepository provides write access to donor records.
type DonorWriteRepository struct {
	db *sqlx.DB
}

// NewDonorWriteRepository creates a new DonorWriteRepository.
func NewDonorWriteRepository(db *sqlx.DB) *DonorWriteRepository {
	return &DonorWriteRepository{db: db}
}

// Save inserts a new donor record. The insert is atomic with respect to
// the unique email constraint: a conflicting row makes Save report
// inserted=false instead of racing a prior existence check.
func (r *DonorWriteRepository) Save(ctx context.Context, donor models.DonorDB) (inserted bool, err error) {
	query := `
		INSERT INTO donors (
			donor_id, name, date_of_birth, phone_number, email, gender,
			password_hash, blood_group, genotype, medical_condition,
			last_donation_date, current_location, preferred_radius,
			preferred_centers, is_verified, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`
	args := []any{
		donor.DonorID, donor.Name, donor.DateOfBirth, donor.PhoneNumber,
		donor.Email, donor.Gender, donor.PasswordHash, donor.BloodGroup,
		donor.Genotype, donor.MedicalCondition, donor.LastDonationDate,
		donor.CurrentLocation, donor.PreferredRadius, donor.PreferredCenters,
		donor.IsVerified,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("donor insert",
		"email", donor.Email,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Update applies a partial update; nil fields keep their stored value.
// Returns found=false when no donor has the given id.
func (r *DonorWriteRepository) Update(ctx context.Context, donorID uuid.UUID, upd models.DonorUpdate) (found bool, err error) {
	query := `
		UPDATE donors SET
			name = COALESCE($2, name),
			date_of_birth = COALESCE($3, date_of_birth),
			phone_number = COALESCE($4, phone_number),
			gender = COALESCE($5, gender),
			blood_group = COALESCE($6, blood_group),
			genotype = COALESCE($7, genotype),
			medical_condition = COALESCE($8, medical_condition),
			last_donation_date = COALESCE($9, last_donation_date),
			current_location = COALESCE($10, current_location),
			preferred_radius = COALESCE($11, preferred_radius),
			preferred_centers = COALESCE($12::TEXT[], preferred_centers),
			updated_at = NOW()
		WHERE donor_id = $1
	`
	args := []any{
		donorID, upd.Name, upd.DateOfBirth, upd.PhoneNumber, upd.Gender,
		upd.BloodGroup, upd.Genotype, upd.MedicalCondition,
		upd.LastDonationDate, upd.CurrentLocation, upd.PreferredRadius,
		centersArg(upd.PreferredCenters),
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("donor update",
		"donor_id", donorID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// UpdatePassword replaces the stored password hash for the given email.
func (r *DonorWriteRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (found bool, err error) {
	query := `UPDATE donors SET password_hash = $2, updated_at = NOW() WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("donor password update",
		"email", email,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// SetVerified flips the verification flag on. One-way: there is no
// operation that clears it.
func (r *DonorWriteRepository) SetVerified(ctx context.Context, email string) (found bool, err error) {
	query := `UPDATE donors SET is_verified = TRUE, updated_at = NOW() WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("donor verify",
		"email", email,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Delete removes the donor with the given id.
func (r *DonorWriteRepository) Delete(ctx context.Context, donorID uuid.UUID) (found bool, err error) {
	query := `DELETE FROM donors WHERE donor_id = $1`

	res, err := r.db.ExecContext(ctx, query, donorID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("donor delete",
		"donor_id", donorID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// centersArg keeps a nil slice NULL so COALESCE leaves the column alone.
func centersArg(centers []string) any {
	if centers == nil {
		return nil
	}
	return pq.StringArray(centers)
}
