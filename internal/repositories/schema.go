package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
)

// schema holds the DDL for both record types. Uniqueness lives in the
// table constraints: donor email, hospital official email and
// registration number.
const schema = `
CREATE TABLE IF NOT EXISTS donors (
	donor_id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	date_of_birth VARCHAR(64) NOT NULL,
	phone_number VARCHAR(32) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	gender VARCHAR(16) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	blood_group VARCHAR(8) NOT NULL,
	genotype VARCHAR(8) NOT NULL,
	medical_condition VARCHAR(8) NOT NULL,
	last_donation_date VARCHAR(64),
	current_location VARCHAR(255) NOT NULL,
	preferred_radius VARCHAR(64),
	preferred_centers TEXT[],
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS hospitals (
	hospital_id UUID PRIMARY KEY,
	hospital_name VARCHAR(255) NOT NULL,
	hospital_type VARCHAR(16) NOT NULL,
	registration_number VARCHAR(128) NOT NULL UNIQUE,
	phone_number VARCHAR(32) NOT NULL,
	official_email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	full_address VARCHAR(512) NOT NULL,
	state VARCHAR(128) NOT NULL,
	lga VARCHAR(128) NOT NULL,
	contact_person_name VARCHAR(255) NOT NULL,
	contact_person_role VARCHAR(128) NOT NULL,
	contact_person_phone VARCHAR(32) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Migrate creates the donor and hospital tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema migration", "error", err)

	return err
}
