package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFacilityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE facilities (
		id TEXT PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		category TEXT,
		city TEXT,
		county TEXT,
		state TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createClaimTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE claims (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		facility_slug TEXT NOT NULL,
		status TEXT NOT NULL,
		business_role TEXT NOT NULL,
		claimant_name TEXT NOT NULL,
		claimant_phone TEXT,
		verification_email TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_claims_active_user_slug
		ON claims(user_id, facility_slug)
		WHERE status IN ('pending','verified') AND deleted_at IS NULL;`)
}

func createVerificationCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_codes (
		id TEXT PRIMARY KEY,
		target TEXT NOT NULL,
		purpose TEXT NOT NULL,
		code_hash TEXT NOT NULL,
		name TEXT,
		secret_hash TEXT,
		reference_id TEXT,
		expires_at DATETIME NOT NULL,
		consumed_at DATETIME,
		created_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFavoriteTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		facility_slug TEXT NOT NULL,
		facility_name TEXT,
		created_at DATETIME,
		UNIQUE(user_id, facility_slug)
	);`)
}

func createReviewTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		facility_slug TEXT NOT NULL,
		author_name TEXT NOT NULL,
		author_email TEXT,
		rating INTEGER NOT NULL,
		title TEXT,
		content TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE embedded_reviews (
		id TEXT PRIMARY KEY,
		facility_slug TEXT NOT NULL,
		author_name TEXT NOT NULL,
		rating INTEGER NOT NULL,
		content TEXT NOT NULL,
		source TEXT,
		reviewed_at DATETIME
	);`)
}
