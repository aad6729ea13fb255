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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createRoleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE roles (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		role_id TEXT NOT NULL,
		preferred_language TEXT NOT NULL DEFAULT 'fr',
		is_verified INTEGER NOT NULL DEFAULT 0,
		verification_token TEXT,
		reset_password_token TEXT,
		reset_password_expire_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLanguageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE languages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);`)
}

func createBrandTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE brands (
		id TEXT PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE brand_translations (
		id TEXT PRIMARY KEY,
		brand_id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT
	);`)
}

func createCategoryTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE category_translations (
		id TEXT PRIMARY KEY,
		category_id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT
	);`)
}

func createSupplierTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE suppliers (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		address TEXT,
		phone TEXT,
		email TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE supplier_translations (
		id TEXT PRIMARY KEY,
		supplier_id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT
	);`)
}

func createVehicleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vehicles (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		body_type TEXT,
		range TEXT,
		condition TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'available',
		stock INTEGER NOT NULL DEFAULT 1,
		price REAL,
		rental_price_per_day REAL,
		first_registration DATETIME,
		country_origin TEXT,
		axle_count INTEGER,
		axle_brand TEXT,
		mileage INTEGER,
		emission_norm TEXT,
		gearbox TEXT,
		engine_power INTEGER,
		engine_size INTEGER,
		dimensions TEXT,
		fuel_type TEXT,
		tonnage TEXT,
		tires TEXT,
		cabin_type TEXT,
		cabin_equipments TEXT,
		specific_equipments TEXT,
		admin_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		supplier_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE vehicle_images (
		id TEXT PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		url TEXT NOT NULL,
		alt TEXT,
		is_main INTEGER NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE vehicle_translations (
		id TEXT PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		language_id TEXT NOT NULL,
		title TEXT,
		description TEXT
	);`)
}

func createTransactionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		total_amount REAL NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		start_date DATETIME,
		end_date DATETIME,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE vehicle_transactions (
		id TEXT PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		vehicle_id TEXT NOT NULL,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1
	);`)
}
