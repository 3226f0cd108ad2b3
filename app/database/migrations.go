package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createCoreTables(db); err != nil {
		return err
	}
	if err := createScheduleTables(db); err != nil {
		return err
	}
	if err := addProgramColumn(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createCoreTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, role_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			code TEXT UNIQUE NOT NULL,
			program TEXT NOT NULL DEFAULT 'regular',
			level VARCHAR(10),
			teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			class_id UUID REFERENCES classes(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create core tables: %v", err)
		return err
	}
	return nil
}

func createScheduleTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS lesson_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_id UUID NOT NULL REFERENCES classes(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			topic TEXT NOT NULL,
			description TEXT,
			skills TEXT[] NOT NULL DEFAULT '{}',
			cefr_level VARCHAR(10),
			lesson_plan TEXT,
			materials TEXT[] NOT NULL DEFAULT '{}',
			program TEXT NOT NULL DEFAULT 'regular',
			status TEXT NOT NULL DEFAULT 'scheduled',
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			batch_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_lesson_sessions_teacher_starts
			ON lesson_sessions (teacher_id, starts_at);

		CREATE TABLE IF NOT EXISTS placement_tests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			test_type TEXT NOT NULL DEFAULT 'placement',
			duration_minutes INT NOT NULL DEFAULT 60,
			materials TEXT[] NOT NULL DEFAULT '{}',
			starts_at TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_placement_tests_teacher_starts
			ON placement_tests (teacher_id, starts_at);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create schedule tables: %v", err)
		return err
	}
	return nil
}

// addProgramColumn backfills the program column on classes created before
// the bilingual track existed.
func addProgramColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'classes'
				AND column_name = 'program'
			) THEN
				ALTER TABLE classes ADD COLUMN program TEXT NOT NULL DEFAULT 'regular';
				RAISE NOTICE 'Added program column to classes';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for program column: %v", err)
		return err
	}
	return nil
}

func seedRoles(db *sql.DB) error {
	query := `INSERT INTO roles (name) VALUES ('admin'), ('teacher'), ('frontdesk')
			  ON CONFLICT (name) DO NOTHING`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed roles: %v", err)
		return err
	}
	return nil
}
