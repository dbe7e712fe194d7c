package database

import "log"

// RunMigrations menjalankan DDL idempotent saat startup. Urutan statement
// mengikuti dependensi FK.
func RunMigrations() error {
	for _, stmt := range migrationStatements {
		if err := DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Skema siap.")
	return nil
}

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		role VARCHAR(20) NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS chats (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		teacher_id UUID NOT NULL REFERENCES users(id),
		student_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		chat_id UUID NOT NULL REFERENCES chats(id),
		sender_id UUID NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS lessons (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		teacher_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ,
		duration INTEGER NOT NULL DEFAULT 0,
		homework_text TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS enrollments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		lesson_id UUID NOT NULL REFERENCES lessons(id),
		student_id UUID NOT NULL REFERENCES users(id),
		status VARCHAR(20) NOT NULL DEFAULT 'enrolled',
		enrolled_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (lesson_id, student_id)
	)`,

	`CREATE TABLE IF NOT EXISTS grades (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		lesson_id UUID NOT NULL REFERENCES lessons(id),
		student_id UUID NOT NULL REFERENCES users(id),
		grade INTEGER NOT NULL,
		feedback TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (lesson_id, student_id)
	)`,

	`CREATE TABLE IF NOT EXISTS files (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		lesson_id UUID NOT NULL REFERENCES lessons(id),
		filename TEXT NOT NULL UNIQUE,
		original_name TEXT NOT NULL,
		mime_type TEXT NOT NULL,
		size BIGINT NOT NULL,
		uploaded_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_chat_id ON messages(chat_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_lesson_id ON enrollments(lesson_id)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_files_lesson_id ON files(lesson_id)`,
}
