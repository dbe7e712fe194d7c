package database

import (
	"strings"
	"testing"
)

func TestMigrationStatementsCoverAllTables(t *testing.T) {
	tables := []string{"users", "chats", "messages", "lessons", "enrollments", "grades", "files"}

	joined := strings.Join(migrationStatements, "\n")
	for _, table := range tables {
		if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("tidak ada DDL untuk tabel %s", table)
		}
	}
}

func TestMigrationStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range migrationStatements {
		trimmed := strings.TrimSpace(stmt)
		if !strings.Contains(trimmed, "IF NOT EXISTS") {
			t.Errorf("statement tidak idempotent: %.60s...", trimmed)
		}
	}
}

func TestUniquePairConstraints(t *testing.T) {
	// Dua tabel relasi mengandalkan unique pair untuk upsert/anti-duplikat.
	for _, table := range []string{"enrollments", "grades"} {
		found := false
		for _, stmt := range migrationStatements {
			if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+table) &&
				strings.Contains(stmt, "UNIQUE (lesson_id, student_id)") {
				found = true
			}
		}
		if !found {
			t.Errorf("tabel %s tanpa UNIQUE (lesson_id, student_id)", table)
		}
	}
}
