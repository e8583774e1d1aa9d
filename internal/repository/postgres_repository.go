package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
)

// PostgresRepository reads mirrored roster and scan-log tables. Identifier columns are
// text and are numericised the same way spreadsheet values are.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository constructs a PostgresRepository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rosterRow struct {
	StudentID string `db:"student_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	ClassYear string `db:"class_year"`
	Team      string `db:"team"`
}

// Source identifies the database for cache keys.
func (r *PostgresRepository) Source() string {
	return "postgres:lanyard_roster"
}

// Roster returns every roster row ordered by its spreadsheet row number.
func (r *PostgresRepository) Roster(ctx context.Context) ([]models.StudentRecord, error) {
	const query = `SELECT COALESCE(student_id, '') AS student_id, COALESCE(first_name, '') AS first_name,
        COALESCE(last_name, '') AS last_name, COALESCE(class_year, '') AS class_year, COALESCE(team, '') AS team
        FROM lanyard_roster ORDER BY row_number`

	var rows []rosterRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	students := make([]models.StudentRecord, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.StudentRecord{
			StudentID: models.ParseCell(row.StudentID),
			FirstName: models.ParseCell(row.FirstName),
			LastName:  models.ParseCell(row.LastName),
			ClassYear: models.ParseCell(row.ClassYear),
			Team:      models.ParseCell(row.Team),
		})
	}
	return students, nil
}

// ScanLog returns every logged identifier in insertion order.
func (r *PostgresRepository) ScanLog(ctx context.Context) ([]string, error) {
	const query = `SELECT COALESCE(student_id, '') FROM lanyard_scan_log ORDER BY row_number`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, fmt.Errorf("list scan log: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
