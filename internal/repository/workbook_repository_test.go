package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Lanyard_Data")
	require.NoError(t, err)
	_, err = f.NewSheet("lanyard_log")
	require.NoError(t, err)

	rows := [][]interface{}{
		{"student_id", "first_name", "last_name", "class_year", "team"},
		{42, "A", "B", 2026, "Red"},
		{"S-7", "", "Lee", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Lanyard_Data", cell, &row))
	}
	logRows := [][]interface{}{
		{"scanned_at", "student_id"},
		{"2025-01-01", "42"},
		{"2025-01-02", 42},
		{"2025-01-03"},
	}
	for i, row := range logRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("lanyard_log", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "lanyard.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWorkbookRepository(t *testing.T) {
	repo := NewWorkbookRepository(writeWorkbook(t), Layout{StudentTab: "Lanyard_Data", ScanLogTab: "lanyard_log", ScanLogColumn: 2})

	roster, err := repo.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, models.CellInteger, roster[0].StudentID.Kind)
	assert.Equal(t, "2026", roster[0].ClassYear.String())
	assert.Equal(t, "Lee", roster[1].FullName())

	log, err := repo.ScanLog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"42", "42", ""}, log)
}

func TestWorkbookRepositoryMissingSheet(t *testing.T) {
	repo := NewWorkbookRepository(writeWorkbook(t), Layout{StudentTab: "Roster"})
	_, err := repo.Roster(context.Background())
	assert.ErrorContains(t, err, `worksheet "Roster" not found`)
}

func TestWorkbookRepositoryMissingFile(t *testing.T) {
	repo := NewWorkbookRepository(filepath.Join(t.TempDir(), "absent.xlsx"), Layout{StudentTab: "Lanyard_Data"})
	_, err := repo.Roster(context.Background())
	assert.ErrorContains(t, err, "open workbook")
}
