package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
)

func TestRecordsFromRowsPads(t *testing.T) {
	records := recordsFromRows([][]string{
		{"student_id", "first_name", "team"},
		{"1", "Ana"},
		{},
	})
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"student_id": "1", "first_name": "Ana", "team": ""}, records[0])
	assert.Equal(t, "", records[1]["student_id"])
	assert.Nil(t, recordsFromRows(nil))
}

func TestStudentsFromRecordsNumericises(t *testing.T) {
	students := studentsFromRecords([]map[string]string{
		{"student_id": "007", "first_name": "Ana", "class_year": "2026"},
		{"student_id": "S-1"},
	})
	require.Len(t, students, 2)
	assert.Equal(t, models.CellInteger, students[0].StudentID.Kind)
	assert.Equal(t, "7", students[0].StudentID.String())
	assert.Equal(t, "2026", students[0].ClassYear.String())
	assert.Equal(t, models.CellText, students[1].StudentID.Kind)
	assert.Equal(t, "", students[1].Team.String())
}

func TestSkipHeader(t *testing.T) {
	assert.Equal(t, []string{}, skipHeader(nil))
	assert.Equal(t, []string{}, skipHeader([]string{"student_id"}))
	assert.Equal(t, []string{"1", "2"}, skipHeader([]string{"student_id", "1", "2"}))
}

func TestLayoutColumnDefault(t *testing.T) {
	assert.Equal(t, 2, Layout{}.column())
	assert.Equal(t, 3, Layout{ScanLogColumn: 3}.column())
}
