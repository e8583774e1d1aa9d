package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesStudentID(t *testing.T) {
	cases := []struct {
		name   string
		stored Cell
		id     string
		want   bool
	}{
		{"numeric 007 matches 7", ParseCell("007"), "7", true},
		{"numeric 007 does not match 007", ParseCell("007"), "007", false},
		{"text trimmed", TextCell(" 42 "), "42", true},
		{"float truncated", ParseCell("42.9"), "42", true},
		{"float literal", ParseCell("42.0"), "42.0", true},
		{"float against integer id", ParseCell("42.0"), "42", true},
		{"text short-circuits numeric stage", TextCell("S-100"), "S-100", true},
		{"negative fraction", ParseCell("-0.5"), "0", true},
		{"different number", NumberCell(41), "42", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MatchesStudentID(tc.stored, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchesStudentIDMalformed(t *testing.T) {
	for _, stored := range []Cell{TextCell("S-100"), {}, ParseCell("nan"), ParseCell("inf")} {
		_, err := MatchesStudentID(stored, "42")
		var malformed *MalformedIDError
		assert.True(t, errors.As(err, &malformed), stored.String())
	}
}

func TestFindStudentFirstMatchWins(t *testing.T) {
	roster := []StudentRecord{
		{StudentID: NumberCell(1), FirstName: TextCell("One")},
		{StudentID: NumberCell(7), FirstName: TextCell("First")},
		{StudentID: TextCell("7"), FirstName: TextCell("Second")},
	}
	student, ok, err := FindStudent(roster, "7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "First", student.FirstName.String())

	_, ok, err = FindStudent(roster, "8")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindStudentStopsOnMalformedRow(t *testing.T) {
	roster := []StudentRecord{
		{StudentID: TextCell("unknown")},
		{StudentID: NumberCell(7)},
	}
	_, _, err := FindStudent(roster, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster row 2")

	student, ok, err := FindStudent([]StudentRecord{{StudentID: NumberCell(7)}, {StudentID: TextCell("unknown")}}, "7")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", student.StudentID.String())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Lee", StudentRecord{LastName: TextCell("Lee")}.FullName())
	assert.Equal(t, "Ana", StudentRecord{FirstName: TextCell("Ana")}.FullName())
	assert.Equal(t, "", StudentRecord{}.FullName())
	assert.Equal(t, "A B", StudentRecord{FirstName: TextCell("A"), LastName: TextCell("B")}.FullName())
}

func TestCountScansIsLiteral(t *testing.T) {
	log := []string{"42", " 42", "42.0", "042", "42", ""}
	assert.Equal(t, 2, CountScans(log, "42"))
	assert.Equal(t, 0, CountScans(nil, "42"))
}

func TestLookupComparisonsAreNotConflated(t *testing.T) {
	matched, err := MatchesStudentID(ParseCell("007"), "7")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 0, CountScans([]string{"007", "007"}, "7"))
}
