package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Roster column headers.
const (
	ColumnStudentID = "student_id"
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnClassYear = "class_year"
	ColumnTeam      = "team"
)

// StudentRecord is one roster row.
type StudentRecord struct {
	StudentID Cell `json:"student_id"`
	FirstName Cell `json:"first_name"`
	LastName  Cell `json:"last_name"`
	ClassYear Cell `json:"class_year"`
	Team      Cell `json:"team"`
}

// StudentFromRecord maps a header-keyed row onto a StudentRecord. Absent columns are empty.
func StudentFromRecord(record map[string]Cell) StudentRecord {
	return StudentRecord{
		StudentID: record[ColumnStudentID],
		FirstName: record[ColumnFirstName],
		LastName:  record[ColumnLastName],
		ClassYear: record[ColumnClassYear],
		Team:      record[ColumnTeam],
	}
}

// FullName joins first and last name with a single space, trimming the result.
func (s StudentRecord) FullName() string {
	return strings.TrimSpace(s.FirstName.String() + " " + s.LastName.String())
}

// MalformedIDError reports a stored identifier that is neither an exact match nor numeric.
type MalformedIDError struct {
	Value string
	Err   error
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("could not convert student_id %q to a number: %v", e.Value, e.Err)
}

func (e *MalformedIDError) Unwrap() error { return e.Err }

// MatchesStudentID applies the two-stage identifier comparison:
//  1. the stored value, rendered and trimmed, equals id;
//  2. otherwise the stored value parsed as a float and truncated renders as id.
//
// Stage two fails with *MalformedIDError when the stored value is not numeric.
func MatchesStudentID(stored Cell, id string) (bool, error) {
	if strings.TrimSpace(stored.String()) == id {
		return true, nil
	}
	f, err := stored.Float()
	if err != nil {
		return false, &MalformedIDError{Value: stored.String(), Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false, &MalformedIDError{Value: stored.String(), Err: strconv.ErrRange}
	}
	truncated := math.Trunc(f)
	if truncated == 0 {
		truncated = 0 // collapse -0
	}
	return strconv.FormatFloat(truncated, 'f', 0, 64) == id, nil
}

// FindStudent returns the first roster row matching id, in table order.
func FindStudent(roster []StudentRecord, id string) (StudentRecord, bool, error) {
	for i, student := range roster {
		ok, err := MatchesStudentID(student.StudentID, id)
		if err != nil {
			return StudentRecord{}, false, fmt.Errorf("roster row %d: %w", i+2, err)
		}
		if ok {
			return student, true, nil
		}
	}
	return StudentRecord{}, false, nil
}

// CountScans counts log values exactly equal to id. No trimming or numeric
// normalisation is applied, unlike MatchesStudentID.
func CountScans(logIDs []string, id string) int {
	count := 0
	for _, v := range logIDs {
		if v == id {
			count++
		}
	}
	return count
}
