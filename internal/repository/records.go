package repository

import "github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"

// Layout names the roster and scan-log tabs and the log's identifier column.
type Layout struct {
	StudentTab    string
	ScanLogTab    string
	ScanLogColumn int
}

func (l Layout) column() int {
	if l.ScanLogColumn < 1 {
		return 2
	}
	return l.ScanLogColumn
}

func studentsFromRecords(records []map[string]string) []models.StudentRecord {
	students := make([]models.StudentRecord, 0, len(records))
	for _, record := range records {
		cells := make(map[string]models.Cell, len(record))
		for header, value := range record {
			cells[header] = models.ParseCell(value)
		}
		students = append(students, models.StudentFromRecord(cells))
	}
	return students
}

// recordsFromRows treats the first row as the header and pads short rows.
func recordsFromRows(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}
	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

// skipHeader drops the first value of a column read.
func skipHeader(values []string) []string {
	if len(values) <= 1 {
		return []string{}
	}
	return values[1:]
}
