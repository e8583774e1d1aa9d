package dto

// LookupRequest carries the trimmed identifier of a student lookup.
type LookupRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// LookupResult is the response of GET /api/student.
type LookupResult struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	ClassYear string `json:"class_year"`
	Team      string `json:"team"`
	ScanCount int    `json:"scan_count"`
	Tier      string `json:"tier"`
	Color     string `json:"color"`
}
