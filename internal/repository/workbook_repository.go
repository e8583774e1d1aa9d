package repository

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
)

// WorkbookRepository reads the roster and scan log from a local .xlsx file with the
// same tabs as the hosted spreadsheet. The file is reopened on every read.
type WorkbookRepository struct {
	path   string
	layout Layout
}

// NewWorkbookRepository constructs a WorkbookRepository.
func NewWorkbookRepository(path string, layout Layout) *WorkbookRepository {
	return &WorkbookRepository{path: path, layout: layout}
}

// Source identifies the workbook for cache keys.
func (r *WorkbookRepository) Source() string {
	return "workbook:" + r.path
}

// Roster returns every roster row in sheet order.
func (r *WorkbookRepository) Roster(ctx context.Context) ([]models.StudentRecord, error) {
	rows, err := r.rows(ctx, r.layout.StudentTab)
	if err != nil {
		return nil, err
	}
	return studentsFromRecords(recordsFromRows(rows)), nil
}

// ScanLog returns the identifier column of the scan log without its header.
func (r *WorkbookRepository) ScanLog(ctx context.Context) ([]string, error) {
	rows, err := r.rows(ctx, r.layout.ScanLogTab)
	if err != nil {
		return nil, err
	}
	idx := r.layout.column() - 1
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return skipHeader(values), nil
}

func (r *WorkbookRepository) rows(ctx context.Context, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("worksheet %q not found in %s", sheet, r.path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheet, err)
	}
	return rows, nil
}
