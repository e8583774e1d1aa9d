package repository

import (
	"context"
	"sync"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/models"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/sheets"
)

// SheetsRepository reads the roster and scan log from a Google spreadsheet.
type SheetsRepository struct {
	client *sheets.Client
	name   string
	layout Layout

	mu sync.Mutex
	id string
}

// NewSheetsRepository constructs a SheetsRepository. When spreadsheetID is empty the
// spreadsheet is resolved by name on first use.
func NewSheetsRepository(client *sheets.Client, name, spreadsheetID string, layout Layout) *SheetsRepository {
	return &SheetsRepository{client: client, name: name, id: spreadsheetID, layout: layout}
}

// Source identifies the spreadsheet for cache keys.
func (r *SheetsRepository) Source() string {
	return "sheets:" + r.name
}

// Roster returns every roster row in sheet order.
func (r *SheetsRepository) Roster(ctx context.Context) ([]models.StudentRecord, error) {
	doc, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	records, err := doc.Worksheet(r.layout.StudentTab).AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return studentsFromRecords(records), nil
}

// ScanLog returns the identifier column of the scan log without its header.
func (r *SheetsRepository) ScanLog(ctx context.Context) ([]string, error) {
	doc, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	values, err := doc.Worksheet(r.layout.ScanLogTab).ColumnValues(ctx, r.layout.column())
	if err != nil {
		return nil, err
	}
	return skipHeader(values), nil
}

func (r *SheetsRepository) open(ctx context.Context) (*sheets.Spreadsheet, error) {
	r.mu.Lock()
	id := r.id
	r.mu.Unlock()
	if id != "" {
		return r.client.OpenByID(id), nil
	}

	doc, err := r.client.Open(ctx, r.name)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.id = doc.ID
	r.mu.Unlock()
	return doc, nil
}
