// Package sheets reads Google Sheets worksheets as header-keyed records and single columns.
package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMIME = "application/vnd.google-apps.spreadsheet"

// Scopes are the read-only scopes the client needs.
var Scopes = []string{sheets.SpreadsheetsReadonlyScope, drive.DriveMetadataReadonlyScope}

var (
	ErrNoCredentials       = errors.New("service account credentials are empty")
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
)

// Client opens spreadsheets by name or ID.
type Client struct {
	values *sheets.SpreadsheetsValuesService
	files  *drive.FilesService
}

// New authorises a client from a service-account JSON key.
func New(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	if len(bytes.TrimSpace(credentialsJSON)) == 0 {
		return nil, ErrNoCredentials
	}
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	sheetsSvc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("init drive service: %w", err)
	}
	return NewFromServices(sheetsSvc, driveSvc), nil
}

// NewFromServices wraps already-constructed API services.
func NewFromServices(sheetsSvc *sheets.Service, driveSvc *drive.Service) *Client {
	c := &Client{}
	if sheetsSvc != nil {
		c.values = sheetsSvc.Spreadsheets.Values
	}
	if driveSvc != nil {
		c.files = driveSvc.Files
	}
	return c
}

// Open resolves a spreadsheet by its title.
func (c *Client) Open(ctx context.Context, name string) (*Spreadsheet, error) {
	if c.files == nil {
		return nil, errors.New("drive service not configured")
	}
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), spreadsheetMIME)
	list, err := c.files.List().
		Q(q).
		Fields("files(id,name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("find spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, name)
	}
	return &Spreadsheet{client: c, ID: list.Files[0].Id, Title: list.Files[0].Name}, nil
}

// OpenByID returns a handle without contacting the API.
func (c *Client) OpenByID(id string) *Spreadsheet {
	return &Spreadsheet{client: c, ID: id, Title: id}
}

// Spreadsheet is an opened document.
type Spreadsheet struct {
	client *Client
	ID     string
	Title  string
}

// Worksheet selects a tab by title.
func (s *Spreadsheet) Worksheet(title string) *Worksheet {
	return &Worksheet{spreadsheet: s, Title: title}
}

// Worksheet is a single tab of a spreadsheet.
type Worksheet struct {
	spreadsheet *Spreadsheet
	Title       string
}

// AllRecords reads every row below the header as a map keyed by header text.
// Short rows are padded with empty strings.
func (w *Worksheet) AllRecords(ctx context.Context) ([]map[string]string, error) {
	values := w.spreadsheet.client.values
	if values == nil {
		return nil, errors.New("sheets service not configured")
	}
	resp, err := values.Get(w.spreadsheet.ID, quoteTitle(w.Title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", w.Title, err)
	}
	if len(resp.Values) == 0 {
		return []map[string]string{}, nil
	}

	headers := toStrings(resp.Values[0])
	seen := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("worksheet %q has duplicate header %q", w.Title, h)
		}
		seen[h] = struct{}{}
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		cells := toStrings(row)
		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				record[h] = cells[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// ColumnValues reads one 1-indexed column top to bottom, header included.
func (w *Worksheet) ColumnValues(ctx context.Context, column int) ([]string, error) {
	values := w.spreadsheet.client.values
	if values == nil {
		return nil, errors.New("sheets service not configured")
	}
	if column < 1 {
		return nil, fmt.Errorf("invalid column %d", column)
	}
	letter := ColumnLetter(column)
	rng := fmt.Sprintf("%s!%s:%s", quoteTitle(w.Title), letter, letter)
	resp, err := values.Get(w.spreadsheet.ID, rng).MajorDimension("COLUMNS").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read column %s of %q: %w", letter, w.Title, err)
	}
	if len(resp.Values) == 0 {
		return []string{}, nil
	}
	return toStrings(resp.Values[0]), nil
}

// ColumnLetter converts a 1-indexed column number to A1 notation.
func ColumnLetter(column int) string {
	var b []byte
	for column > 0 {
		column--
		b = append([]byte{byte('A' + column%26)}, b...)
		column /= 26
	}
	return string(b)
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = t
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(t)
		}
	}
	return out
}
