package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind describes how a spreadsheet value was represented by the store.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellInteger
	CellFloat
)

// Cell is a single tabular value. Numbers keep their parsed form so identifier
// comparisons can see the same representation the store reported.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Number float64  `json:"number,omitempty"`
}

// TextCell builds a cell holding the literal text.
func TextCell(text string) Cell {
	if text == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: text}
}

// NumberCell builds a numeric cell, marking whole values as integers.
func NumberCell(n float64) Cell {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1<<53 {
		return Cell{Kind: CellInteger, Number: n}
	}
	return Cell{Kind: CellFloat, Number: n}
}

// ParseCell numericises a formatted value: integers first, then floats, then text.
// Blank values become empty cells.
func ParseCell(raw string) Cell {
	if raw == "" {
		return Cell{Kind: CellEmpty}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.Contains(trimmed, "_") {
		return TextCell(raw)
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Cell{Kind: CellInteger, Number: float64(i)}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellFloat, Number: f}
	}
	return TextCell(raw)
}

// String renders the cell the way it is displayed in a response.
func (c Cell) String() string {
	switch c.Kind {
	case CellInteger:
		return strconv.FormatFloat(c.Number, 'f', 0, 64)
	case CellFloat:
		return formatFloat(c.Number)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Float converts the cell to a number, failing for blank or non-numeric text.
func (c Cell) Float() (float64, error) {
	switch c.Kind {
	case CellInteger, CellFloat:
		return c.Number, nil
	default:
		return strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
	}
}

func formatFloat(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
