// Package importer reads cut lists from CSV and Excel files. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition in English and Arabic.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"woodcut/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Requests []model.PieceRequest
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name       int
	Length     int
	Width      int
	Quantity   int
	LengthLock int
	WidthLock  int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase). The Arabic aliases match the cut-list sheets the
// service was built for.
var headerAliases = map[string][]string{
	"name":       {"name", "label", "part", "piece", "item", "description", "desc", "الاسم"},
	"length":     {"length", "len", "l", "الطول"},
	"width":      {"width", "w", "العرض"},
	"quantity":   {"quantity", "qty", "count", "num", "pcs", "pieces", "الكمية"},
	"lengthlock": {"length lock", "length_lock", "lock length", "length constraint", "شرط طول", "شريط طول"},
	"widthlock":  {"width lock", "width_lock", "lock width", "width constraint", "شرط عرض", "شريط عرض"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:       -1,
		Length:     -1,
		Width:      -1,
		Quantity:   -1,
		LengthLock: -1,
		WidthLock:  -1,
	}

	assign := func(dst *int, i int) {
		if *dst == -1 {
			*dst = i
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						assign(&mapping.Name, i)
					case "length":
						assign(&mapping.Length, i)
					case "width":
						assign(&mapping.Width, i)
					case "quantity":
						assign(&mapping.Quantity, i)
					case "lengthlock":
						assign(&mapping.LengthLock, i)
					case "widthlock":
						assign(&mapping.WidthLock, i)
					}
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: Name, Length, Width, Quantity, LengthLock, WidthLock
		return ColumnMapping{
			Name:       0,
			Length:     1,
			Width:      2,
			Quantity:   3,
			LengthLock: 4,
			WidthLock:  5,
		}, false
	}

	return mapping, true
}

// parseLockFlag converts a lock-flag cell to a boolean. Returns the value
// and whether the string was recognized.
func parseLockFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "نعم":
		return true, true
	case "", "0", "false", "no", "n", "-", "لا":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a PieceRequest from a row using the given column
// mapping. Returns the request, any error message, and any warning.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.PieceRequest, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Piece %d", count+1)
	}

	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return model.PieceRequest{}, fmt.Sprintf("%s: Missing length value", rowLabel), ""
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return model.PieceRequest{}, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, lengthStr), ""
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.PieceRequest{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.PieceRequest{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.PieceRequest{}, fmt.Sprintf("%s: Missing quantity value", rowLabel), ""
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.PieceRequest{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
	}

	if length <= 0 || width <= 0 || qty < 0 {
		return model.PieceRequest{}, fmt.Sprintf("%s: Length and width must be positive and quantity non-negative", rowLabel), ""
	}

	req := model.NewPieceRequest(name, length, width, qty)

	var warnings []string
	if s := getCell(row, mapping.LengthLock); s != "" {
		v, ok := parseLockFlag(s)
		if ok {
			req.LengthLocked = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown length lock value '%s', defaulting to unlocked", rowLabel, s))
		}
	}
	if s := getCell(row, mapping.WidthLock); s != "" {
		v, ok := parseLockFlag(s)
		if ok {
			req.WidthLocked = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown width lock value '%s', defaulting to unlocked", rowLabel, s))
		}
	}

	return req, "", strings.Join(warnings, "; ")
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports piece requests from a CSV file. It automatically
// detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports piece requests from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports piece requests from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		return ImportExcel(path)
	case strings.HasSuffix(lower, ".csv"):
		return ImportCSV(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type: %s", path)}}
	}
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// No recognized header: if the first row is not numeric it is
		// probably an unrecognized header, so skip it but keep the
		// positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		req, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Requests))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Requests = append(result.Requests, req)
	}

	return result
}
