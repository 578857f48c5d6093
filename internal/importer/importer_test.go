package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cutlist.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "name,length,width\nA,10,20\n", ','},
		{"semicolon", "name;length;width\nA;10;20\n", ';'},
		{"tab", "name\tlength\twidth\nA\t10\t20\n", '\t'},
		{"pipe", "name|length|width\nA|10|20\n", '|'},
		{"single column defaults to comma", "justonecolumn\nvalue\n", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestDetectColumns_EnglishHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Name", "Length", "Width", "Qty", "Length Lock", "Width Lock"})

	require.True(t, ok)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Quantity)
	assert.Equal(t, 4, mapping.LengthLock)
	assert.Equal(t, 5, mapping.WidthLock)
}

func TestDetectColumns_ArabicHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"الاسم", "الطول", "العرض", "الكمية", "شرط طول", "شرط عرض"})

	require.True(t, ok)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Quantity)
	assert.Equal(t, 4, mapping.LengthLock)
	assert.Equal(t, 5, mapping.WidthLock)
}

func TestDetectColumns_ShuffledHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Qty", "Width", "Length", "Name"})

	require.True(t, ok)
	assert.Equal(t, 3, mapping.Name)
	assert.Equal(t, 2, mapping.Length)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 0, mapping.Quantity)
	assert.Equal(t, -1, mapping.LengthLock)
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Side Panel", "59.3", "114", "2"})

	assert.False(t, ok)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Quantity)
}

func TestParseLockFlag(t *testing.T) {
	for _, s := range []string{"1", "true", "YES", "y", "نعم"} {
		v, ok := parseLockFlag(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"", "0", "false", "NO", "n", "-", "لا"} {
		v, ok := parseLockFlag(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	_, ok := parseLockFlag("maybe")
	assert.False(t, ok)
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"Name,Length,Width,Qty,Length Lock,Width Lock",
		"Side Panel,59.3,114,1,,",
		"Back Panel,77.5,114,2,1,",
		"Shelf,130,50,3,,yes",
	}, "\n"))

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 3)

	assert.Equal(t, "Side Panel", result.Requests[0].Name)
	assert.Equal(t, 59.3, result.Requests[0].Length)
	assert.Equal(t, 114.0, result.Requests[0].Width)
	assert.Equal(t, 1, result.Requests[0].Quantity)
	assert.False(t, result.Requests[0].Locked())

	assert.True(t, result.Requests[1].LengthLocked)
	assert.False(t, result.Requests[1].WidthLocked)

	assert.False(t, result.Requests[2].LengthLocked)
	assert.True(t, result.Requests[2].WidthLocked)
}

func TestImportCSV_ArabicHeader(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"الاسم,الطول,العرض,الكمية,شرط طول,شرط عرض",
		"رف جانبي,59.3,114,2,نعم,لا",
	}, "\n"))

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "رف جانبي", result.Requests[0].Name)
	assert.True(t, result.Requests[0].LengthLocked)
	assert.False(t, result.Requests[0].WidthLocked)
}

func TestImportCSV_SemicolonDelimiter(t *testing.T) {
	path := writeTempCSV(t, "Name;Length;Width;Qty\nPanel;100;60;2\n")

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, 100.0, result.Requests[0].Length)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	assert.True(t, found, "expected a delimiter warning, got %v", result.Warnings)
}

func TestImportCSV_NoHeader(t *testing.T) {
	path := writeTempCSV(t, "Panel,100,60,2\nShelf,50,30,1\n")

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 2)
	assert.Equal(t, "Panel", result.Requests[0].Name)
	assert.Equal(t, "Shelf", result.Requests[1].Name)
}

func TestImportCSV_RowErrors(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"Name,Length,Width,Qty",
		"Good,100,60,2",
		"NoLength,,60,2",
		"BadWidth,100,abc,2",
		"NegativeQty,100,60,-1",
	}, "\n"))

	result := ImportCSV(path)

	require.Len(t, result.Requests, 1)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Missing length")
	assert.Contains(t, result.Errors[1], "Invalid width 'abc'")
	assert.Contains(t, result.Errors[2], "non-negative")
}

func TestImportCSV_UnknownLockWarns(t *testing.T) {
	path := writeTempCSV(t, "Name,Length,Width,Qty,Length Lock\nPanel,100,60,2,maybe\n")

	result := ImportCSV(path)

	require.Len(t, result.Requests, 1)
	assert.False(t, result.Requests[0].LengthLocked)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown length lock value 'maybe'") {
			found = true
		}
	}
	assert.True(t, found, "expected a lock warning, got %v", result.Warnings)
}

func TestImportCSV_SkipsEmptyRows(t *testing.T) {
	path := writeTempCSV(t, "Name,Length,Width,Qty\nPanel,100,60,2\n,,,\n\nShelf,50,30,1\n")

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	assert.Len(t, result.Requests, 2)
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	result := ImportCSV(path)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Cannot open file")
}

func TestImportCSV_MissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "Name,Length,Qty\nPanel,100,2\n")

	result := ImportCSV(path)

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Width")
}

func writeTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "cutlist.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportExcel(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"Name", "Length", "Width", "Qty", "Length Lock", "Width Lock"},
		{"Side Panel", 59.3, 114, 1, "", ""},
		{"Back Panel", 77.5, 114, 2, "yes", ""},
	})

	result := ImportExcel(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 2)
	assert.Equal(t, "Side Panel", result.Requests[0].Name)
	assert.Equal(t, 59.3, result.Requests[0].Length)
	assert.True(t, result.Requests[1].LengthLocked)
}

func TestImportExcel_NotAnExcelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not an xlsx"), 0644))

	result := ImportExcel(path)

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Cannot open Excel file")
}

func TestImportFile_Dispatch(t *testing.T) {
	csvPath := writeTempCSV(t, "Name,Length,Width,Qty\nPanel,100,60,2\n")
	result := ImportFile(csvPath)
	assert.Empty(t, result.Errors)

	result = ImportFile("cutlist.pdf")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Unsupported file type")
}

func TestImportCSVFromReader(t *testing.T) {
	data := "Name;Length;Width;Qty\nPanel;100;60;2\n"

	result := ImportCSVFromReader(strings.NewReader(data), ';')

	require.Empty(t, result.Errors)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "Panel", result.Requests[0].Name)
}
