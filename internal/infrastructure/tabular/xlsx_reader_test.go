package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, records [][]interface{}) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	if sheet != "Sheet1" {
		_, err := wb.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, wb.DeleteSheet("Sheet1"))
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &record))
	}

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXReader_Read(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Store Name", "Name", "Price", "Stock"},
		{"Shop1", "Widget", "10.50", 5},
		{"Shop1", "Gadget", "3.00", 0},
	})

	rows, err := NewXLSXReader().Read(buf, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "Shop1", rows[0].Get("store name"))
	assert.Equal(t, "Widget", rows[0].Get("name"))
	assert.Equal(t, "5", rows[0].Get("stock"))
}

func TestXLSXReader_NamedSheet(t *testing.T) {
	buf := buildWorkbook(t, "Products", [][]interface{}{
		{"name", "price"},
		{"Widget", "5"},
	})

	rows, err := NewXLSXReader().Read(buf, "Products")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Widget", rows[0].Get("name"))
}

func TestXLSXReader_SheetNotFound(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"name"},
		{"Widget"},
	})

	_, err := NewXLSXReader().Read(buf, "Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestXLSXReader_ParseDispatch(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"name", "price"},
		{"Widget", "5"},
	})

	rows, err := Parse(buf, "products.xlsx", Options{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestErrorCollection(t *testing.T) {
	ec := NewErrorCollection(2)
	assert.False(t, ec.HasErrors())

	ec.AddRequiredError(2, "name")
	ec.AddTypeError(3, "price", "positive number", "abc")
	ec.Add(NewRowError(4, "", ErrCodePersistence, "save failed"))

	assert.True(t, ec.HasErrors())
	assert.Equal(t, 3, ec.TotalCount())
	assert.Len(t, ec.Errors(), 2)
	assert.True(t, ec.IsTruncated())
	assert.Contains(t, ec.Messages()[0], "row 2, column 'name'")
	assert.Contains(t, ec.String(), "3 error(s) found")
}
