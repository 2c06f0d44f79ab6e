// Package xlsx encodes results as Excel workbooks.
package xlsx

import (
	"fmt"

	"github.com/fwojciec/feedtab"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the name of the worksheet holding the records.
const DefaultSheet = "Sheet1"

// Ensure Encoder implements feedtab.ResultEncoder at compile time.
var _ feedtab.ResultEncoder = (*Encoder)(nil)

// Encoder writes a result to a single-sheet workbook: one header row with
// the mode's column names followed by one row per record.
type Encoder struct {
	sheet string
}

// NewEncoder creates an Encoder that writes to DefaultSheet.
func NewEncoder() *Encoder {
	return &Encoder{sheet: DefaultSheet}
}

// NewEncoderWithSheet creates an Encoder that writes to the named sheet.
func NewEncoderWithSheet(sheet string) *Encoder {
	return &Encoder{sheet: sheet}
}

// Encode returns the workbook bytes of res using a default Encoder.
func Encode(res *feedtab.Result) ([]byte, error) {
	return NewEncoder().EncodeResult(res)
}

// EncodeResult returns the workbook bytes of res.
func (e *Encoder) EncodeResult(res *feedtab.Result) ([]byte, error) {
	if res == nil {
		return nil, feedtab.Errorf(feedtab.EINVALID, "result required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if first := f.GetSheetName(0); first != e.sheet {
		if err := f.SetSheetName(first, e.sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(e.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	cols := res.Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range res.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
