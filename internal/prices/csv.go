package prices

import (
	"encoding/csv"
	"io"
	"strings"

	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
)

// ReadCSVRows decodes an uploaded CSV into header-keyed rows. The first line
// names the columns; values are trimmed and fully blank lines are dropped.
func ReadCSVRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Retail exports occasionally pad short rows; tolerate ragged input
	// rather than rejecting the file.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid csv header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid csv row")
		}

		row := Row{}
		empty := true
		for i, value := range record {
			if i >= len(header) {
				break
			}
			value = strings.TrimSpace(value)
			if value != "" {
				empty = false
			}
			row[header[i]] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
