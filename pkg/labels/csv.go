package labels

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"github.com/agentstation/labelkit/pkg/errors"
)

// ReadCSV reads a table whose first record holds the column labels. Cells
// are kept as the exact text found in the file, so writing the table back
// reproduces its data rows byte for byte.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", "", "missing header record", err)
	}
	if err != nil {
		return nil, csvError(err)
	}

	values := make([][]any, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		for i, cell := range record {
			values[i] = append(values[i], cell)
		}
	}

	columns := make([]Column, len(header))
	for i, label := range header {
		columns[i] = Column{Label: label, Values: values[i]}
	}
	return NewTable(columns...)
}

// WriteCSV writes the column labels followed by Records.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return errors.WrapIO("write", t.Name, err)
	}
	if err := writer.WriteAll(t.Records()); err != nil {
		return errors.WrapIO("write", t.Name, err)
	}
	return nil
}

// LoadTableFile reads a CSV file. The table is named after the file without
// its extension.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewNotFoundError("file", path)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		var parseErr *errors.ParseError
		if stderrors.As(err, &parseErr) {
			parseErr.File = path
		}
		return nil, err
	}
	t.Name = TrimExtension(path)
	return t, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return &errors.ParseError{Format: "csv", Line: pe.Line, Message: pe.Err.Error(), Err: err}
	}
	return errors.WrapParse("csv", "", err)
}
