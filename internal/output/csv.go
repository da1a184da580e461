package output

import (
	"bytes"
	"encoding/csv"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// CSVFormatter writes one CSV record per month with a header row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(p *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	cols := rowColumns(p)
	if err := w.Write(headers(cols)); err != nil {
		return nil, err
	}
	for i := 0; i < p.Len(); i++ {
		if err := w.Write(cells(cols, i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
