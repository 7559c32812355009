package objects

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// Table is an in-memory columnar table. Cell values are kept as any and
// rendered with their natural string form on encode.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func (t *Table) Kind() registry.Kind       { return registry.KindTable }
func (t *Table) Class() fmuresults.Class   { return fmuresults.ClassTable }
func (t *Table) Layout() fmuresults.Layout { return fmuresults.LayoutTable }
func (t *Table) ObjectName() string        { return t.Name }
func (t *Table) ColumnNames() []string     { return t.Columns }

func (t *Table) SpecBlock() any {
	return fmuresults.TableSpec{
		Columns: t.Columns,
		Size:    len(t.Rows) * len(t.Columns),
	}
}

// EncodeTo writes the table in the requested format. Only csv is built in;
// parquet and hdf need an injected writer.
func (t *Table) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatCSV {
		return fmt.Errorf("%w: %q for table", ErrNoEncoder, format)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Columns))
		}
		for i, cell := range row {
			record[i] = cellString(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case bool:
		return strconv.FormatBool(c)
	}
	return fmt.Sprint(v)
}
