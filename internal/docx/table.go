package docx

// Table is a rectangular grid of single-paragraph cells.
type Table struct {
	style string
	cols  int
	rows  []*TableRow
}

func (t *Table) isBlock() {}

// NewTable creates a table with the given number of columns.
func NewTable(cols int) *Table {
	if cols < 1 {
		cols = 1
	}
	return &Table{cols: cols}
}

// SetStyle records the named table style.
func (t *Table) SetStyle(name string) { t.style = name }

// Style returns the recorded table style name.
func (t *Table) Style() string { return t.style }

// Cols returns the column count.
func (t *Table) Cols() int { return t.cols }

// Rows returns the table rows in order.
func (t *Table) Rows() []*TableRow { return t.rows }

// AddRow appends a row with one cell per column.
func (t *Table) AddRow() *TableRow {
	row := &TableRow{}
	for i := 0; i < t.cols; i++ {
		row.cells = append(row.cells, &TableCell{para: &Paragraph{}})
	}
	t.rows = append(t.rows, row)
	return row
}

// TableRow is one row of cells.
type TableRow struct {
	cells []*TableCell
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell { return r.cells }

// TableCell holds a single paragraph.
type TableCell struct {
	para *Paragraph
}

// Paragraph returns the cell's paragraph.
func (c *TableCell) Paragraph() *Paragraph { return c.para }
