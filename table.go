package rowcodec

import (
	"github.com/arloliu/rowcodec/column"
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/internal/options"
	"github.com/arloliu/rowcodec/rowbuffer"
)

// TableConfig collects the defaults a Table applies to any column added to
// it that leaves the corresponding field at its zero value.
type TableConfig struct {
	DefaultSort format.SortOption
	MaxDictSize int
}

// TableOption configures a Table at construction time.
type TableOption = options.Option[*TableConfig]

// WithDefaultSort sets the sort direction columns fall back to when they
// don't specify their own.
func WithDefaultSort(s format.SortOption) TableOption {
	return options.NoError(func(c *TableConfig) { c.DefaultSort = s })
}

// WithMaxDictSize sets the dictionary column size bound columns fall back to
// when they leave MaxDictSize unset (0 means unbounded).
func WithMaxDictSize(n int) TableOption {
	return options.New(func(c *TableConfig) error {
		if n < 0 {
			return &InvalidMaxDictSizeError{MaxDictSize: n}
		}

		c.MaxDictSize = n

		return nil
	})
}

// Table bundles the columns of one row set and applies its configured
// defaults to each as it's added, so a caller encoding many same-shaped
// columns doesn't have to repeat a sort direction or dictionary bound on
// every one.
type Table struct {
	cfg  TableConfig
	cols []column.EncodeColumn
}

// NewTable creates an empty Table configured by opts.
func NewTable(opts ...TableOption) (*Table, error) {
	var cfg TableConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Table{cfg: cfg}, nil
}

// AddColumn appends col to the table, filling in the table's default sort
// direction and (for Dictionary columns) its default max dictionary size
// wherever col left them at the zero value.
func (t *Table) AddColumn(col column.EncodeColumn) {
	if col.Sort == (format.SortOption{}) {
		col.Sort = t.cfg.DefaultSort
	}

	if col.Kind == column.Dictionary && col.MaxDictSize == 0 {
		col.MaxDictSize = t.cfg.MaxDictSize
	}

	t.cols = append(t.cols, col)
}

// Encode lays out every added column's rowCount rows into a fresh
// rowbuffer.Buffer, in the order columns were added.
func (t *Table) Encode(rowCount int) (*rowbuffer.Buffer, error) {
	return column.EncodeRows(rowCount, t.cols)
}
