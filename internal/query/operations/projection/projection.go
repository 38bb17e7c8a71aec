package projection

// ColumnRef names one output column of a projection
type ColumnRef struct {
	Column string // Source column name (e.g., "PartNo")
	Alias  string // Optional output name (e.g., "Part" for "PartNo AS Part")
}

// OutputName returns the alias if set, otherwise the source column name
func (c ColumnRef) OutputName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Column
}

// Projection represents which columns to keep from a table
// If SelectAll is true, all columns are returned unchanged
// Otherwise, only columns in Columns are returned, in that order
type Projection struct {
	Columns   []ColumnRef
	SelectAll bool
}

// NewProjection creates a new projection for selecting all columns
func NewProjection() *Projection {
	return &Projection{
		SelectAll: true,
		Columns:   []ColumnRef{},
	}
}

// NewProjectionWithColumns creates a projection for specific columns
func NewProjectionWithColumns(columns ...ColumnRef) *Projection {
	return &Projection{
		SelectAll: false,
		Columns:   columns,
	}
}

// FromNames creates a projection keeping the named columns in order
// Duplicate names are kept as requested
func FromNames(names ...string) *Projection {
	p := &Projection{Columns: make([]ColumnRef, 0, len(names))}
	for _, name := range names {
		p.AddColumn(name, "")
	}
	return p
}

// AddColumn adds a column to the projection
func (p *Projection) AddColumn(column, alias string) {
	p.Columns = append(p.Columns, ColumnRef{
		Column: column,
		Alias:  alias,
	})
	p.SelectAll = false
}
