package projection

import "github.com/leengari/reltable/internal/domain/schema"

// ValidateProjection checks if all columns in the projection exist in the table schema
// Returns a ColumnNotFoundError for the first missing column
func ValidateProjection(table *schema.Table, proj *Projection) error {
	if proj == nil || proj.SelectAll {
		return nil
	}
	_, err := resolve(table, proj)
	return err
}

// resolve maps every projected column to its position in table
func resolve(table *schema.Table, proj *Projection) ([]int, error) {
	indices := make([]int, len(proj.Columns))
	for i, colRef := range proj.Columns {
		idx, err := table.ColumnIndex(colRef.Column)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}
