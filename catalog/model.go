package catalog

// Table is one source table in canonical form. Name is the compact
// "schema.table" identifier; Columns keep the order the source catalog
// reported them in.
type Table struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Columns     []Column        `json:"columns"`
	Properties  TableProperties `json:"properties"`
	// PrimaryKey is the primary key column name, or "" when unknown.
	PrimaryKey string `json:"primaryKey"`
}

// Column is one column of a Table. No two columns in a table share a name.
type Column struct {
	Name        string            `json:"name"`
	Type        ColumnType        `json:"type"`
	NotNull     bool              `json:"notNull"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// TableProperties records where the table came from. Catalog stays empty
// for sources that have no catalog concept.
type TableProperties struct {
	Catalog string `json:"catalog,omitempty"`
	Schema  string `json:"schema"`
	Table   string `json:"table"`
}

// ConstraintType classifies a Constraint.
type ConstraintType string

const (
	ConstraintForeignKey ConstraintType = "FOREIGN KEY"
)

// Constraint describes a relational constraint between two tables. Table
// names are in compact form. Sources without constraint introspection
// return an empty slice of these.
type Constraint struct {
	Name             string         `json:"name"`
	Type             ConstraintType `json:"type"`
	Table            string         `json:"table"`
	Column           string         `json:"column"`
	ReferencedTable  string         `json:"referencedTable"`
	ReferencedColumn string         `json:"referencedColumn"`
}
