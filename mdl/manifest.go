package mdl

// Manifest describes a semantic model in the shape the engine expects. The
// engine owns the JSON schema; this side only carries it across the
// boundary. Field order here fixes the JSON serialization order, which
// keeps EncodeManifest deterministic.
type Manifest struct {
	Catalog       string         `json:"catalog" yaml:"catalog"`
	Schema        string         `json:"schema" yaml:"schema"`
	Models        []Model        `json:"models" yaml:"models"`
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships"`
	Views         []View         `json:"views,omitempty" yaml:"views"`
}

// Model is one table-backed or query-backed model.
type Model struct {
	Name           string          `json:"name" yaml:"name"`
	RefSQL         string          `json:"refSql,omitempty" yaml:"refSql"`
	TableReference *TableReference `json:"tableReference,omitempty" yaml:"tableReference"`
	Columns        []ModelColumn   `json:"columns" yaml:"columns"`
	PrimaryKey     string          `json:"primaryKey,omitempty" yaml:"primaryKey"`
}

// TableReference points a model at a physical source table.
type TableReference struct {
	Catalog string `json:"catalog,omitempty" yaml:"catalog"`
	Schema  string `json:"schema,omitempty" yaml:"schema"`
	Table   string `json:"table" yaml:"table"`
}

// ModelColumn is one column of a model.
type ModelColumn struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	IsCalculated bool   `json:"isCalculated,omitempty" yaml:"isCalculated"`
	Expression   string `json:"expression,omitempty" yaml:"expression"`
}

// Relationship joins two models.
type Relationship struct {
	Name      string   `json:"name" yaml:"name"`
	Models    []string `json:"models" yaml:"models"`
	JoinType  string   `json:"joinType" yaml:"joinType"`
	Condition string   `json:"condition" yaml:"condition"`
}

// View is a named statement over the models.
type View struct {
	Name      string `json:"name" yaml:"name"`
	Statement string `json:"statement" yaml:"statement"`
}
