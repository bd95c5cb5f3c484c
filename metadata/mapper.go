package metadata

import (
	"strings"

	"github.com/sakibahmad/schemabridge/catalog"
)

// TypeMapper translates one source family's native type strings into
// canonical column types. Each Metadata implementation owns its own mapping
// table; the tables are built once at startup and never mutated.
type TypeMapper struct {
	types map[string]catalog.ColumnType
	diag  Diagnostics
}

// NewTypeMapper wraps a variant's mapping table. A nil diag falls back to
// the standard logger.
func NewTypeMapper(types map[string]catalog.ColumnType, diag Diagnostics) *TypeMapper {
	if diag == nil {
		diag = LogDiagnostics{}
	}
	return &TypeMapper{types: types, diag: diag}
}

// Map looks up the canonical type for a native type string. Lookup is
// case-insensitive. Anything not in the table, including parameterized
// forms like "Array(String)", maps to UNKNOWN and emits one diagnostic
// event carrying the original string. Map never fails.
func (m *TypeMapper) Map(dataType string) catalog.ColumnType {
	mapped, ok := m.types[strings.ToLower(dataType)]
	if !ok {
		m.diag.UnmappedType(dataType)
		return catalog.TypeUnknown
	}
	return mapped
}
