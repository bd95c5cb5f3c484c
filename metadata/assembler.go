package metadata

import (
	"fmt"

	"github.com/sakibahmad/schemabridge/catalog"
)

// ColumnRow is one row of a source catalog scan: one column of one table.
type ColumnRow struct {
	Schema        string
	Table         string
	TableComment  string
	Column        string
	DataType      string
	ColumnComment string
}

// CompactTableName joins schema and table with a dot. There is no escaping:
// a schema or table name that itself contains a dot is indistinguishable
// from a different schema/table pair. Known limitation of the compact form,
// kept for engine compatibility.
func CompactTableName(schema, table string) string {
	return fmt.Sprintf("%s.%s", schema, table)
}

// AssembleTables groups raw catalog rows into tables deduplicated by
// compact name. Tables come out in first-seen order; each table's columns
// keep row arrival order. The table shell (description, properties) is
// taken from the first row seen for its compact name.
func AssembleTables(rows []ColumnRow, mapper *TypeMapper) []catalog.Table {
	byName := map[string]int{}
	var tables []catalog.Table

	for _, row := range rows {
		name := CompactTableName(row.Schema, row.Table)
		idx, ok := byName[name]
		if !ok {
			idx = len(tables)
			byName[name] = idx
			tables = append(tables, catalog.Table{
				Name:        name,
				Description: row.TableComment,
				Properties: catalog.TableProperties{
					Schema: row.Schema,
					Table:  row.Table,
				},
			})
		}
		tables[idx].Columns = append(tables[idx].Columns, catalog.Column{
			Name:        row.Column,
			Type:        mapper.Map(row.DataType),
			Description: row.ColumnComment,
		})
	}

	return tables
}
