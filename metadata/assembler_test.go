package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakibahmad/schemabridge/catalog"
)

func TestAssembleTables(t *testing.T) {
	mapper := NewTypeMapper(clickhouseTypes, &recordingDiagnostics{})

	t.Run("groups_rows_into_one_table", func(t *testing.T) {
		rows := []ColumnRow{
			{Schema: "s1", Table: "t1", Column: "a", DataType: "Int32"},
			{Schema: "s1", Table: "t1", Column: "b", DataType: "String"},
		}

		tables := AssembleTables(rows, mapper)

		require.Len(t, tables, 1)
		assert.Equal(t, "s1.t1", tables[0].Name)
		require.Len(t, tables[0].Columns, 2)
		assert.Equal(t, "a", tables[0].Columns[0].Name)
		assert.Equal(t, catalog.TypeInt4, tables[0].Columns[0].Type)
		assert.Equal(t, "b", tables[0].Columns[1].Name)
		assert.Equal(t, catalog.TypeVarchar, tables[0].Columns[1].Type)
	})

	t.Run("distinct_pairs_never_merge", func(t *testing.T) {
		rows := []ColumnRow{
			{Schema: "s1", Table: "t1", Column: "a", DataType: "Int32"},
			{Schema: "s2", Table: "t1", Column: "a", DataType: "Int32"},
			{Schema: "s1", Table: "t2", Column: "a", DataType: "Int32"},
		}

		tables := AssembleTables(rows, mapper)

		require.Len(t, tables, 3)
		assert.Equal(t, "s1.t1", tables[0].Name)
		assert.Equal(t, "s2.t1", tables[1].Name)
		assert.Equal(t, "s1.t2", tables[2].Name)
	})

	t.Run("interleaved_rows_keep_first_seen_order", func(t *testing.T) {
		rows := []ColumnRow{
			{Schema: "s1", Table: "t1", Column: "a", DataType: "Int32"},
			{Schema: "s1", Table: "t2", Column: "x", DataType: "Int32"},
			{Schema: "s1", Table: "t1", Column: "b", DataType: "String"},
			{Schema: "s1", Table: "t2", Column: "y", DataType: "String"},
		}

		tables := AssembleTables(rows, mapper)

		require.Len(t, tables, 2)
		assert.Equal(t, "s1.t1", tables[0].Name)
		assert.Equal(t, "s1.t2", tables[1].Name)
		assert.Equal(t, []string{"a", "b"}, columnNames(tables[0]))
		assert.Equal(t, []string{"x", "y"}, columnNames(tables[1]))
	})

	t.Run("table_shell_from_first_row", func(t *testing.T) {
		rows := []ColumnRow{
			{Schema: "s1", Table: "t1", TableComment: "orders table", Column: "a", DataType: "Int32", ColumnComment: "order id"},
			{Schema: "s1", Table: "t1", TableComment: "ignored", Column: "b", DataType: "String"},
		}

		tables := AssembleTables(rows, mapper)

		require.Len(t, tables, 1)
		assert.Equal(t, "orders table", tables[0].Description)
		assert.Empty(t, tables[0].Properties.Catalog)
		assert.Equal(t, "s1", tables[0].Properties.Schema)
		assert.Equal(t, "t1", tables[0].Properties.Table)
		assert.Empty(t, tables[0].PrimaryKey)
		assert.Equal(t, "order id", tables[0].Columns[0].Description)
	})

	// Dots inside schema or table names are not escaped, so distinct
	// pairs can collide on the compact name. Documented limitation.
	t.Run("dotted_names_collide_on_compact_form", func(t *testing.T) {
		rows := []ColumnRow{
			{Schema: "a.b", Table: "c", Column: "x", DataType: "Int32"},
			{Schema: "a", Table: "b.c", Column: "y", DataType: "String"},
		}

		tables := AssembleTables(rows, mapper)

		require.Len(t, tables, 1)
		assert.Equal(t, "a.b.c", tables[0].Name)
		assert.Equal(t, []string{"x", "y"}, columnNames(tables[0]))
	})

	t.Run("empty_input", func(t *testing.T) {
		assert.Empty(t, AssembleTables(nil, mapper))
	})
}

func columnNames(table catalog.Table) []string {
	names := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		names = append(names, c.Name)
	}
	return names
}
