package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakibahmad/schemabridge/catalog"
)

type recordingDiagnostics struct {
	events []string
}

func (d *recordingDiagnostics) UnmappedType(dataType string) {
	d.events = append(d.events, dataType)
}

func TestTypeMapper_Map(t *testing.T) {
	t.Run("case_insensitive", func(t *testing.T) {
		diag := &recordingDiagnostics{}
		mapper := NewTypeMapper(clickhouseTypes, diag)

		assert.Equal(t, catalog.TypeInt4, mapper.Map("INT32"))
		assert.Equal(t, catalog.TypeInt4, mapper.Map("int32"))
		assert.Equal(t, catalog.TypeInt4, mapper.Map("Int32"))
		assert.Empty(t, diag.events)
	})

	t.Run("unknown_type_emits_one_diagnostic", func(t *testing.T) {
		diag := &recordingDiagnostics{}
		mapper := NewTypeMapper(clickhouseTypes, diag)

		assert.Equal(t, catalog.TypeUnknown, mapper.Map("Array(String)"))
		require.Len(t, diag.events, 1)
		// The event carries the original, non-normalized string.
		assert.Equal(t, "Array(String)", diag.events[0])
	})

	t.Run("empty_string_is_unknown_not_error", func(t *testing.T) {
		diag := &recordingDiagnostics{}
		mapper := NewTypeMapper(clickhouseTypes, diag)

		assert.Equal(t, catalog.TypeUnknown, mapper.Map(""))
		assert.Len(t, diag.events, 1)
	})

	t.Run("variant_tables_are_independent", func(t *testing.T) {
		ch := NewTypeMapper(clickhouseTypes, &recordingDiagnostics{})
		pg := NewTypeMapper(postgresTypes, &recordingDiagnostics{})
		my := NewTypeMapper(mysqlTypes, &recordingDiagnostics{})

		assert.Equal(t, catalog.TypeVarchar, ch.Map("String"))
		assert.Equal(t, catalog.TypeVarchar, pg.Map("character varying"))
		assert.Equal(t, catalog.TypeTinyInt, my.Map("tinyint"))

		// "int8" is a one-byte integer in ClickHouse but an eight-byte
		// integer alias in PostgreSQL.
		assert.Equal(t, catalog.TypeTinyInt, ch.Map("Int8"))
		assert.Equal(t, catalog.TypeInt8, pg.Map("int8"))
	})

	t.Run("special_types", func(t *testing.T) {
		mapper := NewTypeMapper(clickhouseTypes, &recordingDiagnostics{})

		assert.Equal(t, catalog.TypeUUID, mapper.Map("UUID"))
		assert.Equal(t, catalog.TypeInet, mapper.Map("IPv4"))
		assert.Equal(t, catalog.TypeInet, mapper.Map("IPv6"))
		assert.Equal(t, catalog.TypeString, mapper.Map("Enum8"))
		assert.Equal(t, catalog.TypeChar, mapper.Map("FixedString"))
	})
}
