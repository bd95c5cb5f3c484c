package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	info := ConnectionInfo{Host: "localhost", Port: 5432, Database: "db", User: "u", Password: "p"}

	t.Run("selects_variant_at_construction", func(t *testing.T) {
		pg, err := New(SourcePostgres, info, nil)
		require.NoError(t, err)
		assert.IsType(t, &PostgresMetadata{}, pg)

		ch, err := New(SourceClickHouse, info, nil)
		require.NoError(t, err)
		assert.IsType(t, &ClickHouseMetadata{}, ch)

		my, err := New(SourceMySQL, info, nil)
		require.NoError(t, err)
		assert.IsType(t, &MySQLMetadata{}, my)
	})

	t.Run("unsupported_source", func(t *testing.T) {
		_, err := New(SourceType("oracle"), info, nil)
		assert.Error(t, err)
	})

	t.Run("url_overrides_fields", func(t *testing.T) {
		pg := NewPostgresMetadata(ConnectionInfo{URL: "postgres://u:p@db.internal:6432/app"}, nil)
		assert.Equal(t, "postgres://u:p@db.internal:6432/app", pg.connString())

		ch := NewClickHouseMetadata(ConnectionInfo{URL: "clickhouse://u:p@ch.internal:9000/app"}, nil)
		assert.Equal(t, "clickhouse://u:p@ch.internal:9000/app", ch.connString())

		my := NewMySQLMetadata(ConnectionInfo{URL: "u:p@tcp(my.internal:3307)/app"}, nil)
		assert.Equal(t, "u:p@tcp(my.internal:3307)/app", my.connString())
	})

	t.Run("dsn_built_from_fields", func(t *testing.T) {
		pg := NewPostgresMetadata(info, nil)
		assert.Equal(t, "postgres://u:p@localhost:5432/db", pg.connString())

		ch := NewClickHouseMetadata(info, nil)
		assert.Equal(t, "clickhouse://u:p@localhost:5432/db", ch.connString())

		my := NewMySQLMetadata(info, nil)
		assert.Equal(t, "u:p@tcp(localhost:5432)/db", my.connString())
	})
}
