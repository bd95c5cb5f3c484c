package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/sakibahmad/schemabridge/catalog"
	"github.com/sakibahmad/schemabridge/database"
)

var clickhouseTypes = map[string]catalog.ColumnType{
	// Boolean
	"boolean": catalog.TypeBool,
	// Integers
	"int8":   catalog.TypeTinyInt,
	"uint8":  catalog.TypeInt2,
	"int16":  catalog.TypeInt2,
	"uint16": catalog.TypeInt2,
	"int32":  catalog.TypeInt4,
	"uint32": catalog.TypeInt4,
	"int64":  catalog.TypeInt8,
	"uint64": catalog.TypeInt8,
	// Floats
	"float32": catalog.TypeFloat4,
	"float64": catalog.TypeFloat8,
	"decimal": catalog.TypeDecimal,
	// Date/time
	"date":     catalog.TypeDate,
	"datetime": catalog.TypeTimestamp,
	// Strings
	"string":      catalog.TypeVarchar,
	"fixedstring": catalog.TypeChar,
	// Special
	"uuid":   catalog.TypeUUID,
	"enum8":  catalog.TypeString,
	"enum16": catalog.TypeString,
	"ipv4":   catalog.TypeInet,
	"ipv6":   catalog.TypeInet,
}

const clickhouseTableQuery = `
SELECT
    c.database AS table_schema,
    c.table AS table_name,
    t.comment AS table_comment,
    c.name AS column_name,
    c.type AS data_type,
    c.comment AS column_comment
FROM system.columns AS c
JOIN system.tables AS t
    ON c.database = t.database
    AND c.table = t.name
WHERE c.database NOT IN ('system', 'INFORMATION_SCHEMA', 'information_schema', 'pg_catalog');
`

// ClickHouseMetadata introspects a ClickHouse server through its system
// tables.
type ClickHouseMetadata struct {
	info   ConnectionInfo
	mapper *TypeMapper

	openOnce sync.Once
	db       *sql.DB
	openErr  error
}

// NewClickHouseMetadata builds the ClickHouse variant. The connection is
// opened lazily on first use.
func NewClickHouseMetadata(info ConnectionInfo, diag Diagnostics) *ClickHouseMetadata {
	return &ClickHouseMetadata{
		info:   info,
		mapper: NewTypeMapper(clickhouseTypes, diag),
	}
}

func (m *ClickHouseMetadata) connString() string {
	if m.info.URL != "" {
		return m.info.URL
	}
	return fmt.Sprintf("clickhouse://%s:%s@%s:%d/%s",
		m.info.User, m.info.Password, m.info.Host, m.info.Port, m.info.Database)
}

func (m *ClickHouseMetadata) conn(ctx context.Context) (*sql.DB, error) {
	m.openOnce.Do(func() {
		m.db, m.openErr = database.OpenSQL(ctx, "clickhouse", m.connString())
	})
	if m.openErr != nil {
		return nil, &ConnectivityError{Source: SourceClickHouse, Err: m.openErr}
	}
	return m.db, nil
}

// GetTableList reads system.columns joined with system.tables and
// assembles the rows into deduplicated tables.
func (m *ClickHouseMetadata) GetTableList(ctx context.Context) ([]catalog.Table, error) {
	db, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, clickhouseTableQuery)
	if err != nil {
		return nil, &QueryError{Source: SourceClickHouse, Err: err}
	}
	defer rows.Close()

	var raw []ColumnRow
	for rows.Next() {
		var r ColumnRow
		if err := rows.Scan(&r.Schema, &r.Table, &r.TableComment, &r.Column, &r.DataType, &r.ColumnComment); err != nil {
			return nil, &QueryError{Source: SourceClickHouse, Err: err}
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Source: SourceClickHouse, Err: err}
	}

	return AssembleTables(raw, m.mapper), nil
}

// GetConstraints returns an empty slice: ClickHouse exposes no relational
// constraint metadata.
func (m *ClickHouseMetadata) GetConstraints(ctx context.Context) ([]catalog.Constraint, error) {
	return []catalog.Constraint{}, nil
}

// GetVersion returns the server version string verbatim.
func (m *ClickHouseMetadata) GetVersion(ctx context.Context) (string, error) {
	db, err := m.conn(ctx)
	if err != nil {
		return "", err
	}

	var version string
	if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", &ConnectivityError{Source: SourceClickHouse, Err: err}
	}
	return version, nil
}
