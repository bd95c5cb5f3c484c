package metadata

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sakibahmad/schemabridge/catalog"
	"github.com/sakibahmad/schemabridge/database"
)

var postgresTypes = map[string]catalog.ColumnType{
	// Boolean
	"boolean": catalog.TypeBool,
	"bool":    catalog.TypeBool,
	// Integers
	"smallint": catalog.TypeInt2,
	"int2":     catalog.TypeInt2,
	"integer":  catalog.TypeInt4,
	"int":      catalog.TypeInt4,
	"int4":     catalog.TypeInt4,
	"bigint":   catalog.TypeInt8,
	"int8":     catalog.TypeInt8,
	// Floats
	"real":             catalog.TypeFloat4,
	"float4":           catalog.TypeFloat4,
	"double precision": catalog.TypeFloat8,
	"float8":           catalog.TypeFloat8,
	"numeric":          catalog.TypeDecimal,
	"decimal":          catalog.TypeDecimal,
	// Date/time
	"date":                        catalog.TypeDate,
	"timestamp":                   catalog.TypeTimestamp,
	"timestamp without time zone": catalog.TypeTimestamp,
	"timestamp with time zone":    catalog.TypeTimestamp,
	// Strings
	"character varying": catalog.TypeVarchar,
	"varchar":           catalog.TypeVarchar,
	"text":              catalog.TypeVarchar,
	"character":         catalog.TypeChar,
	"char":              catalog.TypeChar,
	"bpchar":            catalog.TypeChar,
	// Special
	"uuid": catalog.TypeUUID,
	"inet": catalog.TypeInet,
}

const postgresTableQuery = `
SELECT
    c.table_schema,
    c.table_name,
    COALESCE(pd.description, '') AS table_comment,
    c.column_name,
    c.data_type,
    COALESCE(cd.description, '') AS column_comment
FROM information_schema.columns c
JOIN pg_catalog.pg_class pc
    ON pc.relname = c.table_name
JOIN pg_catalog.pg_namespace pn
    ON pn.oid = pc.relnamespace
    AND pn.nspname = c.table_schema
LEFT JOIN pg_catalog.pg_description pd
    ON pd.objoid = pc.oid AND pd.objsubid = 0
LEFT JOIN pg_catalog.pg_description cd
    ON cd.objoid = pc.oid AND cd.objsubid = c.ordinal_position
WHERE c.table_schema NOT IN ('information_schema', 'pg_catalog')
ORDER BY c.table_schema, c.table_name, c.ordinal_position;
`

const postgresConstraintQuery = `
SELECT
    tc.constraint_name,
    tc.table_schema,
    tc.table_name,
    kcu.column_name,
    ccu.table_schema AS foreign_table_schema,
    ccu.table_name AS foreign_table_name,
    ccu.column_name AS foreign_column_name
FROM information_schema.table_constraints AS tc
JOIN information_schema.key_column_usage AS kcu
    ON tc.constraint_name = kcu.constraint_name
    AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage AS ccu
    ON ccu.constraint_name = tc.constraint_name
    AND ccu.table_schema = tc.table_schema
WHERE tc.constraint_type = 'FOREIGN KEY'
    AND tc.table_schema NOT IN ('information_schema', 'pg_catalog');
`

const postgresPrimaryKeyQuery = `
SELECT
    kcu.table_schema,
    kcu.table_name,
    kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
    ON tc.constraint_name = kcu.constraint_name
    AND tc.table_schema = kcu.table_schema
WHERE tc.constraint_type = 'PRIMARY KEY'
    AND tc.table_schema NOT IN ('information_schema', 'pg_catalog')
ORDER BY kcu.ordinal_position;
`

// PostgresMetadata introspects a PostgreSQL server through
// information_schema and the pg_catalog views.
type PostgresMetadata struct {
	info   ConnectionInfo
	mapper *TypeMapper

	openOnce sync.Once
	pool     *pgxpool.Pool
	openErr  error
}

// NewPostgresMetadata builds the PostgreSQL variant. The connection pool is
// created lazily on first use.
func NewPostgresMetadata(info ConnectionInfo, diag Diagnostics) *PostgresMetadata {
	return &PostgresMetadata{
		info:   info,
		mapper: NewTypeMapper(postgresTypes, diag),
	}
}

func (m *PostgresMetadata) connString() string {
	if m.info.URL != "" {
		return m.info.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		m.info.User, m.info.Password, m.info.Host, m.info.Port, m.info.Database)
}

func (m *PostgresMetadata) conn(ctx context.Context) (*pgxpool.Pool, error) {
	m.openOnce.Do(func() {
		m.pool, m.openErr = database.NewPgxPool(ctx, m.connString())
	})
	if m.openErr != nil {
		return nil, &ConnectivityError{Source: SourcePostgres, Err: m.openErr}
	}
	return m.pool, nil
}

// GetTableList reads the column catalog, assembles it into deduplicated
// tables and fills in primary keys where the catalog knows them.
func (m *PostgresMetadata) GetTableList(ctx context.Context) ([]catalog.Table, error) {
	pool, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, postgresTableQuery)
	if err != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: err}
	}
	defer rows.Close()

	var raw []ColumnRow
	for rows.Next() {
		var r ColumnRow
		if err := rows.Scan(&r.Schema, &r.Table, &r.TableComment, &r.Column, &r.DataType, &r.ColumnComment); err != nil {
			return nil, &QueryError{Source: SourcePostgres, Err: err}
		}
		raw = append(raw, r)
	}
	if rows.Err() != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: rows.Err()}
	}

	tables := AssembleTables(raw, m.mapper)

	primaryKeys, err := m.getPrimaryKeys(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		tables[i].PrimaryKey = primaryKeys[tables[i].Name]
	}

	return tables, nil
}

// getPrimaryKeys maps compact table names to their primary key column. For
// composite keys the first column by ordinal position wins.
func (m *PostgresMetadata) getPrimaryKeys(ctx context.Context) (map[string]string, error) {
	pool, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, postgresPrimaryKeyQuery)
	if err != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: err}
	}
	defer rows.Close()

	keys := map[string]string{}
	for rows.Next() {
		var schema, table, column string
		if err := rows.Scan(&schema, &table, &column); err != nil {
			return nil, &QueryError{Source: SourcePostgres, Err: err}
		}
		name := CompactTableName(schema, table)
		if _, ok := keys[name]; !ok {
			keys[name] = column
		}
	}
	if rows.Err() != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: rows.Err()}
	}

	return keys, nil
}

// GetConstraints returns the foreign key constraints visible in
// information_schema.
func (m *PostgresMetadata) GetConstraints(ctx context.Context) ([]catalog.Constraint, error) {
	pool, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, postgresConstraintQuery)
	if err != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: err}
	}
	defer rows.Close()

	constraints := []catalog.Constraint{}
	for rows.Next() {
		var name, schema, table, column, refSchema, refTable, refColumn string
		if err := rows.Scan(&name, &schema, &table, &column, &refSchema, &refTable, &refColumn); err != nil {
			return nil, &QueryError{Source: SourcePostgres, Err: err}
		}
		constraints = append(constraints, catalog.Constraint{
			Name:             name,
			Type:             catalog.ConstraintForeignKey,
			Table:            CompactTableName(schema, table),
			Column:           column,
			ReferencedTable:  CompactTableName(refSchema, refTable),
			ReferencedColumn: refColumn,
		})
	}
	if rows.Err() != nil {
		return nil, &QueryError{Source: SourcePostgres, Err: rows.Err()}
	}

	return constraints, nil
}

// GetVersion returns the server version string verbatim.
func (m *PostgresMetadata) GetVersion(ctx context.Context) (string, error) {
	pool, err := m.conn(ctx)
	if err != nil {
		return "", err
	}

	var version string
	if err := pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", &ConnectivityError{Source: SourcePostgres, Err: err}
	}
	return version, nil
}
