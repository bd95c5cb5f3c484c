package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/sakibahmad/schemabridge/catalog"
	"github.com/sakibahmad/schemabridge/database"
)

var mysqlTypes = map[string]catalog.ColumnType{
	// Boolean
	"bit": catalog.TypeBool,
	// Integers
	"tinyint":   catalog.TypeTinyInt,
	"smallint":  catalog.TypeInt2,
	"mediumint": catalog.TypeInt4,
	"int":       catalog.TypeInt4,
	"integer":   catalog.TypeInt4,
	"bigint":    catalog.TypeInt8,
	// Floats
	"float":   catalog.TypeFloat4,
	"double":  catalog.TypeFloat8,
	"decimal": catalog.TypeDecimal,
	// Date/time
	"date":      catalog.TypeDate,
	"datetime":  catalog.TypeTimestamp,
	"timestamp": catalog.TypeTimestamp,
	// Strings
	"varchar":    catalog.TypeVarchar,
	"text":       catalog.TypeVarchar,
	"tinytext":   catalog.TypeVarchar,
	"mediumtext": catalog.TypeVarchar,
	"longtext":   catalog.TypeVarchar,
	"char":       catalog.TypeChar,
	// Special
	"enum": catalog.TypeString,
	"set":  catalog.TypeString,
}

const mysqlTableQuery = `
SELECT
    c.TABLE_SCHEMA,
    c.TABLE_NAME,
    t.TABLE_COMMENT,
    c.COLUMN_NAME,
    c.DATA_TYPE,
    c.COLUMN_COMMENT
FROM information_schema.COLUMNS c
JOIN information_schema.TABLES t
    ON c.TABLE_SCHEMA = t.TABLE_SCHEMA
    AND c.TABLE_NAME = t.TABLE_NAME
WHERE c.TABLE_SCHEMA NOT IN ('mysql', 'information_schema', 'performance_schema', 'sys')
ORDER BY c.TABLE_SCHEMA, c.TABLE_NAME, c.ORDINAL_POSITION;
`

const mysqlConstraintQuery = `
SELECT
    kcu.CONSTRAINT_NAME,
    kcu.TABLE_SCHEMA,
    kcu.TABLE_NAME,
    kcu.COLUMN_NAME,
    kcu.REFERENCED_TABLE_SCHEMA,
    kcu.REFERENCED_TABLE_NAME,
    kcu.REFERENCED_COLUMN_NAME
FROM information_schema.KEY_COLUMN_USAGE kcu
WHERE kcu.REFERENCED_TABLE_NAME IS NOT NULL
    AND kcu.TABLE_SCHEMA NOT IN ('mysql', 'information_schema', 'performance_schema', 'sys');
`

// MySQLMetadata introspects a MySQL server through information_schema.
type MySQLMetadata struct {
	info   ConnectionInfo
	mapper *TypeMapper

	openOnce sync.Once
	db       *sql.DB
	openErr  error
}

// NewMySQLMetadata builds the MySQL variant. The connection is opened
// lazily on first use.
func NewMySQLMetadata(info ConnectionInfo, diag Diagnostics) *MySQLMetadata {
	return &MySQLMetadata{
		info:   info,
		mapper: NewTypeMapper(mysqlTypes, diag),
	}
}

func (m *MySQLMetadata) connString() string {
	if m.info.URL != "" {
		return m.info.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		m.info.User, m.info.Password, m.info.Host, m.info.Port, m.info.Database)
}

func (m *MySQLMetadata) conn(ctx context.Context) (*sql.DB, error) {
	m.openOnce.Do(func() {
		m.db, m.openErr = database.OpenSQL(ctx, "mysql", m.connString())
	})
	if m.openErr != nil {
		return nil, &ConnectivityError{Source: SourceMySQL, Err: m.openErr}
	}
	return m.db, nil
}

// GetTableList reads information_schema.COLUMNS and assembles the rows
// into deduplicated tables.
func (m *MySQLMetadata) GetTableList(ctx context.Context) ([]catalog.Table, error) {
	db, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, mysqlTableQuery)
	if err != nil {
		return nil, &QueryError{Source: SourceMySQL, Err: err}
	}
	defer rows.Close()

	var raw []ColumnRow
	for rows.Next() {
		var r ColumnRow
		if err := rows.Scan(&r.Schema, &r.Table, &r.TableComment, &r.Column, &r.DataType, &r.ColumnComment); err != nil {
			return nil, &QueryError{Source: SourceMySQL, Err: err}
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Source: SourceMySQL, Err: err}
	}

	return AssembleTables(raw, m.mapper), nil
}

// GetConstraints returns the foreign key constraints visible in
// information_schema.
func (m *MySQLMetadata) GetConstraints(ctx context.Context) ([]catalog.Constraint, error) {
	db, err := m.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, mysqlConstraintQuery)
	if err != nil {
		return nil, &QueryError{Source: SourceMySQL, Err: err}
	}
	defer rows.Close()

	constraints := []catalog.Constraint{}
	for rows.Next() {
		var name, schema, table, column, refSchema, refTable, refColumn string
		if err := rows.Scan(&name, &schema, &table, &column, &refSchema, &refTable, &refColumn); err != nil {
			return nil, &QueryError{Source: SourceMySQL, Err: err}
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
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Source: SourceMySQL, Err: err}
	}

	return constraints, nil
}

// GetVersion returns the server version string verbatim.
func (m *MySQLMetadata) GetVersion(ctx context.Context) (string, error) {
	db, err := m.conn(ctx)
	if err != nil {
		return "", err
	}

	var version string
	if err := db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&version); err != nil {
		return "", &ConnectivityError{Source: SourceMySQL, Err: err}
	}
	return version, nil
}
