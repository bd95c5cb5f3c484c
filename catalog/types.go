package catalog

// ColumnType is the closed set of column types the downstream engine
// understands, independent of any source database's native type system.
// The names are wire-stable: adding or removing a member is a breaking
// change to the engine contract.
type ColumnType string

const (
	TypeBool      ColumnType = "BOOL"
	TypeTinyInt   ColumnType = "TINYINT"
	TypeInt2      ColumnType = "INT2"
	TypeInt4      ColumnType = "INT4"
	TypeInt8      ColumnType = "INT8"
	TypeFloat4    ColumnType = "FLOAT4"
	TypeFloat8    ColumnType = "FLOAT8"
	TypeDecimal   ColumnType = "DECIMAL"
	TypeDate      ColumnType = "DATE"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeVarchar   ColumnType = "VARCHAR"
	TypeChar      ColumnType = "CHAR"
	TypeUUID      ColumnType = "UUID"
	TypeString    ColumnType = "STRING"
	TypeInet      ColumnType = "INET"

	// TypeUnknown is the fallback for source types with no canonical
	// counterpart. It is a valid value, not an error.
	TypeUnknown ColumnType = "UNKNOWN"
)
