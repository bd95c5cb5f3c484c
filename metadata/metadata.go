package metadata

import (
	"context"
	"fmt"

	"github.com/sakibahmad/schemabridge/catalog"
)

// Metadata is the catalog-discovery contract for one source database
// family. Every operation blocks on the source connection for its duration;
// failures surface as ConnectivityError or QueryError and are never retried
// here.
type Metadata interface {
	// GetTableList reads the source catalog and returns assembled,
	// deduplicated tables in first-seen order.
	GetTableList(ctx context.Context) ([]catalog.Table, error)

	// GetConstraints returns relational constraints. Sources without
	// constraint introspection return an empty slice; that is success.
	GetConstraints(ctx context.Context) ([]catalog.Constraint, error)

	// GetVersion returns the source engine's version string verbatim.
	GetVersion(ctx context.Context) (string, error)
}

// SourceType names a supported source database family.
type SourceType string

const (
	SourcePostgres   SourceType = "postgres"
	SourceClickHouse SourceType = "clickhouse"
	SourceMySQL      SourceType = "mysql"
)

// ConnectionInfo carries everything needed to reach a source database. It
// is owned by the caller; this package only renders it into a driver DSN.
// A non-empty URL takes precedence over the individual fields.
type ConnectionInfo struct {
	URL      string
	Host     string
	Port     int
	Database string
	User     string
	Password string
	Options  map[string]string
}

// New picks the concrete Metadata implementation for the source type. The
// choice happens here, at construction time; callers never switch on the
// concrete type afterwards.
func New(source SourceType, info ConnectionInfo, diag Diagnostics) (Metadata, error) {
	switch source {
	case SourcePostgres:
		return NewPostgresMetadata(info, diag), nil
	case SourceClickHouse:
		return NewClickHouseMetadata(info, diag), nil
	case SourceMySQL:
		return NewMySQLMetadata(info, diag), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %q", source)
	}
}
