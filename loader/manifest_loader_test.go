package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifestYAML = `
catalog: analytics
schema: public
models:
  - name: orders
    tableReference:
      schema: public
      table: orders
    primaryKey: id
    columns:
      - name: id
        type: INT4
      - name: total
        type: DECIMAL
relationships:
  - name: orders_customers
    models: [orders, customers]
    joinType: MANY_TO_ONE
    condition: orders.customer_id = customers.id
`

func TestLoadManifestFromYAML(t *testing.T) {
	t.Run("loads_manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleManifestYAML), 0644))

		manifest, err := LoadManifestFromYAML(path)
		require.NoError(t, err)

		assert.Equal(t, "analytics", manifest.Catalog)
		assert.Equal(t, "public", manifest.Schema)
		require.Len(t, manifest.Models, 1)
		assert.Equal(t, "orders", manifest.Models[0].Name)
		assert.Equal(t, "id", manifest.Models[0].PrimaryKey)
		require.NotNil(t, manifest.Models[0].TableReference)
		assert.Equal(t, "orders", manifest.Models[0].TableReference.Table)
		require.Len(t, manifest.Models[0].Columns, 2)
		assert.Equal(t, "total", manifest.Models[0].Columns[1].Name)
		require.Len(t, manifest.Relationships, 1)
		assert.Equal(t, []string{"orders", "customers"}, manifest.Relationships[0].Models)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadManifestFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.yaml")
		require.NoError(t, os.WriteFile(path, []byte("models: {not: [valid"), 0644))

		_, err := LoadManifestFromYAML(path)
		assert.Error(t, err)
	})
}
