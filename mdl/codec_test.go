package mdl

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest() *Manifest {
	return &Manifest{
		Catalog: "analytics",
		Schema:  "public",
		Models: []Model{
			{
				Name: "orders",
				TableReference: &TableReference{
					Schema: "public",
					Table:  "orders",
				},
				Columns: []ModelColumn{
					{Name: "id", Type: "INT4"},
					{Name: "total", Type: "DECIMAL"},
				},
				PrimaryKey: "id",
			},
		},
	}
}

func TestEncodeManifest(t *testing.T) {
	t.Run("deterministic_for_equal_content", func(t *testing.T) {
		first, err := EncodeManifest(sampleManifest())
		require.NoError(t, err)
		second, err := EncodeManifest(sampleManifest())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("output_is_base64_json", func(t *testing.T) {
		encoded, err := EncodeManifest(sampleManifest())
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), `"catalog":"analytics"`)
		assert.Contains(t, string(decoded), `"primaryKey":"id"`)
	})

	t.Run("map_payloads_encode_stably", func(t *testing.T) {
		// encoding/json sorts map keys, so field insertion order does not
		// leak into the transport string.
		first, err := EncodeManifest(map[string]any{"catalog": "c", "schema": "s"})
		require.NoError(t, err)
		second, err := EncodeManifest(map[string]any{"schema": "s", "catalog": "c"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unencodable_payload_errors", func(t *testing.T) {
		_, err := EncodeManifest(map[string]any{"bad": make(chan int)})
		assert.Error(t, err)
	})
}
