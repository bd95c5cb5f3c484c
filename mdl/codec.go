package mdl

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeManifest serializes the manifest to JSON and base64-encodes the
// result. This is the only artifact handed to the engine-handle
// constructor. Output is byte-identical for logically identical input
// (struct fields keep declaration order, map keys are sorted), which
// matters because the encoded string can end up inside a session cache
// key. Decoding is the engine's job; there is no counterpart here.
func EncodeManifest(manifest any) (string, error) {
	data, err := json.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("marshalling manifest: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
