// Package engine declares the boundary to the native semantic/query
// engine. The engine itself lives outside this module; this package only
// names the handles that cross the boundary.
package engine

// SessionContext is an opaque engine handle bound to one (manifest,
// function path, properties) triple. Its concrete type belongs to the
// engine bindings; this side only stores and hands out references.
type SessionContext any

// ManifestExtractor parses an encoded manifest into engine-side
// introspection structures. Opaque to this module.
type ManifestExtractor any

// Factory constructs engine-side objects. Implemented by the native engine
// bindings. Construction can be expensive and I/O-bearing, so callers are
// expected to memoize results (see mdl.SessionContextCache).
type Factory interface {
	// NewSessionContext builds a session context for the triple. A nil
	// manifest or nil properties means "absent".
	NewSessionContext(manifest *string, functionPath string, properties map[string]any) (SessionContext, error)

	// NewManifestExtractor builds an extractor over an encoded manifest.
	NewManifestExtractor(manifest string) (ManifestExtractor, error)
}
