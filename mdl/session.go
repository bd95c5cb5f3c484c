package mdl

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sakibahmad/schemabridge/engine"
)

// ErrMalformedKey reports a properties value that cannot take part in a
// cache key. It is returned before any construction attempt.
var ErrMalformedKey = errors.New("session properties must hold comparable values")

// SessionContextCache hands out engine session contexts keyed by
// (manifest, function path, properties). Each distinct key constructs at
// most one context for the life of the process, even under concurrent
// first requests; equal keys always yield the identical handle back.
//
// The map never evicts. Handle identity across calls is part of the
// contract, so entries live until process teardown; the table grows with
// the number of distinct deployed manifests, which is the accepted
// tradeoff.
type SessionContextCache struct {
	factory engine.Factory

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]engine.SessionContext
}

// NewSessionContextCache wraps an engine factory with per-key memoization.
func NewSessionContextCache(factory engine.Factory) *SessionContextCache {
	return &SessionContextCache{
		factory: factory,
		entries: make(map[string]engine.SessionContext),
	}
}

// GetOrCreate returns the session context for the triple, constructing it
// on first use. A nil manifest or nil properties means "absent" and keys
// differently from an empty value. Concurrent callers asking for the same
// unseen key share one construction; distinct keys never serialize against
// each other. Construction failures are not cached — the next call with
// the same key retries.
func (c *SessionContextCache) GetOrCreate(manifest *string, functionPath string, properties map[string]any) (engine.SessionContext, error) {
	key, err := sessionKey(manifest, functionPath, properties)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	if sc, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return sc, nil
	}
	c.mu.RUnlock()

	sc, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: a finished flight may have stored the entry between
		// the fast path and this call.
		c.mu.RLock()
		existing, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return existing, nil
		}

		created, err := c.factory.NewSessionContext(manifest, functionPath, properties)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = created
		c.mu.Unlock()
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// lengthPrefixed renders s as "<len>:<s>". Components rendered this way are
// self-delimiting, so no byte inside a component can shift the parse
// boundary to the next one.
func lengthPrefixed(s string) string {
	return strconv.Itoa(len(s)) + ":" + s
}

// sessionKey renders the triple into a canonical comparable string. Every
// component is length-prefixed, so the rendering is injective: two triples
// produce the same key only when all three components are equal by value.
// Presence markers keep absent components distinct from empty ones, and
// property pairs are sorted so logically equal sets key identically.
// Values carry their Go type in the rendering, so 1 and "1" stay distinct.
func sessionKey(manifest *string, functionPath string, properties map[string]any) (string, error) {
	var b strings.Builder
	if manifest != nil {
		b.WriteString("m")
		b.WriteString(lengthPrefixed(*manifest))
	} else {
		b.WriteString("m-")
	}
	b.WriteString("f")
	b.WriteString(lengthPrefixed(functionPath))
	if properties != nil {
		pairs := make([]string, 0, len(properties))
		for k, v := range properties {
			if v != nil && !reflect.TypeOf(v).Comparable() {
				return "", fmt.Errorf("%w: property %q has type %T", ErrMalformedKey, k, v)
			}
			pairs = append(pairs, lengthPrefixed(k)+lengthPrefixed(fmt.Sprintf("%T:%v", v, v)))
		}
		sort.Strings(pairs)
		b.WriteString("p")
		b.WriteString(lengthPrefixed(strings.Join(pairs, "")))
	} else {
		b.WriteString("p-")
	}
	return b.String(), nil
}

// GetManifestExtractor builds an extractor over an encoded manifest.
// Extractors are cheap engine-side parsers; they are not memoized.
func (c *SessionContextCache) GetManifestExtractor(manifest string) (engine.ManifestExtractor, error) {
	return c.factory.NewManifestExtractor(manifest)
}
