package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a deterministic identity for a reload configuration.
// Two runs with the same marker path and reload command produce the same
// fingerprint. The value identifies the environment in status output and
// keys the watch-mode reload deduplication.
func (s Settings) Fingerprint() string {
	h := xxhash.New()

	_, _ = h.WriteString(s.Project.MarkerPath())
	_, _ = h.Write([]byte{0})

	for _, arg := range s.Reload.Argv(s.Project.Root) {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0}) // Section separator

	_, _ = h.WriteString(s.Reload.ForceEnv)
	_, _ = h.Write([]byte{0})

	_, _ = h.WriteString(s.Project.CachePattern())

	return fmt.Sprintf("%016x", h.Sum64())
}
