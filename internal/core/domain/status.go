package domain

import "time"

// CacheFileStatus describes one cached profile file relative to the marker.
type CacheFileStatus struct {
	Path    string
	ModTime time.Time
	// Fresh is true when the file's mtime is not older than the marker's.
	// Equality counts as fresh: a successful reload leaves both identical.
	Fresh bool
}

// StatusReport is the result of a non-mutating freshness inspection.
type StatusReport struct {
	Root         string
	RootExists   bool
	MarkerPath   string
	MarkerExists bool
	MarkerTime   time.Time
	Fingerprint  string
	CacheFiles   []CacheFileStatus
}

// Fresh reports whether the environment is fully up to date: the root and
// marker exist, at least one cached profile was found, and none of them lag
// the marker.
func (r *StatusReport) Fresh() bool {
	if !r.RootExists || !r.MarkerExists || len(r.CacheFiles) == 0 {
		return false
	}
	for _, cf := range r.CacheFiles {
		if !cf.Fresh {
			return false
		}
	}
	return true
}
