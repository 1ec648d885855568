package domain_test

import (
	"testing"

	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func settingsFor(root string) domain.Settings {
	return domain.Settings{Project: domain.Project{Root: root}}.Normalize()
}

func TestFingerprint_Deterministic(t *testing.T) {
	s := settingsFor("/proj")

	assert.Equal(t, s.Fingerprint(), s.Fingerprint())
}

func TestFingerprint_Length(t *testing.T) {
	s := settingsFor("/proj")

	assert.Len(t, s.Fingerprint(), 16)
}

func TestFingerprint_DistinguishesRoots(t *testing.T) {
	assert.NotEqual(t, settingsFor("/a").Fingerprint(), settingsFor("/b").Fingerprint())
}

func TestFingerprint_DistinguishesReloadCommand(t *testing.T) {
	a := settingsFor("/proj")
	b := settingsFor("/proj")
	b.Reload.ForceEnv = "OTHER=1"

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
