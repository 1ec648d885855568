package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/heph2/foxtail/internal/app"
	_ "github.com/heph2/foxtail/internal/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentsGraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())

	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
