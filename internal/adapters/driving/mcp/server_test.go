package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil catalog service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Catalog = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
	})

	t.Run("nil search service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Search = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingSearchService)
	})

	t.Run("nil match service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Match = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingMatchService)
	})

	t.Run("nil stats service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Stats = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingStatsService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, testPorts().Validate())
	})
}
