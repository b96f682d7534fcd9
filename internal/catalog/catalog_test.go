package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmptyReturnsAll(t *testing.T) {
	services := Default()

	assert.Equal(t, services, Filter(services, "", ""))
	assert.Equal(t, services, Filter(services, "", CategoryAll))
}

func TestFilterCaseInsensitive(t *testing.T) {
	services := Default()

	matched := Filter(services, "FORMATION", "")

	require.Len(t, matched, 1)
	assert.Equal(t, "Formation Technique", matched[0].Name)
}

func TestFilterMatchesDescription(t *testing.T) {
	// "e-commerce" only appears in service #4's name and description.
	matched := Filter(Default(), "gestion des stocks", "")

	require.Len(t, matched, 1)
	assert.Equal(t, "4", matched[0].ID)
}

func TestFilterByCategory(t *testing.T) {
	matched := Filter(Default(), "", "Développement")

	require.Len(t, matched, 2)
	assert.Equal(t, "2", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)
}

func TestFilterCategoryExactMatch(t *testing.T) {
	assert.Empty(t, Filter(Default(), "", "développement"))
}

func TestFilterCombined(t *testing.T) {
	matched := Filter(Default(), "mobile", "Développement")

	require.Len(t, matched, 1)
	assert.Equal(t, "Application Mobile", matched[0].Name)
}

func TestFilterPreservesOrder(t *testing.T) {
	matched := Filter(Default(), "technique", "")

	var prev string
	for _, service := range matched {
		assert.Greater(t, service.ID, prev)
		prev = service.ID
	}
}

func TestByID(t *testing.T) {
	services := Default()

	service, ok := ByID(services, "5")
	require.True(t, ok)
	assert.Equal(t, "Support Technique", service.Name)
	assert.False(t, service.Free())

	free, ok := ByID(services, "2")
	require.True(t, ok)
	assert.True(t, free.Free())

	_, ok = ByID(services, "42")
	assert.False(t, ok)
}
