package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownDialects(t *testing.T) {
	for _, name := range []string{"appLocator", "generic", "bootstrap"} {
		d, usedDefault := Resolve(name)
		assert.Equal(t, ID(name), d.ID())
		assert.False(t, usedDefault, name)
	}
}

func TestResolveUnknownReturnsDefault(t *testing.T) {
	d, usedDefault := Resolve("nonexistent-dialect")
	assert.Equal(t, DefaultID, d.ID())
	assert.True(t, usedDefault)

	// Omitted identifier also falls back to the default.
	d, usedDefault = Resolve("")
	assert.Equal(t, DefaultID, d.ID())
	assert.True(t, usedDefault)

	// Lookup is exact-match: case variants miss the catalog.
	d, usedDefault = Resolve("APPLOCATOR")
	assert.Equal(t, DefaultID, d.ID())
	assert.True(t, usedDefault)
}

func TestVerifyCatalogComplete(t *testing.T) {
	require.NoError(t, Verify())
}

func TestEveryDialectMapsEveryRole(t *testing.T) {
	for _, name := range Names() {
		d, usedDefault := Resolve(name)
		require.False(t, usedDefault)
		for _, role := range AllRoles() {
			locator := d.Locator(role)
			assert.NotEmpty(t, locator.String(), "%s: %s", name, role)
		}
	}
}

func TestNamesStableOrder(t *testing.T) {
	assert.Equal(t, []string{"appLocator", "bootstrap", "generic"}, Names())
}
