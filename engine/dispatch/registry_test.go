package dispatch_test

import (
	"testing"

	"github.com/npillmayer/mdown/engine/dispatch"
	"github.com/npillmayer/mdown/engine/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRegistryLookupFindsRulesByPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.dispatch")
	defer teardown()

	reg := dispatch.NewRegistry(markdown.DefaultRules())

	names := reg.Lookup("table")
	assert.Equal(t, []string{"table", "tableSeparator"}, names)
}

func TestRegistryHas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.dispatch")
	defer teardown()

	reg := dispatch.NewRegistry(markdown.DefaultRules())

	assert.True(t, reg.Has("strong"))
	assert.False(t, reg.Has("nonexistent"))
}
