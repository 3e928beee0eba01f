package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HAPPY_BASE_PATH", t.TempDir())
	t.Setenv("HAPPY_TOKEN", "")
}

func TestRunHelp(t *testing.T) {
	isolate(t)
	assert.Equal(t, 0, Run([]string{"help"}, Options{}))
	assert.Equal(t, 0, Run([]string{"--help"}, Options{}))
}

func TestRunUnknownSubcommand(t *testing.T) {
	isolate(t)
	assert.Equal(t, 2, Run([]string{"frobnicate"}, Options{}))
}

func TestRunAddUsage(t *testing.T) {
	isolate(t)
	assert.Equal(t, 2, Run([]string{"add"}, Options{}))
	assert.Equal(t, 2, Run([]string{"add", "   "}, Options{}), "whitespace-only text is a usage error, no insert happens")
}

func TestRunAddAndRemove(t *testing.T) {
	isolate(t)
	require.Equal(t, 0, Run([]string{"add", "Petting", "a", "dog", "🐶"}, Options{}))

	a := bootstrap(Options{})
	items, err := a.store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Petting a dog 🐶", items[0].Text)

	assert.Equal(t, 0, Run([]string{"rm", items[0].ID}, Options{}))
	items, err = a.store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRunRemoveDefaultRefused(t *testing.T) {
	isolate(t)
	for _, id := range []string{"default-1", "default-3", "default-6"} {
		assert.Equal(t, 2, Run([]string{"rm", id}, Options{}), "default %s must never reach the store", id)
	}
}

func TestRunRemoveUnknownIDFails(t *testing.T) {
	isolate(t)
	assert.Equal(t, 1, Run([]string{"rm", "01J00000000000000000000000"}, Options{}))
}

func TestRunWhoAmI(t *testing.T) {
	isolate(t)
	assert.Equal(t, 0, Run([]string{"whoami"}, Options{}))
}
