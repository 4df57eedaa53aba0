package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommand(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:///"+filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("LOG_LEVEL", "error")

	run := func() string {
		var out bytes.Buffer
		root := newRootCommand()
		root.SetOut(&out)
		root.SetArgs([]string{"seed", "--env-file", filepath.Join(t.TempDir(), "none.env")})
		require.NoError(t, root.ExecuteContext(context.Background()))
		return out.String()
	}

	assert.Equal(t, "seeded 5 characters, 5 planets, 5 vehicles\n", run())
	assert.Equal(t, "seeded 0 characters, 0 planets, 0 vehicles\n", run())
}
