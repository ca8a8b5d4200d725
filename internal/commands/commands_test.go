package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/picklist/internal/core/config"
)

// runApp registers the given commands on a fresh root and runs args against it.
func runApp(t *testing.T, flags *Flags, args []string, register ...func(*cli.Command) *cli.Command) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "picklist",
		Writer: &buf,
	}
	for _, r := range register {
		app = r(app)
	}

	err := app.Run(context.Background(), append([]string{"picklist"}, args...))
	return buf.String(), err
}

func defaultFlags() *Flags {
	cfg := config.DefaultConfig()
	return &Flags{Config: &cfg}
}

func writeOrdersFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}
