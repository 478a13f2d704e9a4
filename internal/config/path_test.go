package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CASHFLOW_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde alone", in: "~", want: home},
		{name: "tilde prefix", in: "~/journal.db", want: filepath.Join(home, "journal.db")},
		{name: "env var", in: "$CASHFLOW_TEST_DIR/journal.db", want: "/srv/data/journal.db"},
		{name: "plain", in: "/tmp/journal.db", want: "/tmp/journal.db"},
		{name: "tilde in the middle is kept", in: "/tmp/~/x", want: "/tmp/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestPathOr(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/.local/share/cashflow/cashflow.db", PathOr("", DefaultDBPath))
	assert.Equal(t, "/home/tester/.local/share/cashflow/backups", PathOr("  ", DefaultBackups))
	assert.Equal(t, "/data/x.db", PathOr("/data/x.db", DefaultDBPath))
}
