package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".jig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("", t.TempDir())
	req.NoError(err)
	req.Equal(utils.DefaultExtensions, cfg.Extensions)
	req.Equal(utils.DefaultExclude, cfg.Exclude)
	req.False(cfg.LiteralNamespaceCase)
	req.False(cfg.InPlace)
}

func TestLoadConfig_projectRoot(t *testing.T) {
	req := require.New(t)
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	writeConfig(t, root, `extensions: [".ts", ".tsx"]
exclude: ["generated"]
literal_namespace_case: true
`)

	cfg, err := LoadConfig("", root)
	req.NoError(err)
	req.Equal([]string{".ts", ".tsx"}, cfg.Extensions)
	req.Equal([]string{"generated"}, cfg.Exclude)
	req.True(cfg.LiteralNamespaceCase)
}

func TestLoadConfig_explicitPath(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "in_place: true\n")

	cfg, err := LoadConfig(path, "")
	req.NoError(err)
	req.True(cfg.InPlace)
	req.Equal(utils.DefaultExtensions, cfg.Extensions)
}

func TestLoadConfig_env(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "in_place: false\n")
	t.Setenv("JIG_IN_PLACE", "true")
	t.Setenv("JIG_LITERAL_NAMESPACE_CASE", "true")

	cfg, err := LoadConfig(path, "")
	req.NoError(err)
	req.True(cfg.InPlace)
	req.True(cfg.LiteralNamespaceCase)
}

func TestLoadConfig_errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		req := require.New(t)
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), "")
		req.Error(err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		req := require.New(t)
		path := writeConfig(t, t.TempDir(), "extensions: [\n")
		_, err := LoadConfig(path, "")
		req.Error(err)
	})

	t.Run("extension without grammar", func(t *testing.T) {
		req := require.New(t)
		path := writeConfig(t, t.TempDir(), `extensions: [".vue"]`+"\n")
		_, err := LoadConfig(path, "")
		req.ErrorIs(err, errors.ErrUnsupportedFileType)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		wantErr    bool
	}{
		{"defaults", utils.DefaultExtensions, false},
		{"empty", nil, false},
		{"missing dot", []string{"js"}, true},
		{"unknown grammar", []string{".py"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cfg := Config{Extensions: tt.extensions}
			err := cfg.Validate()
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrUnsupportedFileType)
				return
			}
			req.NoError(err)
		})
	}
}
