package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lyqlplay/pkg/config"
)

func isolated(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, config.OnErrorReset, result.Config.OnError)
	assert.Equal(t, config.DefaultMaxDepth, result.Config.MaxDepth)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".lyqlplay.yml")
	writeFile(t, configPath, `
language: markdown
on_error: keep
theme:
  heading: "212"
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, "markdown", result.Config.Language)
	assert.Equal(t, config.OnErrorKeep, result.Config.OnError)
	assert.Equal(t, "212", result.Config.Theme["heading"])
	// Unset fields keep their defaults.
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoad_ProjectConfigTOML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.toml"), `
flavor = "commonmark"
max_depth = 32
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, config.FlavorCommonMark, result.Config.Flavor)
	assert.Equal(t, 32, result.Config.MaxDepth)
}

func TestLoad_ProjectConfigUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "color: never\n")
	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, result.Config.Color)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "color: never\n")
	repo := filepath.Join(tmpDir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	path, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "language: markdown\nflavor: commonmark\n")
	explicit := filepath.Join(tmpDir, "custom.yaml")
	writeFile(t, explicit, "language: lyql\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "lyql", result.Config.Language)
	assert.Equal(t, config.FlavorCommonMark, result.Config.Flavor)
	assert.Equal(t, explicit, result.Paths.Explicit)
	require.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.LoadedFrom[1])
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "color: never\nmax_depth: 10\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{Color: config.ColorAlways, Debug: true}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.ColorAlways, result.Config.Color)
	assert.Equal(t, 10, result.Config.MaxDepth)
	assert.True(t, result.Config.Debug)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".lyqlplay.yml")
	writeFile(t, configPath, "on_error: retry\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "on_error", validationErr.Field)
	assert.Equal(t, configPath, validationErr.FilePath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "theme: [a\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load project config")
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_UserConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	userPath := filepath.Join(configHome, "lyqlplay", "config.toml")
	writeFile(t, userPath, "on_error = \"keep\"\n")

	opts := LoadOptions{WorkingDir: t.TempDir(), IgnoreSystemConfig: true, IgnoreEnv: true}
	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, userPath, result.Paths.User)
	assert.Equal(t, config.OnErrorKeep, result.Config.OnError)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LYQLPLAY_ON_ERROR", "keep")
	t.Setenv("LYQLPLAY_MAX_DEPTH", "99")

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".lyqlplay.yml"), "on_error: reset\n")

	opts := LoadOptions{WorkingDir: tmpDir, IgnoreSystemConfig: true, IgnoreUserConfig: true}
	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.OnErrorKeep, result.Config.OnError)
	assert.Equal(t, 99, result.Config.MaxDepth)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("LYQLPLAY_DEBUG", "maybe")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LYQLPLAY_DEBUG")
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Contains(t, vars, "LYQLPLAY_ON_ERROR")
	for name := range vars {
		assert.True(t, strings.HasPrefix(name, envVarPrefix), name)
	}
	assert.Equal(t, "LYQLPLAY_MAX_DEPTH", GetEnvVarName("max_depth"))
	assert.Empty(t, GetEnvVarName("nope"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   *config.Config
		field string
	}{
		{"language", &config.Config{Language: "cobol"}, "language"},
		{"flavor", &config.Config{Flavor: "mdx"}, "flavor"},
		{"color", &config.Config{Color: "sometimes"}, "color"},
		{"max depth", &config.Config{MaxDepth: -1}, "max_depth"},
		{"theme category", &config.Config{Theme: map[string]string{"comment": "8"}}, "theme.comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(tt.cfg)
			require.False(t, result.Valid())
			assert.Equal(t, tt.field, result.Errors[0].Field)
		})
	}

	assert.True(t, Validate(config.NewConfig()).Valid())
	assert.True(t, Validate(nil).Valid())

	result := Validate(&config.Config{Theme: map[string]string{"keyword": " "}})
	assert.True(t, result.Valid())
	assert.True(t, result.HasWarnings())
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Theme: map[string]string{"string": "2"}},
		&config.Config{Language: "markdown", Theme: map[string]string{"string": "3", "null": "1"}},
	)

	assert.Equal(t, "markdown", merged.Language)
	assert.Equal(t, config.DefaultMaxDepth, merged.MaxDepth)
	assert.Equal(t, map[string]string{"string": "3", "null": "1"}, merged.Theme)
	assert.Nil(t, MergeAll())
}
