package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/ghusers/view"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    FileConfig
		wantErr string
	}{
		{
			name:    "all keys",
			content: "sort: stars\nbrowser: firefox\ndebug: true\n",
			want:    FileConfig{Sort: "stars", Browser: "firefox", Debug: true},
		},
		{
			name:    "empty file",
			content: "",
			want:    FileConfig{},
		},
		{
			name:    "invalid sort",
			content: "sort: popularity\n",
			wantErr: "invalid sort criterion",
		},
		{
			name:    "malformed yaml",
			content: "sort: [name\n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFileConfig(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	got, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, got)
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		file    FileConfig
		want    view.SortCriterion
		wantErr bool
	}{
		{name: "default", want: view.SortByName},
		{name: "file", file: FileConfig{Sort: "date"}, want: view.SortByDate},
		{name: "flag beats file", flag: "stars", file: FileConfig{Sort: "date"}, want: view.SortByStars},
		{name: "flag is case-insensitive", flag: "DATE", want: view.SortByDate},
		{name: "invalid flag", flag: "size", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSort(tt.flag, tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "ghusers", "config.yaml"), path)
}
