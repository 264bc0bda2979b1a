// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"vcard_settings.json", "settings.yaml", "nested/dir/settings.yml"} {
		for _, opts := range []types.ConversionOptions{
			{RemoveFormattedName: true, RemovePhotos: false},
			{RemoveFormattedName: false, RemovePhotos: true},
		} {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), name)
				require.NoError(t, Save(path, opts))

				got, err := Load(path)
				require.NoError(t, err)
				assert.Equal(t, opts, got)
			})
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.ConversionOptions
		wantErr bool
	}{
		{
			name:    "file written by the first release",
			content: "{\n    \"remove_fn\": false,\n    \"remove_photos\": true\n}",
			want:    types.ConversionOptions{RemoveFormattedName: false, RemovePhotos: true},
		},
		{
			name:    "missing keys take defaults",
			content: `{"remove_fn": false}`,
			want:    types.ConversionOptions{RemoveFormattedName: false, RemovePhotos: true},
		},
		{
			name:    "invalid json",
			content: `{"remove_fn": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNoSettings)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	assert.ErrorIs(t, err, ErrNoSettings)
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ConversionOptions
	}{
		{"defaults on enter", "\n\n", types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: true}},
		{"defaults on end of input", "", types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: true}},
		{"explicit yes and no", "Y\nno\n", types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: false}},
		{"anything else is no", "nope\n  YES  \n", types.ConversionOptions{RemoveFormattedName: false, RemovePhotos: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Prompt(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "First time setup")
			assert.Contains(t, out.String(), "Remove embedded photos?")
		})
	}
}

func TestLoadOrPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	var out bytes.Buffer
	opts, prompted, err := LoadOrPrompt(path, strings.NewReader("n\n\n"), &out)
	require.NoError(t, err)
	assert.True(t, prompted)
	assert.Equal(t, types.ConversionOptions{RemoveFormattedName: false, RemovePhotos: true}, opts)
	assert.FileExists(t, path)

	out.Reset()
	again, prompted, err := LoadOrPrompt(path, strings.NewReader("y\ny\n"), &out)
	require.NoError(t, err)
	assert.False(t, prompted)
	assert.Equal(t, opts, again)
	assert.Empty(t, out.String())
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, types.ConversionOptions{RemoveFormattedName: true}))

	assert.Equal(t, "remove_fn: true\nremove_photos: false\n", buf.String())
}
