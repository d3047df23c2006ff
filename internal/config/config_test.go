package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/bookmark"
)

func TestDecode_EmptyKeepsDefaults(t *testing.T) {
	p, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, bookmark.DefaultParams(), p)
}

func TestDecode_PartialOverrides(t *testing.T) {
	data := []byte(`
seed = "abc123"
mode = "shapes"
lines = 5
fill = "#ABC"

[margins]
bottom = 10

[shapes]
freq = 0.75

[shapes.circle_radius]
max = 20
`)
	p, err := Decode(data)
	require.NoError(t, err)

	def := bookmark.DefaultParams()
	assert.Equal(t, "abc123", p.Seed)
	assert.Equal(t, bookmark.ModeShapes, p.Mode)
	assert.Equal(t, 5, p.Lines)
	assert.Equal(t, "#aabbcc", p.Fill)
	assert.Equal(t, 10.0, p.Margins.Bottom)
	assert.Equal(t, def.Margins.Top, p.Margins.Top)
	assert.Equal(t, 0.75, p.Shapes.Freq)
	assert.Equal(t, 20.0, p.Shapes.CircleRadius.Max)
	assert.Equal(t, def.Shapes.CircleRadius.Min, p.Shapes.CircleRadius.Min)
	assert.Equal(t, def.FontSize, p.FontSize)
	assert.Equal(t, def.Background, p.Background)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "colour = \"#fff\"\n", "unknown keys"},
		{"syntax", "lines = = 3\n", "line 1"},
		{"wrong type", "lines = \"many\"\n", ""},
		{"bad color", "fill = \"#zzzzzz\"\n", "fill"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	p := bookmark.DefaultParams()
	p.Seed = "K7mXq2Pz9BcDeF"
	p.ShowFrame = true
	p.Stroke = "#151515"
	p.StrokeWidth = 0.32
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, bookmark.DefaultParams(), p)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreate_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	p := bookmark.DefaultParams()
	p.Seed = "abc123"

	require.NoError(t, Create(path, p))
	err := Create(path, p)
	assert.ErrorIs(t, err, ErrExists)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Seed)
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"none", "none", false},
		{"None", "none", false},
		{"#F5F5F5", "#f5f5f5", false},
		{"151515", "#151515", false},
		{"#fff", "#ffffff", false},
		{"#ff00ff", "#ff00ff", false},
		{"red", "", true},
		{"#12", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_ReportsEveryField(t *testing.T) {
	p := bookmark.DefaultParams()
	p.Background = "nope"
	p.Stroke = "also-nope"
	err := Normalize(&p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background")
	assert.Contains(t, err.Error(), "stroke")
	assert.Equal(t, "#151515", p.Fill)
}
