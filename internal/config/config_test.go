package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyed-eye/spirograph/curve"
	"github.com/dyed-eye/spirograph/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spirograph.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, curve.Parameters{Fixed: 220, Rolling: 65, Offset: 110}, cfg.Example())

	g, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, curve.DefaultGenerator(), g)

	st, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, 800, st.Width)
	assert.Equal(t, "Hypotrochoid", st.Title)
	r, g2, b, a := st.Stroke.RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g2, b, a})

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

// TestLoad_Overlay checks that a file only overrides the keys it names.
func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
policy = "strict"
log_level = "debug"

[defaults]
fixed = 10
rolling = 5
offset = 2

[render]
width = 400
stroke = "#ff0000"

[animation]
delay = "5ms"
preview = "live.png"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, curve.Parameters{Fixed: 10, Rolling: 5, Offset: 2}, cfg.Example())
	assert.Equal(t, 5*time.Millisecond, cfg.Animation.Delay.Duration)
	assert.Equal(t, 24, cfg.Animation.FrameEvery)
	assert.Equal(t, "live.png", cfg.Animation.Preview)

	g, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, curve.RequirePositiveOffset, g.Policy)

	st, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, 400, st.Width)
	assert.Equal(t, 800, st.Height)
	r, _, _, _ := st.Stroke.RGBA()
	assert.Equal(t, uint32(0xffff), r)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"BadPolicy":    `policy = "sloppy"`,
		"BadColor":     "[render]\nstroke = \"blue-ish\"",
		"BadSize":      "[render]\nwidth = -1",
		"BadDelay":     "[animation]\ndelay = \"soon\"",
		"BadPreview":   "[animation]\npreview = \"live.gif\"",
		"BadLevel":     `log_level = "loud"`,
		"BadDefaults":  "[defaults]\nfixed = 0",
		"NotTOML":      "this is = = not toml",
		"NegativeWait": "[animation]\ndelay = \"-1s\"",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
