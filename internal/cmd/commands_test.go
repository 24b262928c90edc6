package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/MeKo-Tech/globalmercator/internal/tile"
	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.Bytes(), err
}

func TestLatLngCommand(t *testing.T) {
	out, err := executeCommand(t, "latlng",
		"--lat", "44.99988840247", "--lng", "-75.00005722045897", "--zoom", "13", "--tile-size", "256")
	require.NoError(t, err)

	var report pointReport
	require.NoError(t, json.Unmarshal(out, &report))
	assert.InDelta(t, -8348968.18, report.Meters.MX, 0.01)
	assert.InDelta(t, 5621503.92, report.Meters.MY, 0.01)
	require.NotNil(t, report.Tile)
	assert.Equal(t, mercator.Tile{TX: 2389, TY: 5245, Zoom: 13}, report.Tile.Tile)
	assert.Equal(t, mercator.Google{X: 2389, Y: 2946, Zoom: 13}, report.Tile.Google)
	assert.Equal(t, "0302321010121", report.Tile.QuadKey)
	require.NotNil(t, report.Pixels)
	assert.Equal(t, 13, report.Pixels.Zoom)
}

func TestLatLngCommandWithoutZoom(t *testing.T) {
	out, err := executeCommand(t, "latlng", "--lat", "90", "--lng", "0", "--zoom=-1", "--tile-size", "256")
	require.NoError(t, err)

	var report pointReport
	require.NoError(t, json.Unmarshal(out, &report))
	assert.Equal(t, 85.0, report.LatLng.Lat)
	assert.False(t, report.LatLng.Zoom.Valid)
	assert.Nil(t, report.Tile)
	assert.Nil(t, report.Pixels)
}

func TestLatLngCommandRejectsOutOfRange(t *testing.T) {
	_, err := executeCommand(t, "latlng", "--lat", "91", "--lng", "0", "--zoom", "3", "--tile-size", "256")
	require.Error(t, err)
	assert.ErrorIs(t, err, mercator.ErrRange)
}

func TestMetersCommand(t *testing.T) {
	out, err := executeCommand(t, "meters",
		"--mx", "-8348968.179247875", "--my", "5621503.917462073", "--zoom", "13", "--tile-size", "256")
	require.NoError(t, err)

	var report pointReport
	require.NoError(t, json.Unmarshal(out, &report))
	assert.InDelta(t, 44.99988840247, report.LatLng.Lat, 1e-9)
	assert.InDelta(t, -75.00005722045897, report.LatLng.Lng, 1e-9)
	require.NotNil(t, report.Pixels)
	assert.Equal(t, mercator.Pixels{PX: 611669, PY: 1342753, Zoom: 13}, *report.Pixels)
	require.NotNil(t, report.Tile)
	assert.Equal(t, mercator.Tile{TX: 2389, TY: 5245, Zoom: 13}, report.Tile.Tile)
}

func TestTileCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "google slash", args: []string{"tile", "13/2389/2946", "--scheme", "google"}},
		{name: "google underscore", args: []string{"tile", "z13_x2389_y2946", "--scheme", "xyz"}},
		{name: "tms", args: []string{"tile", "13/2389/5245", "--scheme", "tms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append(tt.args, "--tile-size", "256")...)
			require.NoError(t, err)

			var summary tile.Summary
			require.NoError(t, json.Unmarshal(out, &summary))
			assert.Equal(t, mercator.Google{X: 2389, Y: 2946, Zoom: 13}, summary.Google)
			assert.Equal(t, "0302321010121", summary.QuadKey)
		})
	}

	_, err := executeCommand(t, "tile", "13/1/1", "--scheme", "bing", "--tile-size", "256")
	assert.Error(t, err)

	_, err = executeCommand(t, "tile", "garbage", "--scheme", "google", "--tile-size", "256")
	assert.Error(t, err)
}

func TestQuadKeyCommand(t *testing.T) {
	out, err := executeCommand(t, "quadkey", "0302321010121", "--tile-size", "256")
	require.NoError(t, err)

	var summary tile.Summary
	require.NoError(t, json.Unmarshal(out, &summary))
	assert.Equal(t, mercator.Tile{TX: 2389, TY: 5245, Zoom: 13}, summary.Tile)

	_, err = executeCommand(t, "quadkey", "030486861", "--tile-size", "256")
	require.Error(t, err)
	assert.ErrorIs(t, err, mercator.ErrInvalidQuadKey)
}

func TestBBoxCommand(t *testing.T) {
	out, err := executeCommand(t, "bbox",
		"--bbox", "-75.01464843750001,44.99588261816546,-74.97070312499999,45.02695045318546", "--tile-size", "256")
	require.NoError(t, err)

	var report bboxReport
	require.NoError(t, json.Unmarshal(out, &report))
	want := mercator.BBox{-8350592.466098936, 5620873.311978721, -8345700.496288682, 5625765.281788976}
	for i := range want {
		assert.InDelta(t, want[i], report.Meters[i], 0.01)
	}

	_, err = executeCommand(t, "bbox", "--bbox", "1,2,3", "--tile-size", "256")
	assert.ErrorIs(t, err, mercator.ErrRange)
}

func TestInvalidTileSize(t *testing.T) {
	_, err := executeCommand(t, "quadkey", "0", "--tile-size", "0")
	assert.ErrorIs(t, err, mercator.ErrRange)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "error", "json", false)
	l.Warn("dropped")
	l.Error("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)

	buf.Reset()
	l = newLogger(&buf, "error", "text", true)
	l.Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")
}
