package mercator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileToQuadKey(t *testing.T) {
	tests := []struct {
		tile Tile
		want string
	}{
		{tile: testTile, want: testQuadKey},
		{tile: Tile{TX: 0, TY: 0, Zoom: 1}, want: "2"},
		{tile: Tile{TX: 1, TY: 1, Zoom: 1}, want: "1"},
		{tile: Tile{TX: 3, TY: 1, Zoom: 2}, want: "31"},
		{tile: Tile{TX: 7, TY: 9, Zoom: 0}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			got, err := TileToQuadKey(tt.tile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoogleToQuadKey(t *testing.T) {
	got, err := GoogleToQuadKey(testGoogle)
	require.NoError(t, err)
	assert.Equal(t, testQuadKey, got)

	got, err = GoogleToQuadKey(Google{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestQuadKeyToGoogle(t *testing.T) {
	google, err := QuadKeyToGoogle(testQuadKey)
	require.NoError(t, err)
	assert.Equal(t, testGoogle, google)

	google, err = QuadKeyToGoogle("")
	require.NoError(t, err)
	assert.Equal(t, Google{}, google)
}

func TestQuadKeyToTile(t *testing.T) {
	tile, err := QuadKeyToTile(testQuadKey)
	require.NoError(t, err)
	assert.Equal(t, testTile, tile)
}

func TestQuadKeyInvalid(t *testing.T) {
	for _, qk := range []string{"030486861", "4", "01a", "0-1", "12 3"} {
		_, err := QuadKeyToTile(qk)
		assert.ErrorIs(t, err, ErrInvalidQuadKey, "quadkey %q", qk)
	}

	_, err := QuadKeyToGoogle("000000000000000000000000")
	assert.ErrorIs(t, err, ErrRange)
}

func TestQuadKeyRoundTrip(t *testing.T) {
	for zoom := 1; zoom <= 6; zoom++ {
		n := 1 << uint(zoom)
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				g := Google{X: x, Y: y, Zoom: zoom}
				qk, err := GoogleToQuadKey(g)
				require.NoError(t, err)
				require.Len(t, qk, zoom)
				back, err := QuadKeyToGoogle(qk)
				require.NoError(t, err)
				require.Equal(t, g, back)
			}
		}
	}

	g := Google{X: 1<<23 - 2, Y: 4242, Zoom: MaxZoom}
	qk, err := GoogleToQuadKey(g)
	require.NoError(t, err)
	back, err := QuadKeyToGoogle(qk)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}
