package tile

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/globalmercator/mercator"
)

// Coords represents a tile coordinate in the Google/XYZ tile system (z/x/y)
type Coords struct {
	Z int // Zoom level (0-23)
	X int // X coordinate (column)
	Y int // Y coordinate (row, north to south)
}

// String returns the tile coordinate as a string in format "z{zoom}_x{x}_y{y}"
func (c Coords) String() string {
	return fmt.Sprintf("z%d_x%d_y%d", c.Z, c.X, c.Y)
}

// Google returns the validated XYZ tile for this coordinate
func (c Coords) Google() (mercator.Google, error) {
	return mercator.NewGoogle(c.X, c.Y, c.Z)
}

// NewCoords creates a new Coords from zoom, x, y values
func NewCoords(z, x, y int) Coords {
	return Coords{Z: z, X: x, Y: y}
}

// ParseCoords parses "z13_x4297_y2754" or "13/4297/2754" into Coords
func ParseCoords(s string) (Coords, error) {
	format := "z%d_x%d_y%d%s"
	if strings.Contains(s, "/") {
		format = "%d/%d/%d%s"
	}

	var c Coords
	var rest string
	// the trailing %s only matches garbage after the last number
	n, _ := fmt.Sscanf(s, format, &c.Z, &c.X, &c.Y, &rest)
	if n != 3 {
		return Coords{}, fmt.Errorf("invalid tile coordinate format: %s", s)
	}
	return c, nil
}

// Summary describes one tile in every representation of the pyramid
type Summary struct {
	Google       mercator.Google `json:"google"`
	Tile         mercator.Tile   `json:"tile"`
	QuadKey      string          `json:"quadkey"`
	Bounds       mercator.BBox   `json:"bounds"`        // meters, EPSG:3857
	LatLngBounds mercator.BBox   `json:"latlng_bounds"` // degrees, WGS84
	Center       [2]float64      `json:"center"`        // lng, lat
}

// Describe converts a Google tile into all other representations
func Describe(m *mercator.Mercator, g mercator.Google) (Summary, error) {
	t, err := m.GoogleToTile(g)
	if err != nil {
		return Summary{}, err
	}
	qk, err := m.TileToQuadKey(t)
	if err != nil {
		return Summary{}, fmt.Errorf("quadkey: %w", err)
	}
	bounds, err := m.TileBBox(t)
	if err != nil {
		return Summary{}, fmt.Errorf("bounds: %w", err)
	}
	llBounds, err := m.TileLatLngBBox(t)
	if err != nil {
		return Summary{}, fmt.Errorf("latlng bounds: %w", err)
	}

	center := llBounds.Bound().Center()
	return Summary{
		Google:       g,
		Tile:         t,
		QuadKey:      qk,
		Bounds:       bounds,
		LatLngBounds: llBounds,
		Center:       [2]float64{center.Lon(), center.Lat()},
	}, nil
}

// DescribeCoords validates c and describes it
func DescribeCoords(m *mercator.Mercator, c Coords) (Summary, error) {
	g, err := c.Google()
	if err != nil {
		return Summary{}, err
	}
	return Describe(m, g)
}
