// Package mercator converts between the coordinate systems of a Spherical
// Mercator (EPSG:3857) tile pyramid: WGS84 degrees, projected meters,
// pyramid pixels, TMS tiles, Google/XYZ tiles and Microsoft QuadKeys.
//
// Every operation is a pure function over immutable values. Inputs are
// re-validated through the value constructors, so a hand-built struct
// literal is checked the same way as one returned by NewLatLng and friends.
package mercator

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// DefaultTileSize is the edge length of a tile in pixels.
	DefaultTileSize = 256

	earthRadius = 6378137.0
)

// Mercator holds the constants of a tile pyramid. It is read-only after New
// and safe for concurrent use.
type Mercator struct {
	tileSize          int
	initialResolution float64
	originShift       float64
	logger            *slog.Logger
}

// Option configures a Mercator.
type Option func(*Mercator)

// WithLogger sets the logger used for conversion traces.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mercator) {
		m.logger = logger
	}
}

// New initializes the TMS Global Mercator pyramid for the given tile size.
func New(tileSize int, opts ...Option) (*Mercator, error) {
	if tileSize <= 0 {
		return nil, fail(ErrRange, "Mercator", "tileSize", "tile size must be positive, got %d", tileSize)
	}
	r := earthRadius
	m := &Mercator{
		tileSize:          tileSize,
		initialResolution: 2 * math.Pi * r / float64(tileSize),
		originShift:       2 * math.Pi * r / 2.0,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(tileSize int, opts ...Option) *Mercator {
	m, err := New(tileSize, opts...)
	if err != nil {
		panic(fmt.Sprintf("mercator: %v", err))
	}
	return m
}

func (m *Mercator) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return slog.Default()
}

// TileSize returns the tile edge length in pixels.
func (m *Mercator) TileSize() int {
	return m.tileSize
}

// OriginShift returns half the world circumference in meters.
func (m *Mercator) OriginShift() float64 {
	return m.originShift
}

// Resolution returns meters per pixel at the equator for zoom.
func (m *Mercator) Resolution(zoom Zoom) (float64, error) {
	level, ok := zoom.Get()
	if !ok {
		return 0, fail(ErrRequired, "", "zoom", "<zoom> is required")
	}
	return m.initialResolution / math.Pow(2, float64(level)), nil
}

// ZoomForPixelSize returns the maximal zoom whose resolution is not finer
// than pixelSize meters per pixel. It never scales up past zoom 0.
func (m *Mercator) ZoomForPixelSize(pixelSize float64) (int, error) {
	if !(pixelSize > 0) {
		return 0, fail(ErrRange, "", "pixelSize", "pixel size must be positive, got %v", pixelSize)
	}
	for i := 0; i <= MaxZoom; i++ {
		res, _ := m.Resolution(ZoomOf(i))
		if pixelSize > res {
			if i == 0 {
				return 0, nil
			}
			return i - 1, nil
		}
	}
	return MaxZoom, nil
}

// LatLngToMeters projects WGS84 degrees to Spherical Mercator meters.
func (m *Mercator) LatLngToMeters(init LatLng) (Meters, error) {
	ll, err := NewLatLng(init.Lat, init.Lng, init.Zoom)
	if err != nil {
		return Meters{}, err
	}
	mx := ll.Lng * m.originShift / 180.0
	my := math.Log(math.Tan((90+ll.Lat)*math.Pi/360.0)) / (math.Pi / 180.0)
	my = my * m.originShift / 180.0

	m.log().Debug("latLngToMeters", "lat", ll.Lat, "lng", ll.Lng, "mx", mx, "my", my)
	return NewMeters(mx, my, ll.Zoom)
}

// MetersToLatLng is the inverse of LatLngToMeters.
func (m *Mercator) MetersToLatLng(init Meters) (LatLng, error) {
	mt, err := NewMeters(init.MX, init.MY, init.Zoom)
	if err != nil {
		return LatLng{}, err
	}
	lng := (mt.MX / m.originShift) * 180.0
	lat := (mt.MY / m.originShift) * 180.0
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180.0)) - math.Pi/2.0)

	m.log().Debug("metersToLatLng", "mx", mt.MX, "my", mt.MY, "lat", lat, "lng", lng)
	return NewLatLng(lat, lng, mt.Zoom)
}

// LatLngToTile returns the TMS tile containing init at init.Zoom.
func (m *Mercator) LatLngToTile(init LatLng) (Tile, error) {
	meters, err := m.LatLngToMeters(init)
	if err != nil {
		return Tile{}, err
	}
	pixels, err := m.MetersToPixels(meters)
	if err != nil {
		return Tile{}, err
	}
	return m.PixelsToTile(pixels)
}

// LatLngToGoogle returns the Google tile containing init at init.Zoom.
func (m *Mercator) LatLngToGoogle(init LatLng) (Google, error) {
	if level, ok := init.Zoom.Get(); ok && level == 0 {
		return Google{}, nil
	}
	t, err := m.LatLngToTile(init)
	if err != nil {
		return Google{}, err
	}
	return m.TileToGoogle(t)
}

// MetersToTile returns the TMS tile containing init at init.Zoom.
func (m *Mercator) MetersToTile(init Meters) (Tile, error) {
	if level, ok := init.Zoom.Get(); ok && level == 0 {
		return Tile{}, nil
	}
	pixels, err := m.MetersToPixels(init)
	if err != nil {
		return Tile{}, err
	}
	return m.PixelsToTile(pixels)
}

// BBoxLatLngToMeters projects both corners of a [minLng, minLat, maxLng,
// maxLat] box. Corners keep their input order.
func (m *Mercator) BBoxLatLngToMeters(bbox BBox) (BBox, error) {
	lo, err := m.LatLngToMeters(LatLng{Lat: bbox[1], Lng: bbox[0]})
	if err != nil {
		return BBox{}, err
	}
	hi, err := m.LatLngToMeters(LatLng{Lat: bbox[3], Lng: bbox[2]})
	if err != nil {
		return BBox{}, err
	}
	return BBox{lo.MX, lo.MY, hi.MX, hi.MY}, nil
}
