package mercator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Zoom is an optional zoom level. The zero value is unset.
type Zoom struct {
	Level int
	Valid bool
}

// NoZoom is the unset zoom.
var NoZoom = Zoom{}

// ZoomOf returns a set zoom.
func ZoomOf(level int) Zoom {
	return Zoom{Level: level, Valid: true}
}

// Get returns the level and whether it is set.
func (z Zoom) Get() (int, bool) {
	return z.Level, z.Valid
}

func (z Zoom) String() string {
	if !z.Valid {
		return "unset"
	}
	return strconv.Itoa(z.Level)
}

// MarshalJSON encodes an unset zoom as null.
func (z Zoom) MarshalJSON() ([]byte, error) {
	if !z.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(z.Level)
}

// UnmarshalJSON decodes null or a missing value as an unset zoom.
func (z *Zoom) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*z = NoZoom
		return nil
	}
	var level int
	if err := json.Unmarshal(data, &level); err != nil {
		return fmt.Errorf("zoom: %w", err)
	}
	*z = ZoomOf(level)
	return nil
}

// LatLng is a WGS84 position in degrees.
type LatLng struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom Zoom    `json:"zoom"`
}

// NewLatLng validates lat/lng, clamping the latitude to ±MaxLatitude.
func NewLatLng(lat, lng float64, zoom Zoom) (LatLng, error) {
	var ll [2]float64
	err := build("LatLng", []Field{Float("lat", lat), Float("lng", lng)},
		func() (err error) {
			ll, err = ValidateLngLat([]float64{lng, lat})
			return err
		},
	)
	if err != nil {
		return LatLng{}, err
	}
	return LatLng{Lat: ll[1], Lng: ll[0], Zoom: zoom}, nil
}

// LngLat returns the position in [lng, lat] (x, y) order.
func (l LatLng) LngLat() [2]float64 {
	return [2]float64{l.Lng, l.Lat}
}

// LatLngPair returns the position in [lat, lng] order.
func (l LatLng) LatLngPair() [2]float64 {
	return [2]float64{l.Lat, l.Lng}
}

// Meters is a Spherical Mercator (EPSG:3857) position.
type Meters struct {
	MX   float64 `json:"mx"`
	MY   float64 `json:"my"`
	Zoom Zoom    `json:"zoom"`
}

// NewMeters validates mx/my against the extent of the world.
func NewMeters(mx, my float64, zoom Zoom) (Meters, error) {
	var m [2]float64
	err := build("Meters", []Field{Float("mx", mx), Float("my", my)},
		func() (err error) {
			m, err = ValidateMeters([]float64{mx, my})
			return err
		},
	)
	if err != nil {
		return Meters{}, err
	}
	return Meters{MX: m[0], MY: m[1], Zoom: zoom}, nil
}

// Pixels is a pyramid pixel position at a zoom level, origin bottom-left.
type Pixels struct {
	PX   float64 `json:"px"`
	PY   float64 `json:"py"`
	Zoom int     `json:"zoom"`
}

// NewPixels truncates px/py toward zero.
func NewPixels(px, py float64, zoom int) (Pixels, error) {
	var p [2]float64
	err := build("Pixels", []Field{Float("px", px), Float("py", py)},
		func() (err error) {
			p, err = ValidatePixels([]float64{px, py})
			return err
		},
	)
	if err != nil {
		return Pixels{}, err
	}
	return Pixels{PX: p[0], PY: p[1], Zoom: zoom}, nil
}

// Tile is a TMS tile index; row 0 is at the bottom of the map.
type Tile struct {
	TX   int `json:"tx"`
	TY   int `json:"ty"`
	Zoom int `json:"zoom"`
}

// NewTile validates a TMS tile. Zoom 0 is only accepted for the
// whole-world tile (0, 0, 0).
func NewTile(tx, ty, zoom int) (Tile, error) {
	t := Tile{TX: tx, TY: ty, Zoom: zoom}
	if t == (Tile{}) {
		return t, nil
	}
	return ValidateTile(t, "Tile")
}

func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Zoom, t.TX, t.TY)
}

// Google is an XYZ tile index; row 0 is at the top of the map.
type Google struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Zoom int `json:"zoom"`
}

// NewGoogle validates an XYZ tile with the same rules as NewTile.
func NewGoogle(x, y, zoom int) (Google, error) {
	g := Google{X: x, Y: y, Zoom: zoom}
	if g == (Google{}) {
		return g, nil
	}
	if _, err := ValidateZoom(zoom, "Google"); err != nil {
		return Google{}, err
	}
	if x < 0 {
		return Google{}, fail(ErrRange, "Google", "x", "Google <x> must not be less than 0")
	}
	if y < 0 {
		return Google{}, fail(ErrRange, "Google", "y", "Google <y> must not be less than 0")
	}
	return g, nil
}

func (g Google) String() string {
	return fmt.Sprintf("%d/%d/%d", g.Zoom, g.X, g.Y)
}

// BBox is an extent in [minX, minY, maxX, maxY] order.
type BBox [4]float64

// LngLatBounds is a lat/lng bounding box whose corners were validated
// individually.
type LngLatBounds struct {
	Raw BBox       // input as given
	Min [2]float64 // validated [lng, lat] of the first corner
	Max [2]float64 // validated [lng, lat] of the second corner
}

// NewLngLatBounds validates a [minLng, minLat, maxLng, maxLat] box.
func NewLngLatBounds(init []float64) (LngLatBounds, error) {
	raw, err := ValidateBBox(init)
	if err != nil {
		return LngLatBounds{}, err
	}
	lo, err := ValidateLngLat(raw[0:2])
	if err != nil {
		return LngLatBounds{}, err
	}
	hi, err := ValidateLngLat(raw[2:4])
	if err != nil {
		return LngLatBounds{}, err
	}
	return LngLatBounds{Raw: raw, Min: lo, Max: hi}, nil
}

// Bounds returns the validated corners as a BBox.
func (b LngLatBounds) Bounds() BBox {
	return BBox{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
}
