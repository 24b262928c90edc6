package mercator

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// MinZoom and MaxZoom bound the zoom levels accepted by ValidateZoom.
	MinZoom = 1
	MaxZoom = 23

	// MaxLatitude is where latitudes are clamped to before projecting.
	MaxLatitude = 85.0

	// MaxMeters is half the circumference of the Mercator world.
	MaxMeters = 20037508.342789244
)

// notice reports a value that was adjusted instead of rejected.
func notice(msg string, args ...any) {
	slog.Default().Warn(msg, append([]any{"component", "mercator"}, args...)...)
}

// ValidateZoom checks that zoom lies within MinZoom..MaxZoom.
// name is optional and prefixes the error message.
func ValidateZoom(zoom int, name string) (int, error) {
	if zoom < MinZoom {
		return 0, fail(ErrRange, name, "zoom", "%s<zoom> cannot be less than %d", prefix(name), MinZoom)
	}
	if zoom > MaxZoom {
		return 0, fail(ErrRange, name, "zoom", "%s<zoom> cannot be greater than %d", prefix(name), MaxZoom)
	}
	return zoom, nil
}

// ValidateLngLat checks a [lng, lat] pair. Latitudes beyond ±MaxLatitude
// but within ±90 are clamped with a notice; anything past ±90 is rejected.
func ValidateLngLat(init []float64) ([2]float64, error) {
	if len(init) != 2 {
		return [2]float64{}, fail(ErrRange, "LngLat", "", "LngLat must be an Array of 2 numbers")
	}
	lng, lat := init[0], init[1]
	if lat < -90 || lat > 90 {
		return [2]float64{}, fail(ErrRange, "LngLat", "lat", "LngLat [lat] must be within -90 to 90 degrees")
	}
	if lng < -180 || lng > 180 {
		return [2]float64{}, fail(ErrRange, "LngLat", "lng", "LngLat [lng] must be within -180 to 180 degrees")
	}
	if lat > MaxLatitude {
		notice("LngLat [lat] has been modified to 85", "lat", lat)
		lat = MaxLatitude
	}
	if lat < -MaxLatitude {
		notice("LngLat [lat] has been modified to -85", "lat", lat)
		lat = -MaxLatitude
	}
	return [2]float64{lng, lat}, nil
}

// ValidateMeters checks a [mx, my] pair against the extent of the world.
func ValidateMeters(init []float64) ([2]float64, error) {
	if len(init) != 2 {
		return [2]float64{}, fail(ErrRange, "Meters", "", "Meters must be an Array of 2 numbers")
	}
	mx, my := init[0], init[1]
	if my > MaxMeters {
		return [2]float64{}, fail(ErrRange, "Meters", "my", "Meters [my] cannot be greater than %v", MaxMeters)
	}
	if my < -MaxMeters {
		return [2]float64{}, fail(ErrRange, "Meters", "my", "Meters [my] cannot be less than %v", -MaxMeters)
	}
	if mx > MaxMeters {
		return [2]float64{}, fail(ErrRange, "Meters", "mx", "Meters [mx] cannot be greater than %v", MaxMeters)
	}
	if mx < -MaxMeters {
		return [2]float64{}, fail(ErrRange, "Meters", "mx", "Meters [mx] cannot be less than %v", -MaxMeters)
	}
	return [2]float64{mx, my}, nil
}

// ValidatePixels checks a [px, py] pair and truncates fractional
// components toward zero.
func ValidatePixels(init []float64) ([2]float64, error) {
	if len(init) != 2 {
		return [2]float64{}, fail(ErrRange, "Pixels", "", "Pixels must be an Array of 2 numbers")
	}
	px, py := init[0], init[1]
	if t := math.Trunc(px); !math.IsNaN(px) && t != px {
		px = t
		notice(fmt.Sprintf("Pixels [px] has been modified to %v", px))
	}
	if t := math.Trunc(py); !math.IsNaN(py) && t != py {
		py = t
		notice(fmt.Sprintf("Pixels [py] has been modified to %v", py))
	}
	return [2]float64{px, py}, nil
}

// ValidateBBox checks that init holds exactly four numbers and returns a copy.
// The order of the corners is not checked.
func ValidateBBox(init []float64) (BBox, error) {
	if len(init) != 4 {
		return BBox{}, fail(ErrRange, "BBox", "", "[bbox] must be an Array of 4 numbers")
	}
	var b BBox
	copy(b[:], init)
	return b, nil
}

// ValidateTile checks the zoom and indices of a TMS tile.
func ValidateTile(t Tile, name string) (Tile, error) {
	if name == "" {
		name = "Tile"
	}
	if _, err := ValidateZoom(t.Zoom, name); err != nil {
		return Tile{}, err
	}
	if t.TX < 0 {
		return Tile{}, fail(ErrRange, name, "tx", "%s <tx> must not be less than 0", name)
	}
	if t.TY < 0 {
		return Tile{}, fail(ErrRange, name, "ty", "%s <ty> must not be less than 0", name)
	}
	return t, nil
}

// Field is one named component of a record inspected by AssertRequired.
type Field struct {
	Name    string
	Present bool
}

// Float marks a float component as missing when it is NaN.
func Float(name string, v float64) Field {
	return Field{Name: name, Present: !math.IsNaN(v)}
}

// ZoomField marks an unset Zoom as missing.
func ZoomField(z Zoom) Field {
	return Field{Name: "zoom", Present: z.Valid}
}

// AssertRequired fails on the first field that is not present.
func AssertRequired(fields []Field, name string) error {
	for _, f := range fields {
		if !f.Present {
			return fail(ErrRequired, name, f.Name, "%s<%s> is required.", prefix(name), f.Name)
		}
	}
	return nil
}

// build runs the range validators of a record in order and then scans for
// missing fields, so a range violation is reported before a missing field.
func build(name string, fields []Field, validators ...func() error) error {
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return AssertRequired(fields, name)
}
