package mercator

var defaultMercator = MustNew(DefaultTileSize)

// Default returns the process-wide engine with 256 pixel tiles.
func Default() *Mercator {
	return defaultMercator
}

// Resolution returns meters per pixel at zoom using the default engine.
func Resolution(zoom Zoom) (float64, error) { return defaultMercator.Resolution(zoom) }

// LatLngToMeters converts lat/lng to meters using the default engine.
func LatLngToMeters(init LatLng) (Meters, error) { return defaultMercator.LatLngToMeters(init) }

// MetersToLatLng converts meters to lat/lng using the default engine.
func MetersToLatLng(init Meters) (LatLng, error) { return defaultMercator.MetersToLatLng(init) }

// MetersToPixels converts meters to pixels using the default engine.
func MetersToPixels(init Meters) (Pixels, error) { return defaultMercator.MetersToPixels(init) }

// PixelsToMeters converts pixels to meters using the default engine.
func PixelsToMeters(init Pixels) (Meters, error) { return defaultMercator.PixelsToMeters(init) }

// LatLngToTile returns the TMS tile for lat/lng using the default engine.
func LatLngToTile(init LatLng) (Tile, error) { return defaultMercator.LatLngToTile(init) }

// LatLngToGoogle returns the Google tile for lat/lng using the default engine.
func LatLngToGoogle(init LatLng) (Google, error) { return defaultMercator.LatLngToGoogle(init) }

// MetersToTile returns the TMS tile for meters using the default engine.
func MetersToTile(init Meters) (Tile, error) { return defaultMercator.MetersToTile(init) }

// PixelsToTile returns the TMS tile for pixels using the default engine.
func PixelsToTile(init Pixels) (Tile, error) { return defaultMercator.PixelsToTile(init) }

// TileToGoogle converts TMS to Google using the default engine.
func TileToGoogle(init Tile) (Google, error) { return defaultMercator.TileToGoogle(init) }

// GoogleToTile converts Google to TMS using the default engine.
func GoogleToTile(init Google) (Tile, error) { return defaultMercator.GoogleToTile(init) }

// TileBBox returns the meter extent of a TMS tile using the default engine.
func TileBBox(init Tile) (BBox, error) { return defaultMercator.TileBBox(init) }

// TileLatLngBBox returns the lat/lng extent of a TMS tile using the default engine.
func TileLatLngBBox(init Tile) (BBox, error) { return defaultMercator.TileLatLngBBox(init) }

// GoogleBBox returns the meter extent of a Google tile using the default engine.
func GoogleBBox(init Google) (BBox, error) { return defaultMercator.GoogleBBox(init) }

// GoogleLatLngBBox returns the lat/lng extent of a Google tile using the default engine.
func GoogleLatLngBBox(init Google) (BBox, error) { return defaultMercator.GoogleLatLngBBox(init) }

// TileToQuadKey encodes a TMS tile using the default engine.
func TileToQuadKey(init Tile) (string, error) { return defaultMercator.TileToQuadKey(init) }

// GoogleToQuadKey encodes a Google tile using the default engine.
func GoogleToQuadKey(init Google) (string, error) { return defaultMercator.GoogleToQuadKey(init) }

// QuadKeyToTile decodes a QuadKey to a TMS tile using the default engine.
func QuadKeyToTile(quadkey string) (Tile, error) { return defaultMercator.QuadKeyToTile(quadkey) }

// QuadKeyToGoogle decodes a QuadKey to a Google tile using the default engine.
func QuadKeyToGoogle(quadkey string) (Google, error) { return defaultMercator.QuadKeyToGoogle(quadkey) }

// BBoxLatLngToMeters projects a lat/lng box using the default engine.
func BBoxLatLngToMeters(bbox BBox) (BBox, error) { return defaultMercator.BBoxLatLngToMeters(bbox) }
