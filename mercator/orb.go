package mercator

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Point returns the position as an orb.Point in [lng, lat] order.
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Bound returns the box as an orb.Bound. Corners are not re-sorted.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b[0], b[1]},
		Max: orb.Point{b[2], b[3]},
	}
}

// BBoxFromBound converts an orb.Bound to a BBox.
func BBoxFromBound(b orb.Bound) BBox {
	return BBox{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
}

// Bound returns the validated corners as an orb.Bound.
func (b LngLatBounds) Bound() orb.Bound {
	return b.Bounds().Bound()
}

// MapTile returns the equivalent orb maptile. Both use the XYZ row order.
func (g Google) MapTile() maptile.Tile {
	return maptile.New(uint32(g.X), uint32(g.Y), maptile.Zoom(g.Zoom))
}

// GoogleFromMapTile validates an orb maptile as a Google tile.
func GoogleFromMapTile(t maptile.Tile) (Google, error) {
	return NewGoogle(int(t.X), int(t.Y), int(t.Z))
}
