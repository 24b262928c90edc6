package mercator

import "math"

// WorldLatLngBBox is the lat/lng extent of the single zoom 0 tile.
var WorldLatLngBBox = BBox{-180, -85.05112877980659, 180, 85.05112877980659}

// MetersToPixels converts meters to pyramid pixels at init.Zoom, which
// must be set.
func (m *Mercator) MetersToPixels(init Meters) (Pixels, error) {
	mt, err := NewMeters(init.MX, init.MY, init.Zoom)
	if err != nil {
		return Pixels{}, err
	}
	res, err := m.Resolution(mt.Zoom)
	if err != nil {
		return Pixels{}, err
	}
	px := (mt.MX + m.originShift) / res
	py := (mt.MY + m.originShift) / res
	return NewPixels(px, py, mt.Zoom.Level)
}

// PixelsToMeters converts pyramid pixels to meters.
func (m *Mercator) PixelsToMeters(init Pixels) (Meters, error) {
	p, err := NewPixels(init.PX, init.PY, init.Zoom)
	if err != nil {
		return Meters{}, err
	}
	zoom := ZoomOf(p.Zoom)
	res, err := m.Resolution(zoom)
	if err != nil {
		return Meters{}, err
	}
	mx := p.PX*res - m.originShift
	my := p.PY*res - m.originShift
	return NewMeters(mx, my, zoom)
}

// PixelsToTile returns the TMS tile covering a pixel. Pixels on a tile
// boundary belong to the lower tile. Zoom 0 is always the world tile.
func (m *Mercator) PixelsToTile(init Pixels) (Tile, error) {
	if init.Zoom == 0 {
		return Tile{}, nil
	}
	p, err := NewPixels(init.PX, init.PY, init.Zoom)
	if err != nil {
		return Tile{}, err
	}
	size := float64(m.tileSize)
	tx := int(math.Ceil(p.PX/size)) - 1
	ty := int(math.Ceil(p.PY/size)) - 1
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	return NewTile(tx, ty, p.Zoom)
}

// TileToGoogle flips a TMS tile to the Google/XYZ row order.
func (m *Mercator) TileToGoogle(init Tile) (Google, error) {
	if init.Zoom == 0 {
		return Google{}, nil
	}
	t, err := NewTile(init.TX, init.TY, init.Zoom)
	if err != nil {
		return Google{}, err
	}
	y := (1<<uint(t.Zoom) - 1) - t.TY
	return NewGoogle(t.TX, y, t.Zoom)
}

// GoogleToTile flips a Google/XYZ tile to the TMS row order.
func (m *Mercator) GoogleToTile(init Google) (Tile, error) {
	g, err := NewGoogle(init.X, init.Y, init.Zoom)
	if err != nil {
		return Tile{}, err
	}
	ty := 1<<uint(g.Zoom) - g.Y - 1
	return NewTile(g.X, ty, g.Zoom)
}

// TileBBox returns the meter extent of a TMS tile.
func (m *Mercator) TileBBox(init Tile) (BBox, error) {
	t, err := NewTile(init.TX, init.TY, init.Zoom)
	if err != nil {
		return BBox{}, err
	}
	size := m.tileSize
	lo, err := m.PixelsToMeters(Pixels{PX: float64(t.TX * size), PY: float64(t.TY * size), Zoom: t.Zoom})
	if err != nil {
		return BBox{}, err
	}
	hi, err := m.PixelsToMeters(Pixels{PX: float64((t.TX + 1) * size), PY: float64((t.TY + 1) * size), Zoom: t.Zoom})
	if err != nil {
		return BBox{}, err
	}
	return ValidateBBox([]float64{lo.MX, lo.MY, hi.MX, hi.MY})
}

// TileLatLngBBox returns the lat/lng extent of a TMS tile. Zoom 0 returns
// WorldLatLngBBox.
func (m *Mercator) TileLatLngBBox(init Tile) (BBox, error) {
	if init.Zoom == 0 {
		return WorldLatLngBBox, nil
	}
	t, err := NewTile(init.TX, init.TY, init.Zoom)
	if err != nil {
		return BBox{}, err
	}
	b, err := m.TileBBox(t)
	if err != nil {
		return BBox{}, err
	}
	zoom := ZoomOf(t.Zoom)
	lo, err := m.MetersToLatLng(Meters{MX: b[0], MY: b[1], Zoom: zoom})
	if err != nil {
		return BBox{}, err
	}
	hi, err := m.MetersToLatLng(Meters{MX: b[2], MY: b[3], Zoom: zoom})
	if err != nil {
		return BBox{}, err
	}
	return ValidateBBox([]float64{lo.Lng, lo.Lat, hi.Lng, hi.Lat})
}

// GoogleBBox returns the meter extent of a Google tile.
func (m *Mercator) GoogleBBox(init Google) (BBox, error) {
	t, err := m.GoogleToTile(init)
	if err != nil {
		return BBox{}, err
	}
	return m.TileBBox(t)
}

// GoogleLatLngBBox returns the lat/lng extent of a Google tile.
func (m *Mercator) GoogleLatLngBBox(init Google) (BBox, error) {
	t, err := m.GoogleToTile(init)
	if err != nil {
		return BBox{}, err
	}
	return m.TileLatLngBBox(t)
}
