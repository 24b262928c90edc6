package mercator

import "strings"

// TileToQuadKey encodes a TMS tile as a Microsoft QuadKey. Zoom 0 has no
// QuadKey and yields the empty string.
func (m *Mercator) TileToQuadKey(init Tile) (string, error) {
	if init.Zoom == 0 {
		return "", nil
	}
	t, err := NewTile(init.TX, init.TY, init.Zoom)
	if err != nil {
		return "", err
	}

	ty := (1<<uint(t.Zoom) - 1) - t.TY
	var sb strings.Builder
	sb.Grow(t.Zoom)
	for i := t.Zoom; i > 0; i-- {
		digit := byte('0')
		mask := 1 << uint(i-1)
		if t.TX&mask != 0 {
			digit++
		}
		if ty&mask != 0 {
			digit += 2
		}
		sb.WriteByte(digit)
	}
	return sb.String(), nil
}

// GoogleToQuadKey encodes a Google tile as a QuadKey.
func (m *Mercator) GoogleToQuadKey(init Google) (string, error) {
	t, err := m.GoogleToTile(init)
	if err != nil {
		return "", err
	}
	return m.TileToQuadKey(t)
}

// QuadKeyToGoogle decodes a QuadKey. The zoom is the key length.
func (m *Mercator) QuadKeyToGoogle(quadkey string) (Google, error) {
	zoom := len(quadkey)
	if zoom > MaxZoom {
		return Google{}, fail(ErrRange, "QuadKey", "zoom", "QuadKey <zoom> cannot be greater than %d", MaxZoom)
	}

	var x, y int
	for i := zoom; i > 0; i-- {
		mask := 1 << uint(i-1)
		switch quadkey[zoom-i] {
		case '0':
		case '1':
			x |= mask
		case '2':
			y |= mask
		case '3':
			x |= mask
			y |= mask
		default:
			return Google{}, fail(ErrInvalidQuadKey, "QuadKey", "", "Invalid QuadKey digit sequence %q", quadkey)
		}
	}
	return NewGoogle(x, y, zoom)
}

// QuadKeyToTile decodes a QuadKey into a TMS tile.
func (m *Mercator) QuadKeyToTile(quadkey string) (Tile, error) {
	g, err := m.QuadKeyToGoogle(quadkey)
	if err != nil {
		return Tile{}, err
	}
	return m.GoogleToTile(g)
}
