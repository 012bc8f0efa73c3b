package sim

// TileSize is the width of one column in lateral pixels.
const TileSize = 8

// ScrollDriver accumulates sub-tile scroll and reports how many whole
// columns the generator owes.
type ScrollDriver struct {
	mark   int   // pixels scrolled since the last generated column
	offset uint8 // display scroll offset; wraps like the hardware register
}

// Reset puts the driver back at offset zero.
func (d *ScrollDriver) Reset() {
	d.mark = 0
	d.offset = 0
}

// Advance scrolls by pixels and returns the number of columns to generate.
func (d *ScrollDriver) Advance(pixels int) int {
	if pixels <= 0 {
		return 0
	}

	d.mark += pixels
	columns := 0
	if d.mark >= TileSize {
		columns = d.mark / TileSize
		d.mark %= TileSize
	}
	d.offset -= uint8(pixels)
	return columns
}

// Offset returns the display scroll offset.
func (d *ScrollDriver) Offset() uint8 { return d.offset }

// Mark returns the pixels accumulated toward the next column.
func (d *ScrollDriver) Mark() int { return d.mark }
