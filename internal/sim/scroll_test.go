package sim

import "testing"

func TestScrollDriverAdvance(t *testing.T) {
	tests := []struct {
		name    string
		steps   []int
		columns int
		mark    int
		offset  uint8
	}{
		{"nothing", []int{0}, 0, 0, 0},
		{"sub tile", []int{3, 4}, 0, 7, 249},
		{"one tile", []int{4, 4}, 1, 0, 248},
		{"carry", []int{5, 5}, 1, 2, 246},
		{"several tiles at once", []int{17}, 2, 1, 239},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d ScrollDriver
			columns := 0
			for _, px := range tc.steps {
				columns += d.Advance(px)
			}
			if columns != tc.columns {
				t.Errorf("columns = %d, expected %d", columns, tc.columns)
			}
			if d.Mark() != tc.mark {
				t.Errorf("Mark() = %d, expected %d", d.Mark(), tc.mark)
			}
			if d.Offset() != tc.offset {
				t.Errorf("Offset() = %d, expected %d", d.Offset(), tc.offset)
			}
		})
	}
}

func TestScrollDriverPreRoll(t *testing.T) {
	var d ScrollDriver
	columns := 0
	for i := 0; i < DefaultPreRoll; i++ {
		columns += d.Advance(1)
	}
	if columns != DefaultPreRoll/TileSize {
		t.Errorf("columns = %d, expected %d", columns, DefaultPreRoll/TileSize)
	}
	if d.Offset() != 16 {
		t.Errorf("Offset() = %d, expected 16", d.Offset())
	}

	d.Reset()
	if d.Offset() != 0 || d.Mark() != 0 {
		t.Error("Reset should zero the driver")
	}
}
