package sim

import "testing"

func TestHighwaySpansAllLanes(t *testing.T) {
	for _, lane := range []int{Lane1, Lane2, Lane3, Lane4} {
		if !Highway.Top.Slot().Contains(lane) || !Highway.Bottom.Slot().Contains(lane) {
			t.Errorf("Highway should contain lane %d", lane)
		}
	}
	if Highway.Top.Min != 10 || Highway.Top.Max != 130 {
		t.Errorf("Highway bounds = [%d, %d], expected [10, 130]", Highway.Top.Min, Highway.Top.Max)
	}
}

func TestCausewayIsImpassable(t *testing.T) {
	for _, line := range []int{CausewayIn, CausewayOut} {
		p := DirtRoadPattern(line)
		for _, half := range []StripeHalf{p.Top, p.Bottom} {
			for y := 0; y <= maxLateral; y++ {
				if half.Slot().Contains(y) {
					t.Fatalf("line %d: lateral %d should not be drivable", line, y)
				}
			}
		}
	}
}

func TestWalkLinesAreDrivable(t *testing.T) {
	for line := MinWalkLine; line <= MaxWalkLine; line++ {
		p := DirtRoadPattern(line)
		if p.Top.Min > p.Top.Max || p.Bottom.Min > p.Bottom.Max {
			t.Errorf("line %d has an empty drivable range", line)
		}
		if p.Top.Tile == p.Bottom.Tile {
			t.Errorf("line %d: top and bottom should use different tiles", line)
		}
	}
}

func TestDirtRoadPatternClamps(t *testing.T) {
	if DirtRoadLines() != 9 {
		t.Fatalf("DirtRoadLines() = %d, expected 9", DirtRoadLines())
	}
	if DirtRoadPattern(-3) != DirtRoadPattern(0) {
		t.Error("negative line should clamp to the first row")
	}
	if DirtRoadPattern(42) != DirtRoadPattern(CausewayOut) {
		t.Error("line past the table should clamp to the last row")
	}
}

func TestStripePatternHalf(t *testing.T) {
	p := DirtRoadPattern(3)
	if p.Half(false) != p.Top {
		t.Error("Half(false) should be the top half")
	}
	if p.Half(true) != p.Bottom {
		t.Error("Half(true) should be the bottom half")
	}
}
