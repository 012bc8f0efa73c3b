package sim

import "errors"

// ErrOffRoad is returned when the vehicle is outside the drivable bounds of
// the column under it.
var ErrOffRoad = errors.New("sim: vehicle left the road")

// SlotIndex maps a scroll offset and a vehicle position along the track to
// the ring slot under the vehicle.
func SlotIndex(offset uint8, vehicleX int) int {
	return wrapSlot(int(offset)/TileSize + vehicleX/TileSize)
}

// CheckBounds tests the vehicle against the column it is over. A vehicle in
// the air is never off the road.
func CheckBounds(ring *ColumnRing, offset uint8, v Vehicle) error {
	if v.Jumping() {
		return nil
	}
	if !ring.At(SlotIndex(offset, v.X)).Contains(v.Y) {
		return ErrOffRoad
	}
	return nil
}
