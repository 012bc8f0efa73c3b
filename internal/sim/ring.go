package sim

// RingCapacity is the number of column slots kept for collision checks:
// the 28 visible columns plus a small margin.
const RingCapacity = 32

// ringStart is the slot the first generated column lands in.
const ringStart = 30

// ColumnSlot holds the drivable lateral bounds of one generated column.
type ColumnSlot struct {
	Min int
	Max int
}

// Contains reports whether lateral position y is on the road. Both bounds
// are inclusive.
func (c ColumnSlot) Contains(y int) bool {
	return y >= c.Min && y <= c.Max
}

// ColumnRing is a fixed-size circular store of column bounds. New columns
// are written at a cursor that moves backwards, matching the direction the
// display scrolls.
type ColumnRing struct {
	slots  [RingCapacity]ColumnSlot
	cursor int
}

// NewColumnRing creates an empty ring with the cursor at its start slot.
func NewColumnRing() *ColumnRing {
	r := &ColumnRing{}
	r.Reset()
	return r
}

// Reset clears every slot and rewinds the cursor.
func (r *ColumnRing) Reset() {
	r.slots = [RingCapacity]ColumnSlot{}
	r.cursor = ringStart
}

// Write stores a slot at the cursor, moves the cursor back by one and
// returns the index that was written.
func (r *ColumnRing) Write(slot ColumnSlot) int {
	idx := r.cursor
	r.slots[idx] = slot
	r.cursor = wrapSlot(r.cursor - 1)
	return idx
}

// At returns the slot at index i. Any integer is accepted; it is reduced
// modulo the capacity.
func (r *ColumnRing) At(i int) ColumnSlot {
	return r.slots[wrapSlot(i)]
}

// Cursor returns the index the next Write will use.
func (r *ColumnRing) Cursor() int {
	return r.cursor
}

// Slots returns a copy of the ring contents.
func (r *ColumnRing) Slots() [RingCapacity]ColumnSlot {
	return r.slots
}

func wrapSlot(i int) int {
	i %= RingCapacity
	if i < 0 {
		i += RingCapacity
	}
	return i
}
