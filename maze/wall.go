package maze

// Render labels for wall variants.
const (
	wallLabel        = "Wall"
	crackedWallLabel = "Cracked Wall"
	bombedWallLabel  = "Bombed Wall"
)

// Wall is the plain solid boundary of a room side. It carries no state.
type Wall struct{}

// NewWall returns a plain wall.
func NewWall() *Wall { return &Wall{} }

// Kind returns the variant name "Wall".
func (*Wall) Kind() string { return "Wall" }

// Render returns the fixed label "Wall". It never fails.
func (*Wall) Render() (string, error) { return wallLabel, nil }

// BombedWall is a wall that may have been damaged by a bomb.
// Its render text distinguishes the detonated state from the merely
// cracked default the bombed kit installs.
type BombedWall struct {
	bombed bool
}

// NewBombedWall returns a bombed-kit wall; bombed selects the detonated
// state, and false (the kit default) yields a cracked wall.
func NewBombedWall(bombed bool) *BombedWall {
	return &BombedWall{bombed: bombed}
}

// Bombed reports whether the wall has been detonated.
func (w *BombedWall) Bombed() bool { return w.bombed }

// Kind returns the variant name "BombedWall".
func (*BombedWall) Kind() string { return "BombedWall" }

// Render returns "Bombed Wall" when detonated and "Cracked Wall" otherwise.
// It never fails.
func (w *BombedWall) Render() (string, error) {
	if w.bombed {
		return bombedWallLabel, nil
	}
	return crackedWallLabel, nil
}
