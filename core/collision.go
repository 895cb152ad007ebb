package core

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether the two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// Collision reports whether the player's box overlaps any enemy's box.
func Collision(p *Player, enemies []*Enemy) bool {
	pb := p.Box()
	for _, e := range enemies {
		if e.Box().Overlaps(pb) {
			return true
		}
	}
	return false
}
