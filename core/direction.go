package core

// Direction is a discrete input token.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// ParseDirection maps "left", "right", "up" and "down" to a Direction.
// Anything else is DirNone, which moves nothing.
func ParseDirection(token string) Direction {
	switch token {
	case "left":
		return DirLeft
	case "right":
		return DirRight
	case "up":
		return DirUp
	case "down":
		return DirDown
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}
