package core

// fixedSource replays a fixed sequence of draws, cycling when exhausted.
type fixedSource struct {
	vals []float64
	i    int
}

func newFixedSource(vals ...float64) *fixedSource {
	return &fixedSource{vals: vals}
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

type drawCall struct {
	id   SpriteID
	x, y float64
}

// recordingSurface collects draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawSprite(id SpriteID, x, y float64) {
	r.calls = append(r.calls, drawCall{id: id, x: x, y: y})
}
