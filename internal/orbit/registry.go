package orbit

// Registry maps body identifiers to their current scene positions.
// The orbit model is its only writer; everything else reads.
type Registry struct {
	positions map[string]Vec3
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{positions: make(map[string]Vec3)}
}

// Set overwrites the position of a body.
func (r *Registry) Set(id string, pos Vec3) {
	r.positions[id] = pos
}

// Get returns a body's position. ok is false if the body has never been published.
func (r *Registry) Get(id string) (Vec3, bool) {
	pos, ok := r.positions[id]
	return pos, ok
}

// Len returns the number of published bodies.
func (r *Registry) Len() int {
	return len(r.positions)
}

// Snapshot returns a copy of all positions.
func (r *Registry) Snapshot() map[string]Vec3 {
	out := make(map[string]Vec3, len(r.positions))
	for id, pos := range r.positions {
		out[id] = pos
	}
	return out
}
