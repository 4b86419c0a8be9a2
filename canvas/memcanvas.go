package canvas

import (
	"sync"

	"github.com/google/uuid"
)

// MemCanvas is a thread-safe in-memory Canvas. Tests and embedded hosts use
// it as the reference implementation: the selection is settable, artifacts
// are retained with their last-applied params, and Writes counts every
// successful create or update so refresh semantics can be asserted.
type MemCanvas struct {
	mu        sync.Mutex
	selection []Node
	vectors   map[string]VectorParams
	writes    int
}

// NewMemCanvas returns an empty in-memory canvas.
func NewMemCanvas() *MemCanvas {
	return &MemCanvas{vectors: make(map[string]VectorParams)}
}

// SetSelection replaces the current selection.
func (c *MemCanvas) SetSelection(nodes []Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = append([]Node(nil), nodes...)
}

// Selection returns a copy of the current selection.
func (c *MemCanvas) Selection() []Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Node(nil), c.selection...)
}

// CreateVector stores a new vector artifact under a fresh uuid.
func (c *MemCanvas) CreateVector(p VectorParams) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := uuid.NewString()
	c.vectors[id] = p
	c.writes++

	return id, nil
}

// UpdateVector replaces an existing artifact's params in place.
func (c *MemCanvas) UpdateVector(id string, p VectorParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vectors[id]; !ok {
		return ErrNoSuchNode
	}
	c.vectors[id] = p
	c.writes++

	return nil
}

// Vector returns the last params applied to the artifact with the given id.
func (c *MemCanvas) Vector(id string) (VectorParams, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.vectors[id]

	return p, ok
}

// Writes returns how many successful artifact writes have happened.
func (c *MemCanvas) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writes
}

var _ Canvas = (*MemCanvas)(nil)
