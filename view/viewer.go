package view

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
)

// ObserverMode is the camera mode of a spectating viewer.
type ObserverMode uint8

const (
	ObserverNone ObserverMode = iota
	ObserverDeathCam
	ObserverFreezeCam
	ObserverFixed
	ObserverInEye
	ObserverChase
	ObserverPOI
	ObserverRoaming
)

// Allowed returns true if the ghost can be watched in this mode. Only first and third person are allowed.
func (m ObserverMode) Allowed() bool {
	return m == ObserverInEye || m == ObserverChase
}

func (m ObserverMode) String() string {
	switch m {
	case ObserverInEye:
		return "in-eye"
	case ObserverChase:
		return "chase"
	case ObserverNone:
		return "none"
	}
	return "other"
}

// Viewer is a spectator watching a ghost.
type Viewer interface {
	// ID returns the unique ID of the viewer.
	ID() uuid.UUID
	// ObserverMode returns the current camera mode of the viewer.
	ObserverMode() ObserverMode
	// ForceObserverMode switches the viewer to the mode given.
	ForceObserverMode(mode ObserverMode)
	// StopSpectating is called when the ghost being watched goes away. Implementations may unbind
	// themselves from the ghost from within the call.
	StopSpectating()
	// Present hands the viewer what it should see of the ghost for the current tick.
	Present(p Presentation)
}

// Bindings is the ordered set of viewers bound to a ghost. Viewers are kept in the order they were bound.
type Bindings struct {
	viewers *orderedmap.OrderedMap[uuid.UUID, Viewer]
}

// NewBindings ...
func NewBindings() *Bindings {
	return &Bindings{viewers: orderedmap.NewOrderedMap[uuid.UUID, Viewer]()}
}

// Add binds the viewer. It returns false if the viewer was already bound.
func (b *Bindings) Add(v Viewer) bool {
	if _, ok := b.viewers.Get(v.ID()); ok {
		return false
	}
	b.viewers.Set(v.ID(), v)
	return true
}

// Remove unbinds the viewer. It returns false if the viewer was not bound.
func (b *Bindings) Remove(v Viewer) bool {
	return b.viewers.Delete(v.ID())
}

// Has ...
func (b *Bindings) Has(v Viewer) bool {
	_, ok := b.viewers.Get(v.ID())
	return ok
}

// Len ...
func (b *Bindings) Len() int {
	return b.viewers.Len()
}

// Snapshot returns the bound viewers at the time of the call. Changes made to the bindings while the
// snapshot is iterated over do not affect it.
func (b *Bindings) Snapshot() []Viewer {
	keys := b.viewers.Keys()
	viewers := make([]Viewer, 0, len(keys))
	for _, id := range keys {
		if v, ok := b.viewers.Get(id); ok {
			viewers = append(viewers, v)
		}
	}
	return viewers
}

// Clear unbinds every viewer.
func (b *Bindings) Clear() {
	for _, id := range b.viewers.Keys() {
		b.viewers.Delete(id)
	}
}
