package core

// StaticEngine is an in-memory Engine over a prebuilt snapshot. It does
// no mesh deformation; Recompute propagates part opacities to their child
// drawables and maintains visibility and the changed bits, which is
// enough to drive the state layer and its consumers.
type StaticEngine struct {
	snap *Snapshot

	prevValues    []float32
	prevOpacities []float32
	prevVisible   []bool

	released bool
}

var _ Engine = (*StaticEngine)(nil)

// NewStaticEngine wraps snap. The engine takes ownership of the snapshot
// storage until Release.
func NewStaticEngine(snap *Snapshot) *StaticEngine {
	e := &StaticEngine{
		snap:          snap,
		prevValues:    make([]float32, snap.ParameterCount()),
		prevOpacities: make([]float32, snap.DrawableCount()),
		prevVisible:   make([]bool, snap.DrawableCount()),
	}
	copy(e.prevValues, snap.ParameterValues)
	for d := range snap.DrawableOpacities {
		e.prevOpacities[d] = snap.DrawableOpacities[d]
		e.prevVisible[d] = snap.DrawableDynamicFlags[d].Has(Visible)
	}
	return e
}

// Snapshot returns the wrapped snapshot.
func (e *StaticEngine) Snapshot() *Snapshot {
	return e.snap
}

// Recompute applies a pending dynamic-flag reset, then re-derives drawable
// opacity and visibility from part opacities and marks the changed bits.
func (e *StaticEngine) Recompute() {
	if e.released {
		panic("core: Recompute after Release")
	}
	s := e.snap

	if s.pendingFlagReset {
		for d := range s.DrawableDynamicFlags {
			s.DrawableDynamicFlags[d] &^= changedBits
		}
		s.pendingFlagReset = false
	}

	valuesChanged := false
	for i, v := range s.ParameterValues {
		if v != e.prevValues[i] {
			valuesChanged = true
		}
		e.prevValues[i] = v
	}

	for d := range s.DrawableDynamicFlags {
		opacity := float32(1)
		if parent := s.DrawableParentParts[d]; parent >= 0 {
			opacity = s.PartOpacities[parent]
		}
		s.DrawableOpacities[d] = opacity

		visible := opacity > 0
		flags := s.DrawableDynamicFlags[d]
		if visible {
			flags |= Visible
		} else {
			flags &^= Visible
		}
		if visible != e.prevVisible[d] {
			flags |= VisibilityChanged
		}
		if opacity != e.prevOpacities[d] {
			flags |= OpacityChanged
		}
		if valuesChanged {
			flags |= VertexPositionsChanged
		}
		s.DrawableDynamicFlags[d] = flags

		e.prevOpacities[d] = opacity
		e.prevVisible[d] = visible
	}
}

// Release drops the snapshot. Releasing twice panics.
func (e *StaticEngine) Release() {
	if e.released {
		panic("core: Release called twice")
	}
	e.released = true
	e.snap = nil
	e.prevValues = nil
	e.prevOpacities = nil
	e.prevVisible = nil
}
