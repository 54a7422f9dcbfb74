// Package model implements the runtime state layer of a puppet instance:
// parameter values, part opacities, per-drawable and per-part overrides,
// and the precedence rules that resolve them into the values a renderer
// reads each frame.
//
// A Model borrows the snapshot owned by its deformation engine. It is the
// single writer of parameter values and part opacities between recomputes
// and owns all override and topology side-tables. Instances are
// single-threaded; drive each one from its owning goroutine.
package model

import (
	"fmt"

	"github.com/Faultbox/marionette/pkg/core"
	"github.com/Faultbox/marionette/pkg/id"
)

// Model is the mutable per-frame state of one puppet instance.
type Model struct {
	engine core.Engine
	snap   *core.Snapshot
	reg    *id.Registry

	paramHandles    []*id.ID
	partHandles     []*id.ID
	drawableHandles []*id.ID

	// Overflow tables for identifiers the loaded asset does not contain.
	// Slots are keyed by insertion order; the public index is
	// authoredCount + slot.
	absentParams        map[*id.ID]int
	absentParamValues   []float32
	absentParts         map[*id.ID]int
	absentPartOpacities []float32

	paramRepeats []repeatOverride
	drawColors   []colorOverrides
	drawCullings []cullingOverride
	partColors   []colorOverrides
	partChildren [][]int

	// Model-wide override gates.
	overrideAllMultiply bool
	overrideAllScreen   bool
	overrideAllCulling  bool
	overrideAllRepeat   bool

	savedValues []float32

	initialized bool
	released    bool
}

// NewModel creates a model over the given engine. A nil registry selects
// the process-wide default. Call Initialize once the engine's snapshot is
// populated.
func NewModel(engine core.Engine, reg *id.Registry) *Model {
	if reg == nil {
		reg = id.Default()
	}
	return &Model{
		engine:       engine,
		reg:          reg,
		absentParams: make(map[*id.ID]int),
		absentParts:  make(map[*id.ID]int),
	}
}

// Initialize enumerates the snapshot's entities, interns their
// identifiers, allocates one override record per authored parameter, part,
// and drawable, and builds the part→drawable topology. It must be called
// exactly once; a second call panics.
func (m *Model) Initialize() {
	if m.initialized {
		panic("model: Initialize called twice")
	}
	if m.released {
		panic("model: Initialize after Release")
	}
	snap := m.engine.Snapshot()
	m.snap = snap

	m.paramHandles = make([]*id.ID, snap.ParameterCount())
	for i, name := range snap.ParameterNames {
		m.paramHandles[i] = m.reg.Get(name)
	}
	m.partHandles = make([]*id.ID, snap.PartCount())
	for i, name := range snap.PartNames {
		m.partHandles[i] = m.reg.Get(name)
	}
	m.drawableHandles = make([]*id.ID, snap.DrawableCount())
	for i, name := range snap.DrawableNames {
		m.drawableHandles[i] = m.reg.Get(name)
	}

	m.paramRepeats = make([]repeatOverride, snap.ParameterCount())

	m.drawColors = make([]colorOverrides, snap.DrawableCount())
	m.drawCullings = make([]cullingOverride, snap.DrawableCount())
	for d := range m.drawColors {
		m.drawColors[d].multiply.color = core.WhiteColor
		m.drawColors[d].screen.color = core.BlackColor
		// Seed the override value with the authored behavior so enabling
		// the flag without setting a value changes nothing.
		m.drawCullings[d].culling = !snap.DrawableConstantFlags[d].Has(core.DoubleSided)
	}

	m.partColors = make([]colorOverrides, snap.PartCount())
	for p := range m.partColors {
		m.partColors[p].multiply.color = core.WhiteColor
		m.partColors[p].screen.color = core.BlackColor
	}

	// The asset hierarchy does not change post-load, so the topology is
	// built once here.
	m.partChildren = make([][]int, snap.PartCount())
	for d, parent := range snap.DrawableParentParts {
		if parent >= 0 && parent < snap.PartCount() {
			m.partChildren[parent] = append(m.partChildren[parent], d)
		}
	}

	m.initialized = true
}

// Update runs one frame: it recomputes the snapshot through the engine
// and schedules the dynamic change bits to clear on the next cycle.
func (m *Model) Update() {
	m.assertLive()
	m.engine.Recompute()
	m.snap.RequestDynamicFlagReset()
}

// SaveParameters checkpoints the current parameter values. The side
// buffer grows as needed; entries beyond its current length are appended.
func (m *Model) SaveParameters() {
	m.assertLive()
	for i, v := range m.snap.ParameterValues {
		if i < len(m.savedValues) {
			m.savedValues[i] = v
		} else {
			m.savedValues = append(m.savedValues, v)
		}
	}
}

// LoadParameters restores the last checkpoint. Only the first
// min(parameter count, saved count) values are copied; parameters beyond
// the checkpoint keep their current values.
func (m *Model) LoadParameters() {
	m.assertLive()
	n := len(m.snap.ParameterValues)
	if len(m.savedValues) < n {
		n = len(m.savedValues)
	}
	copy(m.snap.ParameterValues[:n], m.savedValues[:n])
}

// Release severs the snapshot and releases the engine. No call on the
// model is valid afterwards; releasing twice panics.
func (m *Model) Release() {
	if m.released {
		panic("model: Release called twice")
	}
	m.released = true
	m.snap = nil
	m.engine.Release()
}

// Snapshot returns the borrowed snapshot view, for consumers that read
// vertex buffers directly.
func (m *Model) Snapshot() *core.Snapshot {
	return m.snap
}

// Registry returns the identifier registry the model interns its handles
// in.
func (m *Model) Registry() *id.Registry {
	return m.reg
}

func (m *Model) assertLive() {
	if !m.initialized {
		panic("model: not initialized")
	}
	if m.released {
		panic("model: used after Release")
	}
}

func assertIndex(index, count int, kind string) {
	if index < 0 || index >= count {
		panic(fmt.Sprintf("model: %s index %d out of range [0,%d)", kind, index, count))
	}
}
