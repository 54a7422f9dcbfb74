// Package core defines the per-frame model snapshot shared between the
// deformation engine and the runtime state layer.
//
// The snapshot is a set of flat arrays owned by the engine that produced
// it. The state layer (pkg/model) borrows a view of it: it holds indices
// into the arrays and writes parameter values and part opacities back,
// with single-writer discipline per frame.
package core

import "github.com/Faultbox/marionette/pkg/math"

// Color is an RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Default channel values for the two blend color kinds.
var (
	// WhiteColor is the neutral multiply color.
	WhiteColor = Color{1, 1, 1, 1}
	// BlackColor is the neutral screen color.
	BlackColor = Color{0, 0, 0, 1}
)

// ConstantFlags are authored per-drawable bits. They never change after
// load.
type ConstantFlags uint8

const (
	// BlendAdditive selects additive blending.
	BlendAdditive ConstantFlags = 1 << iota
	// BlendMultiplicative selects multiplicative blending.
	BlendMultiplicative
	// DoubleSided disables back-face culling by default.
	DoubleSided
	// InvertedMask inverts the drawable's clipping mask.
	InvertedMask
)

// Has reports whether bit is set.
func (f ConstantFlags) Has(bit ConstantFlags) bool {
	return f&bit != 0
}

// BlendMode is the resolved blending mode of a drawable.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendMultiply
)

// BlendMode resolves the constant flags into a blend mode. Additive wins
// if both blend bits are set.
func (f ConstantFlags) BlendMode() BlendMode {
	switch {
	case f.Has(BlendAdditive):
		return BlendAdd
	case f.Has(BlendMultiplicative):
		return BlendMultiply
	default:
		return BlendNormal
	}
}

// DynamicFlags are per-drawable bits recomputed on every engine update.
type DynamicFlags uint8

const (
	// Visible is set while the drawable should be drawn.
	Visible DynamicFlags = 1 << iota
	// VisibilityChanged marks a visibility flip since the last update.
	VisibilityChanged
	// OpacityChanged marks an opacity change since the last update.
	OpacityChanged
	// DrawOrderChanged marks a draw order change since the last update.
	DrawOrderChanged
	// RenderOrderChanged marks a render order change since the last update.
	RenderOrderChanged
	// VertexPositionsChanged marks deformed vertex movement since the last
	// update.
	VertexPositionsChanged
	// BlendColorChanged marks a blend color change since the last update.
	BlendColorChanged
)

// changedBits are the flags cleared by a dynamic-flag reset. Visible is a
// state bit, not a change notification, and survives resets.
const changedBits = VisibilityChanged | OpacityChanged | DrawOrderChanged |
	RenderOrderChanged | VertexPositionsChanged | BlendColorChanged

// Has reports whether bit is set.
func (f DynamicFlags) Has(bit DynamicFlags) bool {
	return f&bit != 0
}

// Snapshot is the flat-array state of one model instance. All slices of
// one entity kind share the same length and index space.
type Snapshot struct {
	ParameterNames   []string
	ParameterMin     []float32
	ParameterMax     []float32
	ParameterDefault []float32
	ParameterValues  []float32
	ParameterRepeats []bool

	PartNames     []string
	PartOpacities []float32

	DrawableNames           []string
	DrawableParentParts     []int // -1 for drawables without a parent part
	DrawableConstantFlags   []ConstantFlags
	DrawableDynamicFlags    []DynamicFlags
	DrawableVertexPositions [][]math.Vec2
	DrawableVertexUVs       [][]math.Vec2
	DrawableIndices         [][]uint16
	DrawableDrawOrders      []int
	DrawableRenderOrders    []int
	DrawableTextureIndices  []int
	DrawableOpacities       []float32
	DrawableMultiplyColors  []Color
	DrawableScreenColors    []Color

	pendingFlagReset bool
}

// ParameterCount returns the number of authored parameters.
func (s *Snapshot) ParameterCount() int {
	return len(s.ParameterValues)
}

// PartCount returns the number of authored parts.
func (s *Snapshot) PartCount() int {
	return len(s.PartOpacities)
}

// DrawableCount returns the number of authored drawables.
func (s *Snapshot) DrawableCount() int {
	return len(s.DrawableDynamicFlags)
}

// RequestDynamicFlagReset schedules the changed bits of every drawable to
// be cleared at the start of the next Recompute. Flags set by the current
// frame stay readable until then.
func (s *Snapshot) RequestDynamicFlagReset() {
	s.pendingFlagReset = true
}
