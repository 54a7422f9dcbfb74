package model

import (
	"github.com/Faultbox/marionette/pkg/core"
	"github.com/Faultbox/marionette/pkg/id"
	"github.com/Faultbox/marionette/pkg/math"
)

// ParameterMin returns the authored minimum of a parameter.
func (m *Model) ParameterMin(index int) float32 {
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.snap.ParameterMin[index]
}

// ParameterMax returns the authored maximum of a parameter.
func (m *Model) ParameterMax(index int) float32 {
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.snap.ParameterMax[index]
}

// ParameterDefault returns the authored default value of a parameter.
func (m *Model) ParameterDefault(index int) float32 {
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.snap.ParameterDefault[index]
}

// ParameterValue returns the current value of a parameter. Synthetic
// indices read from the overflow table.
func (m *Model) ParameterValue(index int) float32 {
	if m.isAbsentParameter(index) {
		return m.absentParamValues[m.absentParamSlot(index)]
	}
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.snap.ParameterValues[index]
}

// ParameterValueByID returns the current value for handle, promoting an
// unknown identifier to a synthetic entry.
func (m *Model) ParameterValueByID(handle *id.ID) float32 {
	return m.ParameterValue(m.ParameterIndex(handle))
}

// SetParameterValue writes value into a parameter, blended into the
// current value by weight (1 is a pure overwrite). The value is first
// wrapped or clamped into the authored range per the resolved repeat
// policy. Synthetic indices store the blended value as-is; no range
// policy applies to them and deformation never reads them.
func (m *Model) SetParameterValue(index int, value, weight float32) {
	if m.isAbsentParameter(index) {
		slot := m.absentParamSlot(index)
		m.absentParamValues[slot] = blendValue(m.absentParamValues[slot], value, weight)
		return
	}
	assertIndex(index, len(m.paramHandles), "parameter")

	min := m.snap.ParameterMin[index]
	max := m.snap.ParameterMax[index]
	if repeatPolicy(m.overrideAllRepeat, m.paramRepeats[index], m.snap.ParameterRepeats[index]) {
		value = wrapValue(value, min, max)
	} else {
		value = clampValue(value, min, max)
	}
	m.snap.ParameterValues[index] = blendValue(m.snap.ParameterValues[index], value, weight)
}

// SetParameterValueByID is SetParameterValue addressed by handle.
func (m *Model) SetParameterValueByID(handle *id.ID, value, weight float32) {
	m.SetParameterValue(m.ParameterIndex(handle), value, weight)
}

// AddParameterValue adds value*weight to the current value, subject to
// the same range policy as SetParameterValue.
func (m *Model) AddParameterValue(index int, value, weight float32) {
	m.SetParameterValue(index, m.ParameterValue(index)+value*weight, 1)
}

// AddParameterValueByID is AddParameterValue addressed by handle.
func (m *Model) AddParameterValueByID(handle *id.ID, value, weight float32) {
	m.AddParameterValue(m.ParameterIndex(handle), value, weight)
}

// MultiplyParameterValue scales the current value by
// 1 + (value-1)*weight, subject to the same range policy as
// SetParameterValue.
func (m *Model) MultiplyParameterValue(index int, value, weight float32) {
	m.SetParameterValue(index, m.ParameterValue(index)*(1+(value-1)*weight), 1)
}

// MultiplyParameterValueByID is MultiplyParameterValue addressed by
// handle.
func (m *Model) MultiplyParameterValueByID(handle *id.ID, value, weight float32) {
	m.MultiplyParameterValue(m.ParameterIndex(handle), value, weight)
}

// PartOpacity returns the opacity of a part. Synthetic indices read from
// the overflow table.
func (m *Model) PartOpacity(index int) float32 {
	if m.isAbsentPart(index) {
		return m.absentPartOpacities[m.absentPartSlot(index)]
	}
	assertIndex(index, len(m.partHandles), "part")
	return m.snap.PartOpacities[index]
}

// PartOpacityByID returns the opacity for handle, promoting an unknown
// identifier to a synthetic entry.
func (m *Model) PartOpacityByID(handle *id.ID) float32 {
	return m.PartOpacity(m.PartIndex(handle))
}

// SetPartOpacity writes a part's opacity. Synthetic entries are stored
// but never reach deformation.
func (m *Model) SetPartOpacity(index int, opacity float32) {
	if m.isAbsentPart(index) {
		m.absentPartOpacities[m.absentPartSlot(index)] = opacity
		return
	}
	assertIndex(index, len(m.partHandles), "part")
	m.snap.PartOpacities[index] = opacity
}

// SetPartOpacityByID is SetPartOpacity addressed by handle.
func (m *Model) SetPartOpacityByID(handle *id.ID, opacity float32) {
	m.SetPartOpacity(m.PartIndex(handle), opacity)
}

// Drawable read accessors. All take authored indices; consumers get them
// from DrawableIndex or by enumerating DrawableCount.

// DrawableVertexPositions returns the deformed vertex positions of a
// drawable. The slice is owned by the snapshot.
func (m *Model) DrawableVertexPositions(index int) []math.Vec2 {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableVertexPositions[index]
}

// DrawableVertexUVs returns the texture coordinates of a drawable.
func (m *Model) DrawableVertexUVs(index int) []math.Vec2 {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableVertexUVs[index]
}

// DrawableTriangleIndices returns the triangle index buffer of a
// drawable.
func (m *Model) DrawableTriangleIndices(index int) []uint16 {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableIndices[index]
}

// DrawableBounds returns the axis-aligned bounds of a drawable's deformed
// vertices, for hit-testing.
func (m *Model) DrawableBounds(index int) math.Bounds {
	return math.BoundsOf(m.DrawableVertexPositions(index))
}

// DrawableDrawOrder returns the authored draw order of a drawable.
func (m *Model) DrawableDrawOrder(index int) int {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableDrawOrders[index]
}

// DrawableRenderOrder returns the current render order of a drawable.
func (m *Model) DrawableRenderOrder(index int) int {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableRenderOrders[index]
}

// DrawableTextureIndex returns the texture slot of a drawable.
func (m *Model) DrawableTextureIndex(index int) int {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableTextureIndices[index]
}

// DrawableOpacity returns the current opacity of a drawable.
func (m *Model) DrawableOpacity(index int) float32 {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableOpacities[index]
}

// DrawableParentPart returns the parent part index of a drawable, -1 if
// it has none.
func (m *Model) DrawableParentPart(index int) int {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableParentParts[index]
}

// DrawableBlendMode returns the authored blend mode of a drawable.
func (m *Model) DrawableBlendMode(index int) core.BlendMode {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableConstantFlags[index].BlendMode()
}

// DrawableInvertedMask reports whether the drawable's clipping mask is
// inverted.
func (m *Model) DrawableInvertedMask(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableConstantFlags[index].Has(core.InvertedMask)
}

// DrawableDoubleSided reports whether the drawable is authored
// double-sided.
func (m *Model) DrawableDoubleSided(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableConstantFlags[index].Has(core.DoubleSided)
}

// DrawableVisible reports whether the drawable should be drawn this
// frame.
func (m *Model) DrawableVisible(index int) bool {
	return m.drawableDynamic(index, core.Visible)
}

// DrawableVisibilityChanged reports a visibility flip since the previous
// update.
func (m *Model) DrawableVisibilityChanged(index int) bool {
	return m.drawableDynamic(index, core.VisibilityChanged)
}

// DrawableOpacityChanged reports an opacity change since the previous
// update.
func (m *Model) DrawableOpacityChanged(index int) bool {
	return m.drawableDynamic(index, core.OpacityChanged)
}

// DrawableDrawOrderChanged reports a draw order change since the previous
// update.
func (m *Model) DrawableDrawOrderChanged(index int) bool {
	return m.drawableDynamic(index, core.DrawOrderChanged)
}

// DrawableRenderOrderChanged reports a render order change since the
// previous update.
func (m *Model) DrawableRenderOrderChanged(index int) bool {
	return m.drawableDynamic(index, core.RenderOrderChanged)
}

// DrawableVertexPositionsChanged reports deformed vertex movement since
// the previous update.
func (m *Model) DrawableVertexPositionsChanged(index int) bool {
	return m.drawableDynamic(index, core.VertexPositionsChanged)
}

// DrawableBlendColorChanged reports a blend color change since the
// previous update.
func (m *Model) DrawableBlendColorChanged(index int) bool {
	return m.drawableDynamic(index, core.BlendColorChanged)
}

func (m *Model) drawableDynamic(index int, bit core.DynamicFlags) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.snap.DrawableDynamicFlags[index].Has(bit)
}
