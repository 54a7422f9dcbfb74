package model

import "github.com/Faultbox/marionette/pkg/core"

// Model-wide override gates. When a gate is set, every drawable resolves
// to its stored override value for that kind, whether or not its own flag
// is set.

// SetModelMultiplyColorOverride sets the model-wide multiply color gate.
func (m *Model) SetModelMultiplyColorOverride(enabled bool) {
	m.overrideAllMultiply = enabled
}

// ModelMultiplyColorOverridden reports the model-wide multiply color
// gate.
func (m *Model) ModelMultiplyColorOverridden() bool {
	return m.overrideAllMultiply
}

// SetModelScreenColorOverride sets the model-wide screen color gate.
func (m *Model) SetModelScreenColorOverride(enabled bool) {
	m.overrideAllScreen = enabled
}

// ModelScreenColorOverridden reports the model-wide screen color gate.
func (m *Model) ModelScreenColorOverridden() bool {
	return m.overrideAllScreen
}

// SetModelCullingOverride sets the model-wide culling gate.
func (m *Model) SetModelCullingOverride(enabled bool) {
	m.overrideAllCulling = enabled
}

// ModelCullingOverridden reports the model-wide culling gate.
func (m *Model) ModelCullingOverridden() bool {
	return m.overrideAllCulling
}

// SetModelParameterRepeatOverride sets the model-wide repeat gate. The
// gate routes parameter writes to each parameter's own override repeat
// value; it carries no repeat value of its own.
func (m *Model) SetModelParameterRepeatOverride(enabled bool) {
	m.overrideAllRepeat = enabled
}

// ModelParameterRepeatOverridden reports the model-wide repeat gate.
func (m *Model) ModelParameterRepeatOverridden() bool {
	return m.overrideAllRepeat
}

// Per-parameter repeat overrides.

// SetParameterRepeatOverride sets a parameter's repeat override flag.
func (m *Model) SetParameterRepeatOverride(index int, enabled bool) {
	assertIndex(index, len(m.paramHandles), "parameter")
	m.paramRepeats[index].overridden = enabled
}

// ParameterRepeatOverridden reports a parameter's repeat override flag.
func (m *Model) ParameterRepeatOverridden(index int) bool {
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.paramRepeats[index].overridden
}

// SetParameterRepeat sets a parameter's override repeat value. The value
// only takes effect while the model-wide or the parameter's own override
// flag is set.
func (m *Model) SetParameterRepeat(index int, repeat bool) {
	assertIndex(index, len(m.paramHandles), "parameter")
	m.paramRepeats[index].repeat = repeat
}

// ParameterRepeat returns the resolved repeat policy of a parameter: the
// override value when an override gate is open, the asset-authored bit
// otherwise.
func (m *Model) ParameterRepeat(index int) bool {
	assertIndex(index, len(m.paramHandles), "parameter")
	return repeatPolicy(m.overrideAllRepeat, m.paramRepeats[index], m.snap.ParameterRepeats[index])
}

// Per-drawable color overrides.

// SetDrawableMultiplyColorOverride sets a drawable's multiply color
// override flag. The stored color is untouched.
func (m *Model) SetDrawableMultiplyColorOverride(index int, enabled bool) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawColors[index].multiply.overridden = enabled
}

// DrawableMultiplyColorOverridden reports a drawable's multiply color
// override flag.
func (m *Model) DrawableMultiplyColorOverridden(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.drawColors[index].multiply.overridden
}

// SetDrawableMultiplyColor sets a drawable's override multiply color. The
// flag is untouched.
func (m *Model) SetDrawableMultiplyColor(index int, c core.Color) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawColors[index].multiply.color = c
}

// DrawableMultiplyColor returns the resolved multiply color of a
// drawable.
func (m *Model) DrawableMultiplyColor(index int) core.Color {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return resolveColor(m.overrideAllMultiply, m.drawColors[index].multiply, m.snap.DrawableMultiplyColors[index])
}

// SetDrawableScreenColorOverride sets a drawable's screen color override
// flag.
func (m *Model) SetDrawableScreenColorOverride(index int, enabled bool) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawColors[index].screen.overridden = enabled
}

// DrawableScreenColorOverridden reports a drawable's screen color
// override flag.
func (m *Model) DrawableScreenColorOverridden(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.drawColors[index].screen.overridden
}

// SetDrawableScreenColor sets a drawable's override screen color.
func (m *Model) SetDrawableScreenColor(index int, c core.Color) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawColors[index].screen.color = c
}

// DrawableScreenColor returns the resolved screen color of a drawable.
func (m *Model) DrawableScreenColor(index int) core.Color {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return resolveColor(m.overrideAllScreen, m.drawColors[index].screen, m.snap.DrawableScreenColors[index])
}

// Per-drawable culling overrides.

// SetDrawableCullingOverride sets a drawable's culling override flag.
func (m *Model) SetDrawableCullingOverride(index int, enabled bool) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawCullings[index].overridden = enabled
}

// DrawableCullingOverridden reports a drawable's culling override flag.
func (m *Model) DrawableCullingOverridden(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.drawCullings[index].overridden
}

// SetDrawableCulling sets a drawable's override culling value.
func (m *Model) SetDrawableCulling(index int, culling bool) {
	assertIndex(index, len(m.drawableHandles), "drawable")
	m.drawCullings[index].culling = culling
}

// DrawableCulling returns the resolved culling bit of a drawable.
func (m *Model) DrawableCulling(index int) bool {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return resolveCulling(m.overrideAllCulling, m.drawCullings[index], m.snap.DrawableConstantFlags[index])
}

// Per-part color overrides. Part colors are not drawn directly; they
// cascade onto the part's child drawables.

// SetPartMultiplyColor sets a part's override multiply color. While the
// part's flag is set, the color is also written into every child
// drawable's override record.
func (m *Model) SetPartMultiplyColor(index int, c core.Color) {
	assertIndex(index, len(m.partHandles), "part")
	m.partColors[index].multiply.color = c
	if m.partColors[index].multiply.overridden {
		for _, d := range m.partChildren[index] {
			m.drawColors[d].multiply.color = c
		}
	}
}

// PartMultiplyColor returns a part's stored override multiply color.
func (m *Model) PartMultiplyColor(index int) core.Color {
	assertIndex(index, len(m.partHandles), "part")
	return m.partColors[index].multiply.color
}

// SetPartMultiplyColorOverride sets a part's multiply color override
// flag. Enabling cascades the flag and the part's current color onto
// every child drawable. Disabling touches only the part's own flag: the
// children keep the flags and colors they own. The asymmetry is
// load-bearing; authoring tools rely on it.
func (m *Model) SetPartMultiplyColorOverride(index int, enabled bool) {
	assertIndex(index, len(m.partHandles), "part")
	m.partColors[index].multiply.overridden = enabled
	if enabled {
		c := m.partColors[index].multiply.color
		for _, d := range m.partChildren[index] {
			m.drawColors[d].multiply.overridden = true
			m.drawColors[d].multiply.color = c
		}
	}
}

// PartMultiplyColorOverridden reports a part's multiply color override
// flag.
func (m *Model) PartMultiplyColorOverridden(index int) bool {
	assertIndex(index, len(m.partHandles), "part")
	return m.partColors[index].multiply.overridden
}

// SetPartScreenColor sets a part's override screen color, cascading like
// SetPartMultiplyColor.
func (m *Model) SetPartScreenColor(index int, c core.Color) {
	assertIndex(index, len(m.partHandles), "part")
	m.partColors[index].screen.color = c
	if m.partColors[index].screen.overridden {
		for _, d := range m.partChildren[index] {
			m.drawColors[d].screen.color = c
		}
	}
}

// PartScreenColor returns a part's stored override screen color.
func (m *Model) PartScreenColor(index int) core.Color {
	assertIndex(index, len(m.partHandles), "part")
	return m.partColors[index].screen.color
}

// SetPartScreenColorOverride sets a part's screen color override flag,
// cascading like SetPartMultiplyColorOverride.
func (m *Model) SetPartScreenColorOverride(index int, enabled bool) {
	assertIndex(index, len(m.partHandles), "part")
	m.partColors[index].screen.overridden = enabled
	if enabled {
		c := m.partColors[index].screen.color
		for _, d := range m.partChildren[index] {
			m.drawColors[d].screen.overridden = true
			m.drawColors[d].screen.color = c
		}
	}
}

// PartScreenColorOverridden reports a part's screen color override flag.
func (m *Model) PartScreenColorOverridden(index int) bool {
	assertIndex(index, len(m.partHandles), "part")
	return m.partColors[index].screen.overridden
}
