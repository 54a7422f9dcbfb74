package model

import "github.com/Faultbox/marionette/pkg/id"

// Index lookups. Authored id lists are small (tens to low hundreds), so
// a linear scan beats maintaining a per-instance map.

// ParameterIndex returns the index for handle. An identifier the asset
// does not contain is promoted to a stable synthetic index past the
// authored range; its value is stored but never reaches deformation.
// Promotion is idempotent: the same handle always yields the same index.
func (m *Model) ParameterIndex(handle *id.ID) int {
	for i, h := range m.paramHandles {
		if h == handle {
			return i
		}
	}
	if slot, ok := m.absentParams[handle]; ok {
		return len(m.paramHandles) + slot
	}
	slot := len(m.absentParamValues)
	m.absentParams[handle] = slot
	m.absentParamValues = append(m.absentParamValues, 0)
	return len(m.paramHandles) + slot
}

// PartIndex returns the index for handle, promoting unknown identifiers
// to synthetic indices the same way ParameterIndex does. A synthetic
// part's opacity slot starts at 1.
func (m *Model) PartIndex(handle *id.ID) int {
	for i, h := range m.partHandles {
		if h == handle {
			return i
		}
	}
	if slot, ok := m.absentParts[handle]; ok {
		return len(m.partHandles) + slot
	}
	slot := len(m.absentPartOpacities)
	m.absentParts[handle] = slot
	m.absentPartOpacities = append(m.absentPartOpacities, 1)
	return len(m.partHandles) + slot
}

// DrawableIndex returns the index for handle, or -1 when the asset has no
// such drawable. Drawables carry no settable scalar, so unknown ones are
// not promoted.
func (m *Model) DrawableIndex(handle *id.ID) int {
	for i, h := range m.drawableHandles {
		if h == handle {
			return i
		}
	}
	return -1
}

// ParameterID returns the handle of an authored parameter index.
func (m *Model) ParameterID(index int) *id.ID {
	assertIndex(index, len(m.paramHandles), "parameter")
	return m.paramHandles[index]
}

// PartID returns the handle of an authored part index.
func (m *Model) PartID(index int) *id.ID {
	assertIndex(index, len(m.partHandles), "part")
	return m.partHandles[index]
}

// DrawableID returns the handle of an authored drawable index.
func (m *Model) DrawableID(index int) *id.ID {
	assertIndex(index, len(m.drawableHandles), "drawable")
	return m.drawableHandles[index]
}

// ParameterCount returns the number of authored parameters. Synthetic
// entries are excluded.
func (m *Model) ParameterCount() int {
	return len(m.paramHandles)
}

// PartCount returns the number of authored parts. Synthetic entries are
// excluded.
func (m *Model) PartCount() int {
	return len(m.partHandles)
}

// DrawableCount returns the number of authored drawables.
func (m *Model) DrawableCount() int {
	return len(m.drawableHandles)
}

// PartChildDrawables returns the indices of the drawables whose parent is
// the given part. The slice is owned by the model; callers must not
// mutate it.
func (m *Model) PartChildDrawables(partIndex int) []int {
	assertIndex(partIndex, len(m.partHandles), "part")
	return m.partChildren[partIndex]
}

func (m *Model) isAbsentParameter(index int) bool {
	return index >= len(m.paramHandles)
}

func (m *Model) isAbsentPart(index int) bool {
	return index >= len(m.partHandles)
}

func (m *Model) absentParamSlot(index int) int {
	slot := index - len(m.paramHandles)
	assertIndex(slot, len(m.absentParamValues), "synthetic parameter")
	return slot
}

func (m *Model) absentPartSlot(index int) int {
	slot := index - len(m.partHandles)
	assertIndex(slot, len(m.absentPartOpacities), "synthetic part")
	return slot
}
