package model

import (
	"testing"

	"github.com/Faultbox/marionette/pkg/core"
	"github.com/Faultbox/marionette/pkg/id"
)

// testModel builds a model over a small asset: two parameters, one part,
// two drawables parented to that part.
func testModel(t *testing.T) (*Model, *id.Registry) {
	t.Helper()
	snap := &core.Snapshot{
		ParameterNames:   []string{"Angle", "MouthOpen"},
		ParameterMin:     []float32{-30, 0},
		ParameterMax:     []float32{30, 1},
		ParameterDefault: []float32{0, 0},
		ParameterValues:  []float32{0, 0},
		ParameterRepeats: []bool{false, false},

		PartNames:     []string{"PartHead"},
		PartOpacities: []float32{1},

		DrawableNames:          []string{"DrawableFace", "DrawableHair"},
		DrawableParentParts:    []int{0, 0},
		DrawableConstantFlags:  []core.ConstantFlags{0, core.DoubleSided},
		DrawableDynamicFlags:   []core.DynamicFlags{core.Visible, core.Visible},
		DrawableDrawOrders:     []int{500, 500},
		DrawableRenderOrders:   []int{0, 1},
		DrawableTextureIndices: []int{0, 0},
		DrawableOpacities:      []float32{1, 1},
		DrawableMultiplyColors: []core.Color{{R: 0.5, G: 0.5, B: 0.5, A: 1}, core.WhiteColor},
		DrawableScreenColors:   []core.Color{core.BlackColor, core.BlackColor},
	}
	reg := id.NewRegistry()
	m := NewModel(core.NewStaticEngine(snap), reg)
	m.Initialize()
	return m, reg
}

func TestSetParameterValueClamps(t *testing.T) {
	m, reg := testModel(t)

	m.SetParameterValueByID(reg.Get("Angle"), 45, 1)
	if got := m.ParameterValueByID(reg.Get("Angle")); got != 30 {
		t.Errorf("value after clamped set = %v, want 30", got)
	}

	m.SetParameterValue(0, -100, 1)
	if got := m.ParameterValue(0); got != -30 {
		t.Errorf("value after clamped set below min = %v, want -30", got)
	}
}

func TestSetParameterValueRepeats(t *testing.T) {
	m, _ := testModel(t)
	idx := 0

	m.SetParameterRepeatOverride(idx, true)
	m.SetParameterRepeat(idx, true)
	m.SetParameterValue(idx, 45, 1)
	if got := m.ParameterValue(idx); got != -15 {
		t.Errorf("wrapped value = %v, want -15", got)
	}
}

func TestModelWideRepeatGate(t *testing.T) {
	m, _ := testModel(t)
	idx := 0

	// Gate open model-wide, per-parameter flag off: the policy comes from
	// the parameter's own repeat value.
	m.SetModelParameterRepeatOverride(true)
	m.SetParameterRepeat(idx, true)
	m.SetParameterValue(idx, 45, 1)
	if got := m.ParameterValue(idx); got != -15 {
		t.Errorf("wrapped value under model-wide gate = %v, want -15", got)
	}

	m.SetParameterRepeat(idx, false)
	m.SetParameterValue(idx, 45, 1)
	if got := m.ParameterValue(idx); got != 30 {
		t.Errorf("clamped value under model-wide gate = %v, want 30", got)
	}
}

func TestParameterRepeatResolved(t *testing.T) {
	m, _ := testModel(t)
	if m.ParameterRepeat(0) {
		t.Error("no override active: repeat policy must equal the asset bit (false)")
	}
	m.SetParameterRepeat(0, true)
	if m.ParameterRepeat(0) {
		t.Error("repeat value without an open gate must not apply")
	}
	m.SetParameterRepeatOverride(0, true)
	if !m.ParameterRepeat(0) {
		t.Error("repeat override not applied")
	}
}

func TestSetParameterValueWeighted(t *testing.T) {
	m, _ := testModel(t)
	m.SetParameterValue(0, 20, 1)
	m.SetParameterValue(0, 10, 0.5)
	if got := m.ParameterValue(0); got != 15 {
		t.Errorf("weighted set = %v, want 15", got)
	}
}

func TestAddAndMultiplyParameterValue(t *testing.T) {
	m, _ := testModel(t)

	m.SetParameterValue(0, 10, 1)
	m.AddParameterValue(0, 5, 1)
	if got := m.ParameterValue(0); got != 15 {
		t.Errorf("after add = %v, want 15", got)
	}
	m.AddParameterValue(0, 100, 1)
	if got := m.ParameterValue(0); got != 30 {
		t.Errorf("add must clamp through the range policy, got %v", got)
	}

	m.SetParameterValue(0, 10, 1)
	m.MultiplyParameterValue(0, 2, 1)
	if got := m.ParameterValue(0); got != 20 {
		t.Errorf("after multiply = %v, want 20", got)
	}
	m.MultiplyParameterValue(0, 3, 0.5)
	if got := m.ParameterValue(0); got != 30 {
		t.Errorf("weighted multiply (factor 2) must clamp at 30, got %v", got)
	}
}

func TestAbsentParameterIdempotence(t *testing.T) {
	m, reg := testModel(t)
	unknown := reg.Get("NoSuchParam")

	first := m.ParameterIndex(unknown)
	second := m.ParameterIndex(unknown)
	if first != second {
		t.Errorf("synthetic index not stable: %d then %d", first, second)
	}
	if first < m.ParameterCount() {
		t.Errorf("synthetic index %d collides with authored range [0,%d)", first, m.ParameterCount())
	}
	if m.ParameterCount() != 2 {
		t.Errorf("ParameterCount() = %d, want 2 (synthetic entries excluded)", m.ParameterCount())
	}

	// Values round-trip without range policy.
	m.SetParameterValue(first, 9999, 1)
	if got := m.ParameterValue(first); got != 9999 {
		t.Errorf("absent value = %v, want 9999 (no clamping)", got)
	}
	if got := m.ParameterValueByID(unknown); got != 9999 {
		t.Errorf("absent value by id = %v, want 9999", got)
	}
}

func TestAbsentParameterWeightedBlend(t *testing.T) {
	m, reg := testModel(t)
	idx := m.ParameterIndex(reg.Get("Ghost"))

	m.SetParameterValue(idx, 10, 1)
	m.SetParameterValue(idx, 20, 0.25)
	if got := m.ParameterValue(idx); got != 12.5 {
		t.Errorf("absent weighted blend = %v, want 12.5", got)
	}
}

func TestAbsentPart(t *testing.T) {
	m, reg := testModel(t)
	unknown := reg.Get("NoSuchPart")

	first := m.PartIndex(unknown)
	if first != m.PartIndex(unknown) {
		t.Error("synthetic part index not stable")
	}
	if m.PartCount() != 1 {
		t.Errorf("PartCount() = %d, want 1", m.PartCount())
	}
	if got := m.PartOpacity(first); got != 1 {
		t.Errorf("synthetic part default opacity = %v, want 1", got)
	}
	m.SetPartOpacity(first, 0.5)
	if got := m.PartOpacityByID(unknown); got != 0.5 {
		t.Errorf("synthetic part opacity = %v, want 0.5", got)
	}
	// Synthetic parts never reach deformation.
	if got := m.Snapshot().PartOpacities[0]; got != 1 {
		t.Errorf("authored part opacity disturbed: %v", got)
	}
}

func TestDrawableIndexUnknown(t *testing.T) {
	m, reg := testModel(t)
	if got := m.DrawableIndex(reg.Get("NoSuchDrawable")); got != -1 {
		t.Errorf("DrawableIndex(unknown) = %d, want -1", got)
	}
	if got := m.DrawableIndex(reg.Get("DrawableHair")); got != 1 {
		t.Errorf("DrawableIndex(DrawableHair) = %d, want 1", got)
	}
}

func TestSaveLoadParametersRoundTrip(t *testing.T) {
	m, _ := testModel(t)
	m.SetParameterValue(0, 12, 1)
	m.SetParameterValue(1, 0.75, 1)

	m.SaveParameters()
	m.LoadParameters()

	if got := m.ParameterValue(0); got != 12 {
		t.Errorf("value 0 after save/load = %v, want 12", got)
	}
	if got := m.ParameterValue(1); got != 0.75 {
		t.Errorf("value 1 after save/load = %v, want 0.75", got)
	}
}

func TestLoadParametersRestoresCheckpoint(t *testing.T) {
	m, _ := testModel(t)
	m.SetParameterValue(0, 12, 1)
	m.SaveParameters()

	m.SetParameterValue(0, -5, 1)
	m.LoadParameters()
	if got := m.ParameterValue(0); got != 12 {
		t.Errorf("value after restore = %v, want 12", got)
	}
}

func TestUpdateDrivesEngine(t *testing.T) {
	m, _ := testModel(t)

	m.SetPartOpacity(0, 0)
	m.Update()
	if m.DrawableVisible(0) {
		t.Error("drawable should be hidden after its part opacity dropped to 0")
	}
	if !m.DrawableVisibilityChanged(0) {
		t.Error("expected VisibilityChanged after the flip")
	}
	if !m.DrawableOpacityChanged(0) {
		t.Error("expected OpacityChanged after the flip")
	}

	// Update requested a reset; the next cycle starts clean.
	m.Update()
	if m.DrawableVisibilityChanged(0) {
		t.Error("changed bits must clear on the next update")
	}
}

func TestDrawableConstantAccessors(t *testing.T) {
	m, _ := testModel(t)
	if m.DrawableDoubleSided(0) {
		t.Error("drawable 0 is not double-sided")
	}
	if !m.DrawableDoubleSided(1) {
		t.Error("drawable 1 is double-sided")
	}
	if got := m.DrawableBlendMode(0); got != core.BlendNormal {
		t.Errorf("blend mode = %v, want BlendNormal", got)
	}
	if got := m.DrawableParentPart(1); got != 0 {
		t.Errorf("parent part = %d, want 0", got)
	}
}

func TestPartChildTopology(t *testing.T) {
	m, _ := testModel(t)
	children := m.PartChildDrawables(0)
	if len(children) != 2 || children[0] != 0 || children[1] != 1 {
		t.Errorf("PartChildDrawables(0) = %v, want [0 1]", children)
	}
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	m, _ := testModel(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range authored index")
		}
	}()
	m.ParameterMin(5)
}

func TestReleaseTwicePanics(t *testing.T) {
	m, _ := testModel(t)
	m.Release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Release")
		}
	}()
	m.Release()
}

func TestInitializeTwicePanics(t *testing.T) {
	m, _ := testModel(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Initialize")
		}
	}()
	m.Initialize()
}

// TestEndToEnd runs the clamped-then-wrapped scenario from the runtime's
// acceptance checklist.
func TestEndToEnd(t *testing.T) {
	m, reg := testModel(t)
	angle := reg.Get("Angle")

	m.SetParameterValueByID(angle, 45, 1)
	if got := m.ParameterValueByID(angle); got != 30 {
		t.Fatalf("clamped value = %v, want 30", got)
	}

	idx := m.ParameterIndex(angle)
	m.SetParameterRepeatOverride(idx, true)
	m.SetParameterRepeat(idx, true)
	m.SetParameterValue(idx, 45, 1)
	if got := m.ParameterValue(idx); got != -15 {
		t.Fatalf("wrapped value = %v, want -15", got)
	}
}
