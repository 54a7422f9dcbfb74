package model

import (
	"testing"

	"github.com/Faultbox/marionette/pkg/core"
)

var red = core.Color{R: 1, G: 0, B: 0, A: 1}

func TestMultiplyColorPrecedence(t *testing.T) {
	m, _ := testModel(t)
	asset := core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}

	if got := m.DrawableMultiplyColor(0); got != asset {
		t.Fatalf("no override: got %v, want asset color %v", got, asset)
	}

	// Model-wide gate on, drawable flag off: the stored override value
	// wins over the asset color.
	m.SetDrawableMultiplyColor(0, red)
	m.SetModelMultiplyColorOverride(true)
	if got := m.DrawableMultiplyColor(0); got != red {
		t.Errorf("model-wide override: got %v, want %v", got, red)
	}

	// Setting the drawable flag afterwards changes nothing while the
	// model-wide gate stays on.
	m.SetDrawableMultiplyColorOverride(0, true)
	if got := m.DrawableMultiplyColor(0); got != red {
		t.Errorf("both flags on: got %v, want %v", got, red)
	}

	m.SetModelMultiplyColorOverride(false)
	if got := m.DrawableMultiplyColor(0); got != red {
		t.Errorf("drawable flag alone: got %v, want %v", got, red)
	}

	m.SetDrawableMultiplyColorOverride(0, false)
	if got := m.DrawableMultiplyColor(0); got != asset {
		t.Errorf("all flags off: got %v, want asset color %v", got, asset)
	}
}

func TestSetColorDoesNotToggleFlag(t *testing.T) {
	m, _ := testModel(t)
	m.SetDrawableMultiplyColor(0, red)
	if m.DrawableMultiplyColorOverridden(0) {
		t.Error("setting a color must not set its override flag")
	}
	m.SetDrawableScreenColor(0, red)
	if m.DrawableScreenColorOverridden(0) {
		t.Error("setting a screen color must not set its override flag")
	}
}

func TestPartColorCascadeOnEnable(t *testing.T) {
	m, _ := testModel(t)

	m.SetPartMultiplyColor(0, red)
	// Flag still off: children untouched.
	if m.DrawableMultiplyColorOverridden(0) || m.DrawableMultiplyColorOverridden(1) {
		t.Fatal("part color with flag off must not touch children")
	}

	m.SetPartMultiplyColorOverride(0, true)
	for _, d := range []int{0, 1} {
		if !m.DrawableMultiplyColorOverridden(d) {
			t.Errorf("drawable %d: expected override flag cascaded", d)
		}
		if got := m.DrawableMultiplyColor(d); got != red {
			t.Errorf("drawable %d: color = %v, want %v", d, got, red)
		}
	}
}

func TestPartColorCascadeWhileEnabled(t *testing.T) {
	m, _ := testModel(t)
	m.SetPartMultiplyColorOverride(0, true)

	green := core.Color{R: 0, G: 1, B: 0, A: 1}
	m.SetPartMultiplyColor(0, green)
	for _, d := range []int{0, 1} {
		if got := m.DrawableMultiplyColor(d); got != green {
			t.Errorf("drawable %d: color = %v, want cascaded %v", d, got, green)
		}
	}
}

func TestPartColorNoCascadeOnDisable(t *testing.T) {
	m, _ := testModel(t)

	m.SetPartMultiplyColor(0, red)
	m.SetPartMultiplyColorOverride(0, true)
	m.SetPartMultiplyColorOverride(0, false)

	// Children keep the flags and colors they now own.
	for _, d := range []int{0, 1} {
		if !m.DrawableMultiplyColorOverridden(d) {
			t.Errorf("drawable %d: flag cleared by part disable", d)
		}
		if got := m.DrawableMultiplyColor(d); got != red {
			t.Errorf("drawable %d: color = %v, want %v", d, got, red)
		}
	}
	if m.PartMultiplyColorOverridden(0) {
		t.Error("part's own flag should be off")
	}
}

func TestPartScreenColorCascade(t *testing.T) {
	m, _ := testModel(t)

	m.SetPartScreenColor(0, red)
	m.SetPartScreenColorOverride(0, true)
	for _, d := range []int{0, 1} {
		if !m.DrawableScreenColorOverridden(d) {
			t.Errorf("drawable %d: expected screen override flag cascaded", d)
		}
		if got := m.DrawableScreenColor(d); got != red {
			t.Errorf("drawable %d: screen color = %v, want %v", d, got, red)
		}
	}
	// Multiply records stay untouched.
	if m.DrawableMultiplyColorOverridden(0) {
		t.Error("screen cascade leaked into multiply records")
	}
}

func TestCullingResolution(t *testing.T) {
	m, _ := testModel(t)

	// Drawable 0 is single-sided, drawable 1 double-sided.
	if !m.DrawableCulling(0) {
		t.Error("single-sided drawable should cull by default")
	}
	if m.DrawableCulling(1) {
		t.Error("double-sided drawable should not cull by default")
	}

	// Enabling the override without writing a value keeps the authored
	// behavior.
	m.SetDrawableCullingOverride(1, true)
	if m.DrawableCulling(1) {
		t.Error("override seed must match the authored behavior")
	}

	m.SetDrawableCulling(0, false)
	if !m.DrawableCulling(0) {
		t.Error("culling value without its flag must not apply")
	}
	m.SetDrawableCullingOverride(0, true)
	if m.DrawableCulling(0) {
		t.Error("culling override not applied")
	}

	// Model-wide gate selects the stored value for every drawable.
	m.SetDrawableCullingOverride(0, false)
	m.SetModelCullingOverride(true)
	if m.DrawableCulling(0) {
		t.Error("model-wide culling gate should select the stored value (false)")
	}
}

func TestScreenColorPrecedence(t *testing.T) {
	m, _ := testModel(t)

	if got := m.DrawableScreenColor(0); got != core.BlackColor {
		t.Fatalf("default screen color = %v, want black", got)
	}
	m.SetDrawableScreenColor(0, red)
	m.SetModelScreenColorOverride(true)
	if got := m.DrawableScreenColor(0); got != red {
		t.Errorf("model-wide screen override: got %v, want %v", got, red)
	}
}
