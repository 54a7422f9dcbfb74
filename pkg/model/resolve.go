package model

import (
	gomath "math"

	"github.com/Faultbox/marionette/pkg/core"
)

// Override records. Setting a value never toggles its flag; the two are
// independent writes.

type colorOverride struct {
	overridden bool
	color      core.Color
}

type colorOverrides struct {
	multiply colorOverride
	screen   colorOverride
}

type cullingOverride struct {
	overridden bool
	culling    bool
}

type repeatOverride struct {
	overridden bool
	repeat     bool
}

// resolveColor picks the color a renderer reads: the stored override value
// when the model-wide or the entity's own flag is set, the asset color
// otherwise. The model-wide flag wins by selecting the same stored value,
// so precedence is total, never blended.
func resolveColor(modelFlag bool, rec colorOverride, assetColor core.Color) core.Color {
	if modelFlag || rec.overridden {
		return rec.color
	}
	return assetColor
}

// resolveCulling resolves the culling bit. Without an override, culling is
// on unless the drawable is authored double-sided.
func resolveCulling(modelFlag bool, rec cullingOverride, flags core.ConstantFlags) bool {
	if modelFlag || rec.overridden {
		return rec.culling
	}
	return !flags.Has(core.DoubleSided)
}

// repeatPolicy resolves the update policy for a parameter write. The
// model-wide and per-parameter flags are independent gates to the
// override path; once either is set, only the per-parameter repeat value
// supplies the policy.
func repeatPolicy(modelFlag bool, rec repeatOverride, assetRepeat bool) bool {
	if modelFlag || rec.overridden {
		return rec.repeat
	}
	return assetRepeat
}

// clampValue clamps v to [min, max].
func clampValue(v, min, max float32) float32 {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

// wrapValue wraps v into [min, max] by modulo arithmetic. A degenerate
// span makes the modulo non-finite; the value is then clamped at the
// exceeded bound instead, so NaN never reaches the snapshot.
func wrapValue(v, min, max float32) float32 {
	span := float64(max - min)
	if v > max {
		over := gomath.Mod(float64(v-max), span)
		if gomath.IsNaN(over) || gomath.IsInf(over, 0) {
			return max
		}
		return min + float32(over)
	}
	if v < min {
		under := gomath.Mod(float64(min-v), span)
		if gomath.IsNaN(under) || gomath.IsInf(under, 0) {
			return min
		}
		return max - float32(under)
	}
	return v
}

// blendValue interpolates from current to target by weight. Weight 1 is a
// pure overwrite.
func blendValue(current, target, weight float32) float32 {
	return current*(1-weight) + target*weight
}
