// Package pose applies named parameter sets (expressions) to a model and
// persists them.
package pose

import (
	"github.com/Faultbox/marionette/pkg/formats"
	"github.com/Faultbox/marionette/pkg/model"
)

// Apply writes a pose's parameter targets into the model. Each entry's
// weight is scaled by weight, so a caller fading a pose in passes the
// fade factor here. Parameter ids unknown to the model flow into its
// absent-identifier path and are stored without effect on deformation.
func Apply(m *model.Model, p *formats.Pose, weight float32) {
	reg := m.Registry()
	for _, e := range p.Entries {
		idx := m.ParameterIndex(reg.Get(e.ID))
		w := e.Weight * weight
		switch e.Blend {
		case formats.PoseBlendAdd:
			m.AddParameterValue(idx, e.Value, w)
		case formats.PoseBlendMultiply:
			m.MultiplyParameterValue(idx, e.Value, w)
		default:
			m.SetParameterValue(idx, e.Value, w)
		}
	}
}
