package inspect

import (
	"github.com/Faultbox/marionette/pkg/model"
)

// FrameState is the JSON snapshot streamed to inspector clients after
// each update.
type FrameState struct {
	Frame      uint64           `json:"frame"`
	Parameters []ParameterState `json:"parameters"`
	Parts      []PartState      `json:"parts"`
	Drawables  []DrawableState  `json:"drawables"`
}

// ParameterState is one parameter's current state.
type ParameterState struct {
	ID      string  `json:"id"`
	Value   float32 `json:"value"`
	Min     float32 `json:"min"`
	Max     float32 `json:"max"`
	Default float32 `json:"default"`
	Repeat  bool    `json:"repeat"`
}

// PartState is one part's current state.
type PartState struct {
	ID      string  `json:"id"`
	Opacity float32 `json:"opacity"`
}

// DrawableState is one drawable's resolved render state.
type DrawableState struct {
	ID            string     `json:"id"`
	Visible       bool       `json:"visible"`
	Opacity       float32    `json:"opacity"`
	RenderOrder   int        `json:"renderOrder"`
	Culling       bool       `json:"culling"`
	MultiplyColor [4]float32 `json:"multiplyColor"`
	ScreenColor   [4]float32 `json:"screenColor"`
}

// CaptureFrame reads the resolved per-frame state out of the model. Every
// value goes through the model's precedence resolution, so the stream
// shows what a renderer would actually draw.
func CaptureFrame(m *model.Model, frame uint64) FrameState {
	st := FrameState{
		Frame:      frame,
		Parameters: make([]ParameterState, m.ParameterCount()),
		Parts:      make([]PartState, m.PartCount()),
		Drawables:  make([]DrawableState, m.DrawableCount()),
	}
	for i := range st.Parameters {
		st.Parameters[i] = ParameterState{
			ID:      m.ParameterID(i).String(),
			Value:   m.ParameterValue(i),
			Min:     m.ParameterMin(i),
			Max:     m.ParameterMax(i),
			Default: m.ParameterDefault(i),
			Repeat:  m.ParameterRepeat(i),
		}
	}
	for i := range st.Parts {
		st.Parts[i] = PartState{
			ID:      m.PartID(i).String(),
			Opacity: m.PartOpacity(i),
		}
	}
	for i := range st.Drawables {
		mc := m.DrawableMultiplyColor(i)
		sc := m.DrawableScreenColor(i)
		st.Drawables[i] = DrawableState{
			ID:            m.DrawableID(i).String(),
			Visible:       m.DrawableVisible(i),
			Opacity:       m.DrawableOpacity(i),
			RenderOrder:   m.DrawableRenderOrder(i),
			Culling:       m.DrawableCulling(i),
			MultiplyColor: [4]float32{mc.R, mc.G, mc.B, mc.A},
			ScreenColor:   [4]float32{sc.R, sc.G, sc.B, sc.A},
		}
	}
	return st
}
