// Package formats provides parsers for puppet asset files.
package formats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Faultbox/marionette/pkg/core"
	"github.com/Faultbox/marionette/pkg/math"
)

// PuppetVersion is the puppet definition version this parser accepts.
const PuppetVersion = 1

var (
	ErrInvalidPuppetJSON        = errors.New("invalid puppet JSON")
	ErrUnsupportedPuppetVersion = errors.New("unsupported puppet version")
)

// PuppetParameter is an authored parameter definition.
type PuppetParameter struct {
	ID      string  `json:"id"`
	Min     float32 `json:"min"`
	Max     float32 `json:"max"`
	Default float32 `json:"default"`
	Repeat  bool    `json:"repeat"`
}

// PuppetPart is an authored part definition.
type PuppetPart struct {
	ID string `json:"id"`
}

// PuppetDrawable is an authored drawable definition. Part refers to a
// part id; an empty string leaves the drawable unparented.
type PuppetDrawable struct {
	ID           string       `json:"id"`
	Part         string       `json:"part"`
	Texture      int          `json:"texture"`
	Blend        string       `json:"blend"` // "", "normal", "add", "multiply"
	DoubleSided  bool         `json:"doubleSided"`
	InvertedMask bool         `json:"invertedMask"`
	DrawOrder    int          `json:"drawOrder"`
	Vertices     [][2]float32 `json:"vertices"`
	UVs          [][2]float32 `json:"uvs"`
	Indices      []uint16     `json:"indices"`
}

// Puppet is a parsed puppet definition.
type Puppet struct {
	Version    int               `json:"version"`
	Parameters []PuppetParameter `json:"parameters"`
	Parts      []PuppetPart      `json:"parts"`
	Drawables  []PuppetDrawable  `json:"drawables"`
}

// ParsePuppet parses and validates a puppet definition.
func ParsePuppet(data []byte) (*Puppet, error) {
	var p Puppet
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuppetJSON, err)
	}
	if p.Version != PuppetVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPuppetVersion, p.Version)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Puppet) validate() error {
	seen := make(map[string]bool)
	for _, param := range p.Parameters {
		if param.ID == "" {
			return errors.New("parameter with empty id")
		}
		if seen[param.ID] {
			return fmt.Errorf("duplicate parameter id %q", param.ID)
		}
		seen[param.ID] = true
		if param.Max < param.Min {
			return fmt.Errorf("parameter %q: max %v < min %v", param.ID, param.Max, param.Min)
		}
		if param.Default < param.Min || param.Default > param.Max {
			return fmt.Errorf("parameter %q: default %v outside [%v, %v]", param.ID, param.Default, param.Min, param.Max)
		}
	}

	parts := make(map[string]bool)
	for _, part := range p.Parts {
		if part.ID == "" {
			return errors.New("part with empty id")
		}
		if parts[part.ID] {
			return fmt.Errorf("duplicate part id %q", part.ID)
		}
		parts[part.ID] = true
	}

	drawables := make(map[string]bool)
	for _, d := range p.Drawables {
		if d.ID == "" {
			return errors.New("drawable with empty id")
		}
		if drawables[d.ID] {
			return fmt.Errorf("duplicate drawable id %q", d.ID)
		}
		drawables[d.ID] = true
		if d.Part != "" && !parts[d.Part] {
			return fmt.Errorf("drawable %q: unknown part %q", d.ID, d.Part)
		}
		switch d.Blend {
		case "", "normal", "add", "multiply":
		default:
			return fmt.Errorf("drawable %q: unknown blend mode %q", d.ID, d.Blend)
		}
		if len(d.UVs) != len(d.Vertices) {
			return fmt.Errorf("drawable %q: %d uvs for %d vertices", d.ID, len(d.UVs), len(d.Vertices))
		}
		if len(d.Indices)%3 != 0 {
			return fmt.Errorf("drawable %q: index count %d not a multiple of 3", d.ID, len(d.Indices))
		}
		for _, idx := range d.Indices {
			if int(idx) >= len(d.Vertices) {
				return fmt.Errorf("drawable %q: index %d out of range", d.ID, idx)
			}
		}
	}
	return nil
}

// BuildSnapshot materializes the flat-array snapshot for a static engine.
func (p *Puppet) BuildSnapshot() *core.Snapshot {
	s := &core.Snapshot{}

	for _, param := range p.Parameters {
		s.ParameterNames = append(s.ParameterNames, param.ID)
		s.ParameterMin = append(s.ParameterMin, param.Min)
		s.ParameterMax = append(s.ParameterMax, param.Max)
		s.ParameterDefault = append(s.ParameterDefault, param.Default)
		s.ParameterValues = append(s.ParameterValues, param.Default)
		s.ParameterRepeats = append(s.ParameterRepeats, param.Repeat)
	}

	partIndex := make(map[string]int, len(p.Parts))
	for i, part := range p.Parts {
		partIndex[part.ID] = i
		s.PartNames = append(s.PartNames, part.ID)
		s.PartOpacities = append(s.PartOpacities, 1)
	}

	for _, d := range p.Drawables {
		parent := -1
		if d.Part != "" {
			parent = partIndex[d.Part]
		}
		var flags core.ConstantFlags
		switch d.Blend {
		case "add":
			flags |= core.BlendAdditive
		case "multiply":
			flags |= core.BlendMultiplicative
		}
		if d.DoubleSided {
			flags |= core.DoubleSided
		}
		if d.InvertedMask {
			flags |= core.InvertedMask
		}

		verts := make([]math.Vec2, len(d.Vertices))
		uvs := make([]math.Vec2, len(d.UVs))
		for i, v := range d.Vertices {
			verts[i] = math.Vec2{X: v[0], Y: v[1]}
		}
		for i, uv := range d.UVs {
			uvs[i] = math.Vec2{X: uv[0], Y: uv[1]}
		}

		s.DrawableNames = append(s.DrawableNames, d.ID)
		s.DrawableParentParts = append(s.DrawableParentParts, parent)
		s.DrawableConstantFlags = append(s.DrawableConstantFlags, flags)
		s.DrawableDynamicFlags = append(s.DrawableDynamicFlags, core.Visible)
		s.DrawableVertexPositions = append(s.DrawableVertexPositions, verts)
		s.DrawableVertexUVs = append(s.DrawableVertexUVs, uvs)
		s.DrawableIndices = append(s.DrawableIndices, d.Indices)
		s.DrawableDrawOrders = append(s.DrawableDrawOrders, d.DrawOrder)
		s.DrawableRenderOrders = append(s.DrawableRenderOrders, len(s.DrawableRenderOrders))
		s.DrawableTextureIndices = append(s.DrawableTextureIndices, d.Texture)
		s.DrawableOpacities = append(s.DrawableOpacities, 1)
		s.DrawableMultiplyColors = append(s.DrawableMultiplyColors, core.WhiteColor)
		s.DrawableScreenColors = append(s.DrawableScreenColors, core.BlackColor)
	}

	return s
}
