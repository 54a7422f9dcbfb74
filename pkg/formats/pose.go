package formats

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPoseJSON = errors.New("invalid pose JSON")

// Pose blend modes.
const (
	PoseBlendOverwrite = "overwrite"
	PoseBlendAdd       = "add"
	PoseBlendMultiply  = "multiply"
)

// PoseEntry is one parameter target of a pose.
type PoseEntry struct {
	ID     string
	Value  float32
	Blend  string
	Weight float32
}

// Pose is a parsed pose: a named set of parameter targets, typically an
// expression authored alongside the puppet.
type Pose struct {
	Name       string
	FadeInSec  float32
	FadeOutSec float32
	Entries    []PoseEntry
}

type poseWire struct {
	Name       string          `json:"name"`
	FadeInSec  float32         `json:"fadeIn"`
	FadeOutSec float32         `json:"fadeOut"`
	Entries    []poseEntryWire `json:"entries"`
}

type poseEntryWire struct {
	ID     string   `json:"id"`
	Value  float32  `json:"value"`
	Blend  string   `json:"blend"`
	Weight *float32 `json:"weight"`
}

// ParsePose parses and validates a pose file. An omitted entry weight
// defaults to 1; an omitted blend mode defaults to overwrite.
func ParsePose(data []byte) (*Pose, error) {
	var w poseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoseJSON, err)
	}
	if w.Name == "" {
		return nil, errors.New("pose with empty name")
	}

	p := &Pose{
		Name:       w.Name,
		FadeInSec:  w.FadeInSec,
		FadeOutSec: w.FadeOutSec,
		Entries:    make([]PoseEntry, 0, len(w.Entries)),
	}
	for i, e := range w.Entries {
		if e.ID == "" {
			return nil, fmt.Errorf("pose %q: entry %d with empty id", w.Name, i)
		}
		blend := e.Blend
		if blend == "" {
			blend = PoseBlendOverwrite
		}
		switch blend {
		case PoseBlendOverwrite, PoseBlendAdd, PoseBlendMultiply:
		default:
			return nil, fmt.Errorf("pose %q: entry %q: unknown blend mode %q", w.Name, e.ID, e.Blend)
		}
		weight := float32(1)
		if e.Weight != nil {
			weight = *e.Weight
		}
		p.Entries = append(p.Entries, PoseEntry{
			ID:     e.ID,
			Value:  e.Value,
			Blend:  blend,
			Weight: weight,
		})
	}
	return p, nil
}
