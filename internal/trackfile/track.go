// Package trackfile loads keyframe tracks from YAML documents and samples
// them with the keyframe package.
//
// A track file looks like:
//
//	name: door-swing
//	kind: quat
//	method: spherical-linear
//	normalize: true
//	inputs: [0, 0.5, 2]
//	outputs:
//	  - [0, 0, 0, 1]
//	  - [0, 0.38268343, 0, 0.92387953]
//	  - [0, 0.70710678, 0, 0.70710678]
//
// Every output row holds the components of one primitive: one value for
// scalar, three for vec3, four for vec4 and quat (x, y, z, w).
package trackfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	keyframe "github.com/tphakala/go-keyframe"
)

// ErrInvalidTrack indicates a track document that cannot be sampled.
var ErrInvalidTrack = errors.New("invalid track")

// Kind names the primitive a track's outputs are decoded into.
type Kind string

// Supported track kinds.
const (
	KindScalar Kind = "scalar"
	KindVec3   Kind = "vec3"
	KindVec4   Kind = "vec4"
	KindQuat   Kind = "quat"
)

// Components returns the number of values per output row, or 0 for an
// unknown kind.
func (k Kind) Components() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec3:
		return 3
	case KindVec4, KindQuat:
		return 4
	default:
		return 0
	}
}

// Track is one keyframe curve as stored on disk.
type Track struct {
	Name      string          `yaml:"name"`
	Kind      Kind            `yaml:"kind"`
	Method    keyframe.Method `yaml:"method"`
	Normalize bool            `yaml:"normalize,omitempty"`
	Inputs    []float64       `yaml:"inputs,flow"`
	Outputs   [][]float64     `yaml:"outputs"`
}

// Load reads and validates a track file.
func Load(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a track document. Unknown fields are rejected.
func Parse(data []byte) (*Track, error) {
	var track Track
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&track); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTrack)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := track.Validate(); err != nil {
		return nil, err
	}
	return &track, nil
}

// Validate checks the kind, the method, every output row's width, and the
// keyframe buffers against the method's layout.
func (t *Track) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTrack)
	}

	width := t.Kind.Components()
	if width == 0 {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTrack, t.Kind)
	}

	if t.Method == keyframe.MethodCustom {
		return fmt.Errorf("%w: method %v cannot be loaded from a file", ErrInvalidTrack, t.Method)
	}

	for i, row := range t.Outputs {
		if len(row) != width {
			return fmt.Errorf("%w: output %d has %d components, %s needs %d",
				ErrInvalidTrack, i, len(row), t.Kind, width)
		}
	}

	if err := keyframe.ValidateLayout(t.Method, t.Inputs, len(t.Outputs)); err != nil {
		return fmt.Errorf("track %q: %w", t.Name, err)
	}
	return nil
}

// Encode writes the track as YAML.
func (t *Track) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(t); err != nil {
		return fmt.Errorf("failed to encode track: %w", err)
	}
	return encoder.Close()
}
