package simulation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simkit/pkg/geometry"
	"github.com/dmitrymomot/simkit/pkg/schema"
	"github.com/dmitrymomot/simkit/pkg/simulation"
	"github.com/dmitrymomot/simkit/pkg/validator"
)

const jsonDoc = `{
  "name": "waveguide",
  "size": [4, 4, 4],
  "medium": {"name": "air", "permittivity": 1.0},
  "structures": [
    {"geometry": {"type": "box", "center": [0, 0, 0], "size": [4, 0.5, 0.5]}, "medium": {"name": "si", "permittivity": 12}},
    {"name": "ring", "geometry": {"type": "cylinder", "center": [1, 1, 0], "radius": 0.5, "length": 0.2, "axis": 2}}
  ],
  "sources": [{"type": "plane_wave", "center": [-1.5, 0, 0], "size": [0, 4, 4]}],
  "monitors": [{"type": "flux", "center": [1.5, 0, 0], "size": [0, 2, 2]}]
}`

const yamlDoc = `
name: waveguide
size: [4, 4, 4]
medium:
  name: air
  permittivity: 1
structures:
  - geometry:
      type: box
      center: [0, 0, 0]
      size: [4, 0.5, 0.5]
    medium:
      name: si
      permittivity: 12
  - name: ring
    geometry:
      type: cylinder
      center: [1, 1, 0]
      radius: 0.5
      length: 0.2
      axis: 2
sources:
  - type: plane_wave
    center: [-1.5, 0, 0]
    size: [0, 4, 4]
monitors:
  - type: flux
    center: [1.5, 0, 0]
    size: [0, 2, 2]
`

func TestDecode(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		format simulation.Format
		doc    string
	}{
		{simulation.FormatJSON, jsonDoc},
		{simulation.FormatYAML, yamlDoc},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			sim, err := simulation.Decode(strings.NewReader(tc.doc), tc.format)
			require.NoError(t, err)

			assert.Equal(t, "waveguide", sim.Name)
			assert.Equal(t, geometry.Vector{4, 4, 4}, sim.Size)
			assert.Equal(t, "air", sim.Medium.Name)
			require.Len(t, sim.Structures, 2)
			assert.Equal(t, "structures[0]", sim.Structures[0].Name)
			assert.Equal(t, "si", sim.Structures[0].Medium.Name)
			assert.Equal(t, 12.0, sim.Structures[0].Medium.Permittivity)
			assert.Equal(t, "ring", sim.Structures[1].Name)
			assert.Equal(t, simulation.Vacuum, sim.Structures[1].Medium)
			require.Len(t, sim.Sources, 1)
			assert.Equal(t, simulation.SourcePlaneWave, sim.Sources[0].Type)
			assert.Equal(t, "sources[0]", sim.Sources[0].Name)
			require.Len(t, sim.Monitors, 1)
			assert.Equal(t, "monitors[0]", sim.Monitors[0].Name)
		})
	}

	t.Run("invalid document", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader(`{"size": [1, 1, 1], "monitors": [{"type": "flux", "size": [1, 1, 1]}]}`), simulation.FormatJSON)
		require.Error(t, err)
		assert.ErrorIs(t, err, simulation.ErrInvalid)
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader(`{"size": [1,`), simulation.FormatJSON)
		assert.ErrorIs(t, err, simulation.ErrDecode)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader("size: [1, 2\n  - x"), simulation.FormatYAML)
		assert.ErrorIs(t, err, simulation.ErrDecode)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader(""), simulation.FormatJSON)
		assert.ErrorIs(t, err, simulation.ErrDecode)

		_, err = simulation.Decode(strings.NewReader(""), simulation.FormatYAML)
		assert.ErrorIs(t, err, simulation.ErrDecode)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader("null"), simulation.FormatJSON)
		assert.ErrorIs(t, err, simulation.ErrDecode)
	})

	t.Run("vectors need exactly three components", func(t *testing.T) {
		docs := []struct {
			name   string
			format simulation.Format
			doc    string
		}{
			{"empty size", simulation.FormatJSON, `{"size": []}`},
			{"short size", simulation.FormatJSON, `{"size": [4, 4]}`},
			{"long size", simulation.FormatJSON, `{"size": [4, 4, 4, 4]}`},
			{"short center", simulation.FormatYAML, "size: [4, 4, 4]\ncenter: [1, 2]\n"},
			{"long monitor size", simulation.FormatJSON, `{"size": [4, 4, 4], "monitors": [{"type": "flux", "size": [1, 0, 2, 7]}]}`},
		}
		for _, tc := range docs {
			t.Run(tc.name, func(t *testing.T) {
				_, err := simulation.Decode(strings.NewReader(tc.doc), tc.format)
				require.Error(t, err)
				assert.ErrorIs(t, err, simulation.ErrInvalid)
				assert.ErrorIs(t, err, schema.ErrCoercion)
				assert.ErrorIs(t, err, geometry.ErrVectorLength)
			})
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := simulation.Decode(strings.NewReader("{}"), simulation.Format("toml"))
		assert.ErrorIs(t, err, simulation.ErrUnsupportedFormat)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	sim, err := simulation.Decode(strings.NewReader(jsonDoc), simulation.FormatJSON)
	require.NoError(t, err)

	for _, format := range []simulation.Format{simulation.FormatJSON, simulation.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, sim.Encode(&buf, format))
			assert.Contains(t, buf.String(), "structures[0]")

			again, err := simulation.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, sim.Structures, again.Structures)
			assert.Equal(t, sim.Sources, again.Sources)
			assert.Equal(t, sim.Monitors, again.Monitors)
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		err := sim.Encode(&bytes.Buffer{}, simulation.Format("xml"))
		assert.ErrorIs(t, err, simulation.ErrUnsupportedFormat)
	})
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want simulation.Format
		err  bool
	}{
		{"sim.json", simulation.FormatJSON, false},
		{"dir/sim.YAML", simulation.FormatYAML, false},
		{"sim.yml", simulation.FormatYAML, false},
		{"sim.toml", "", true},
		{"sim", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := simulation.FormatFromPath(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, simulation.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		want        simulation.Format
		err         bool
	}{
		{"application/json", simulation.FormatJSON, false},
		{"application/json; charset=utf-8", simulation.FormatJSON, false},
		{"application/yaml", simulation.FormatYAML, false},
		{"text/x-yaml", simulation.FormatYAML, false},
		{"text/plain", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := simulation.FormatFromContentType(tt.contentType)
			if tt.err {
				assert.ErrorIs(t, err, simulation.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
