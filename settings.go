package ifcgeom

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the knobs the opening pipeline and swept-solid builder
// consult. Unlike ConversionData, Settings is pure data and may be shared
// read-only across conversions.
type Settings struct {
	// UseCustomTriangulation disables the distance-sort that otherwise
	// orders openings by proximity before application.
	UseCustomTriangulation bool `yaml:"use_custom_triangulation"`

	// AngleScale is decoded from YAML and defaults to 1; the revolution
	// and disk-sweep builders do not read it.
	AngleScale float64 `yaml:"angle_scale"`

	// VertexWeldTolerance is the distance below which two projected
	// opening vertices are treated as duplicates (default 1e-5).
	VertexWeldTolerance float64 `yaml:"vertex_weld_tolerance"`

	// MinFaceArea is the bounding-box area below which an opening or
	// face is treated as degenerate (default 1e-5).
	MinFaceArea float64 `yaml:"min_face_area"`

	GenerateConnectionGeometry bool `yaml:"generate_connection_geometry"`
}

// DefaultSettings returns the settings matching the source's compiled-in
// defaults.
func DefaultSettings() Settings {
	return Settings{
		UseCustomTriangulation:     false,
		AngleScale:                 1,
		VertexWeldTolerance:        1e-5,
		MinFaceArea:                1e-5,
		GenerateConnectionGeometry: true,
	}
}

// LoadSettings reads YAML settings from path, overlaying them onto
// DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}
