package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/uvsphere/internal/config"
	"github.com/Faultbox/uvsphere/pkg/mesh"
	"github.com/Faultbox/uvsphere/pkg/sphere"
)

// report summarizes one generated sphere.
type report struct {
	Slices    int           `yaml:"slices"`
	Stacks    int           `yaml:"stacks"`
	Textured  bool          `yaml:"textured"`
	Positions int           `yaml:"positions"`
	Normals   int           `yaml:"normals"`
	UVs       int           `yaml:"uvs"`
	Faces     int           `yaml:"faces"`
	Indices   int           `yaml:"indices"`
	BoundsMin [3]float32    `yaml:"bounds_min,flow"`
	BoundsMax [3]float32    `yaml:"bounds_max,flow"`
	Elapsed   time.Duration `yaml:"elapsed"`
}

// build generates the sphere described by sc and summarizes it.
func build(sc config.SphereConfig) (report, error) {
	gen := sphere.Generate
	if sc.Textured {
		gen = sphere.GenerateTextured
	}

	start := time.Now()
	m, err := gen(sc.Slices, sc.Stacks)
	if err != nil {
		return report{}, fmt.Errorf("generating %dx%d sphere: %w", sc.Slices, sc.Stacks, err)
	}
	return summarize(sc, m, time.Since(start)), nil
}

func summarize(sc config.SphereConfig, m *mesh.Mesh, elapsed time.Duration) report {
	normals, _ := m.Normals()
	uvs, _ := m.UVs()
	b := m.Bounds()
	return report{
		Slices:    sc.Slices,
		Stacks:    sc.Stacks,
		Textured:  sc.Textured,
		Positions: m.NumPositions(),
		Normals:   len(normals),
		UVs:       len(uvs),
		Faces:     m.NumFaces(),
		Indices:   len(m.Indices()),
		BoundsMin: b.Min.Fit(),
		BoundsMax: b.Max.Fit(),
		Elapsed:   elapsed,
	}
}

// writeReports prints reports in the configured format.
func writeReports(w io.Writer, format string, reports []report) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, r := range reports {
		tex := ""
		if r.Textured {
			tex = " textured"
		}
		if _, err := fmt.Fprintf(w, "%dx%d%s: %d positions, %d normals, %d uvs, %d faces (%d indices) in %v\n",
			r.Slices, r.Stacks, tex, r.Positions, r.Normals, r.UVs, r.Faces, r.Indices, r.Elapsed); err != nil {
			return err
		}
	}
	return nil
}
