package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/uvsphere/internal/config"
	"github.com/Faultbox/uvsphere/pkg/sphere"
)

func TestBuild(t *testing.T) {
	r, err := build(config.SphereConfig{Slices: 3, Stacks: 2})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if r.Positions != 5 || r.Normals != 5 || r.UVs != 0 || r.Faces != 6 || r.Indices != 18 {
		t.Errorf("unexpected report %+v", r)
	}
	if r.BoundsMax[1] != 1 || r.BoundsMin[1] != -1 {
		t.Errorf("bounds y = [%v, %v], want [-1, 1]", r.BoundsMin[1], r.BoundsMax[1])
	}

	r, err = build(config.SphereConfig{Slices: 4, Stacks: 3, Textured: true})
	if err != nil {
		t.Fatalf("textured build failed: %v", err)
	}
	if r.UVs != sphere.NumParams(4, 3) {
		t.Errorf("uvs = %d, want %d", r.UVs, sphere.NumParams(4, 3))
	}
}

func TestBuildInvalid(t *testing.T) {
	_, err := build(config.SphereConfig{Slices: 2, Stacks: 5})
	if !errors.Is(err, sphere.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestBatch(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.Workers = 2

	reports, err := cmdBatch(cfg)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(reports) != len(cfg.Batch.Spheres) {
		t.Fatalf("got %d reports, want %d", len(reports), len(cfg.Batch.Spheres))
	}
	for i, sc := range cfg.Batch.Spheres {
		if reports[i].Slices != sc.Slices || reports[i].Stacks != sc.Stacks {
			t.Errorf("report %d is for %dx%d, want %dx%d", i, reports[i].Slices, reports[i].Stacks, sc.Slices, sc.Stacks)
		}
		if want := sphere.NumFaces(sc.Slices, sc.Stacks); reports[i].Faces != want {
			t.Errorf("report %d faces = %d, want %d", i, reports[i].Faces, want)
		}
	}
}

func TestBatchStopsOnInvalidSphere(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.Spheres = append(cfg.Batch.Spheres, config.SphereConfig{Slices: 3, Stacks: 1})

	if _, err := cmdBatch(cfg); !errors.Is(err, sphere.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestWriteReports(t *testing.T) {
	r, err := build(config.SphereConfig{Slices: 8, Stacks: 4})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var text bytes.Buffer
	if err := writeReports(&text, config.FormatText, []report{r}); err != nil {
		t.Fatalf("text output failed: %v", err)
	}
	if !strings.HasPrefix(text.String(), "8x4: 26 positions") {
		t.Errorf("unexpected text output %q", text.String())
	}

	var out bytes.Buffer
	if err := writeReports(&out, config.FormatYAML, []report{r}); err != nil {
		t.Fatalf("yaml output failed: %v", err)
	}

	var decoded []map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml output does not parse: %v\n%s", err, out.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 report, got %d", len(decoded))
	}
	if decoded[0]["faces"] != sphere.NumFaces(8, 4) {
		t.Errorf("faces = %v, want %d", decoded[0]["faces"], sphere.NumFaces(8, 4))
	}
}
