package main

import (
	"errors"
	"path/filepath"
	"testing"

	"tagcloud/cloudpack"
	"tagcloud/wordfreq"
)

func TestLayoutRoundTrip(t *testing.T) {
	tags := []wordfreq.Tag{{Label: "alpha", Count: 5}, {Label: "beta", Count: 2}, {Label: "gamma", Count: 1}}
	fontSizes := []float64{40, 20, 12}

	packer := cloudpack.NewPacker(cloudpack.NewPoint(0, 0))
	// Placed out of input order, so the layout has to follow the IDs.
	for _, size := range []cloudpack.Size{
		cloudpack.NewSizeID(2, 30, 10),
		cloudpack.NewSizeID(0, 80, 40),
		cloudpack.NewSizeID(1, 50, 20),
	} {
		if _, err := packer.Place(size); err != nil {
			t.Fatal(err)
		}
	}

	data := newLayoutData(packer, tags, fontSizes, 2, 96)
	if len(data.Tags) != 3 || data.Tags[0].Label != "gamma" || data.Tags[1].FontSize != 40 {
		t.Fatalf("tags = %+v", data.Tags)
	}
	if data.Meta.Version != VERSION {
		t.Errorf("version = %q", data.Meta.Version)
	}

	path := filepath.Join(t.TempDir(), "out", "layout.json")
	if err := writeLayoutJSON(data, path); err != nil {
		t.Fatal(err)
	}
	got, err := readLayoutJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds != data.Bounds || got.Padding != 2 || got.DPI != 96 || got.Center != data.Center {
		t.Errorf("read %+v, wrote %+v", got, data)
	}
	for i := range data.Tags {
		if got.Tags[i] != data.Tags[i] {
			t.Errorf("tag %d = %+v, want %+v", i, got.Tags[i], data.Tags[i])
		}
	}
}

func TestReadLayoutJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"not json", "{", nil},
		{"no tags", `{"bounds":{"x":0,"y":0,"w":10,"h":10},"tags":[]}`, errEmptyLayout},
		{"empty bounds", `{"bounds":{"w":0,"h":10},"tags":[{"label":"a","fontSize":12,"region":{"w":1,"h":1}}]}`, nil},
		{"no font size", `{"bounds":{"w":10,"h":10},"tags":[{"label":"a","region":{"w":1,"h":1}}]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readLayoutJSON(writeFile(t, "layout.json", tt.content))
			if err == nil {
				t.Fatal("readLayoutJSON succeeded")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestReadLayoutJSONDefaultsDPI(t *testing.T) {
	path := writeFile(t, "layout.json", `{"bounds":{"w":10,"h":10},"tags":[{"label":"a","count":1,"fontSize":12,"region":{"w":4,"h":4}}]}`)
	data, err := readLayoutJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if data.DPI != 72 {
		t.Errorf("DPI = %v, want 72", data.DPI)
	}
}
