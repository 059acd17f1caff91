package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tagcloud/cloudpack"
	"tagcloud/wordfreq"
)

// Region is a rectangle in layout coordinates.
type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func regionOf(r cloudpack.Rect) Region {
	return Region{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// TagInfo describes one placed tag.
type TagInfo struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	FontSize float64 `json:"fontSize"`
	Region   Region  `json:"region"`
}

// LayoutData is everything needed to draw a cloud again without recounting or repacking.
type LayoutData struct {
	Meta struct {
		Version   string `json:"version"`
		Timestamp string `json:"timestamp"`
	} `json:"meta"`
	Center  cloudpack.Point `json:"center"`
	Bounds  Region          `json:"bounds"`
	Padding int             `json:"padding"`
	DPI     float64         `json:"dpi"`
	Tags    []TagInfo       `json:"tags"`
}

// newLayoutData records placed rectangles. Each rect's ID indexes tags and fontSizes.
func newLayoutData(packer *cloudpack.Packer, tags []wordfreq.Tag, fontSizes []float64, padding int, dpi float64) *LayoutData {
	data := &LayoutData{
		Center:  packer.Center(),
		Bounds:  regionOf(packer.Bounds()),
		Padding: padding,
		DPI:     dpi,
	}
	data.Meta.Version = VERSION
	data.Meta.Timestamp = time.Now().Format("2006-01-02 15:04:05")
	for _, rect := range packer.Rects() {
		tag := tags[rect.ID]
		data.Tags = append(data.Tags, TagInfo{
			Label:    tag.Label,
			Count:    tag.Count,
			FontSize: fontSizes[rect.ID],
			Region:   regionOf(rect),
		})
	}
	return data
}

// writeLayoutJSON stores the layout as indented JSON.
func writeLayoutJSON(data *LayoutData, path string) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create layout directory: %w", err)
	}
	return os.WriteFile(path, jsonData, 0644)
}

// readLayoutJSON loads a layout written by writeLayoutJSON and checks that it can be drawn.
func readLayoutJSON(path string) (*LayoutData, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var data LayoutData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if len(data.Tags) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyLayout)
	}
	if data.Bounds.W <= 0 || data.Bounds.H <= 0 {
		return nil, fmt.Errorf("%s: bounds %dx%d are empty", path, data.Bounds.W, data.Bounds.H)
	}
	if data.DPI <= 0 {
		data.DPI = 72
	}
	for i, tag := range data.Tags {
		if tag.FontSize <= 0 || tag.Region.W <= 0 || tag.Region.H <= 0 {
			return nil, fmt.Errorf("%s: tag %d (%q) has no size", path, i, tag.Label)
		}
	}
	return &data, nil
}
