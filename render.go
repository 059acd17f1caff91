package main

import (
	"context"
	"fmt"
)

// renderLayout draws a previously exported layout again, using the style from opts. Counts,
// font sizes and positions come from the layout file untouched.
func renderLayout(ctx context.Context, opts *Options, layoutPath string) (*runStats, error) {
	logger := loggerFromContext(ctx)
	total := newProgress(logger)

	data, err := readLayoutJSON(layoutPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded layout", "path", layoutPath, "tags", len(data.Tags), "version", data.Meta.Version)

	fonts, err := newFontCache(data.DPI)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	st, err := newStyle(opts)
	if err != nil {
		return nil, err
	}
	img, err := renderCloud(data, fonts, st)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", layoutPath, err)
	}
	if err := saveImage(img, opts.Output); err != nil {
		return nil, err
	}

	stats := &runStats{
		Tags:   len(data.Tags),
		Bounds: data.Bounds,
		Image:  opts.Output,
		Layout: layoutPath,
	}
	for _, tag := range data.Tags {
		stats.Words += tag.Count
	}
	stats.Distinct = stats.Tags
	stats.Elapsed = total.done("rendered layout", "path", opts.Output)
	return stats, nil
}
