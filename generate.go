package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"tagcloud/cloudpack"
	"tagcloud/wordfreq"
)

// ErrEmptyInput is returned when the input holds no words to draw.
var ErrEmptyInput = errors.New("no words found in input")

// runStats summarizes a finished run for the terminal report.
type runStats struct {
	Words    int
	Distinct int
	Tags     int
	Steps    int
	Used     float64
	Bounds   Region
	Image    string
	Layout   string
	Elapsed  time.Duration
}

// readInputs concatenates the text of every input. "-" reads r; a directory contributes its
// *.txt files in natural name order.
func readInputs(paths []string, r io.Reader) (string, error) {
	var sb strings.Builder
	for _, path := range paths {
		if path == "-" {
			data, err := io.ReadAll(r)
			if err != nil {
				return "", fmt.Errorf("read stdin: %w", err)
			}
			sb.Write(data)
			sb.WriteByte('\n')
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("input %s: %w", path, err)
		}
		files := []string{path}
		if info.IsDir() {
			files, err = filepath.Glob(filepath.Join(path, "*.txt"))
			if err != nil {
				return "", err
			}
			slices.SortFunc(files, func(a, b string) int {
				if natural.Less(a, b) {
					return -1
				}
				if natural.Less(b, a) {
					return 1
				}
				return 0
			})
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", file, err)
			}
			sb.Write(data)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// packing lays out sizes around the origin in the configured order. The core never gives up
// on a placement, so the whole phase is bounded by opts.Timeout here instead.
func packing(ctx context.Context, sizes []cloudpack.Size, opts *Options) (*cloudpack.Packer, error) {
	packOpts, sortFunc, err := opts.packerOptions()
	if err != nil {
		return nil, err
	}
	packer := cloudpack.NewPacker(cloudpack.NewPoint(0, 0), packOpts...)

	ordered := slices.Clone(sizes)
	if sortFunc != nil {
		slices.SortStableFunc(ordered, sortFunc)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	// The packer is only touched by this goroutine until it reports back. On timeout it is
	// abandoned and stops at its next context check.
	done := make(chan error, 1)
	go func() {
		for _, size := range ordered {
			if err := ctx.Err(); err != nil {
				done <- err
				return
			}
			if _, err := packer.Place(size); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("layout of %d tags: %w", len(sizes), err)
		}
		return packer, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("layout of %d tags: %w", len(sizes), ctx.Err())
	}
}

// generate runs the whole pipeline: read, count, measure, pack, export and draw.
func generate(ctx context.Context, opts *Options, inputs []string, stdin io.Reader) (*runStats, error) {
	logger := loggerFromContext(ctx)
	total := newProgress(logger)
	stats := &runStats{}

	step := newProgress(logger)
	text, err := readInputs(inputs, stdin)
	if err != nil {
		return nil, err
	}
	words := wordfreq.Tokenizer{MinLength: opts.MinLength}.Tokenize(text)
	freq, err := wordfreq.Count(words)
	if err != nil {
		return nil, err
	}
	tags := freq.Tags(opts.Limit)
	if len(tags) == 0 {
		return nil, ErrEmptyInput
	}
	stats.Words, stats.Distinct, stats.Tags = freq.Total(), freq.Len(), len(tags)
	step.done("counted words", "words", stats.Words, "distinct", stats.Distinct, "tags", stats.Tags)

	step = newProgress(logger)
	fonts, err := newFontCache(opts.DPI)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()
	fontSizes := opts.Font.FontSizes(tags)
	sizes := make([]cloudpack.Size, len(tags))
	for i, tag := range tags {
		if sizes[i], err = labelSize(fonts, i, tag.Label, fontSizes[i], opts.Padding); err != nil {
			return nil, err
		}
	}
	step.done("measured labels")

	step = newProgress(logger)
	packer, err := packing(ctx, sizes, opts)
	if err != nil {
		return nil, err
	}
	stats.Steps, stats.Used = packer.Steps(), packer.Used()
	step.done("placed tags", "steps", stats.Steps, "used", fmt.Sprintf("%.1f%%", stats.Used*100))

	data := newLayoutData(packer, tags, fontSizes, opts.Padding, opts.DPI)
	stats.Bounds = data.Bounds
	if path := opts.layoutPath(); path != "" {
		if err := writeLayoutJSON(data, path); err != nil {
			return nil, fmt.Errorf("write layout: %w", err)
		}
		stats.Layout = path
		logger.Debug("wrote layout", "path", path)
	}

	step = newProgress(logger)
	st, err := newStyle(opts)
	if err != nil {
		return nil, err
	}
	img, err := renderCloud(data, fonts, st)
	if err != nil {
		return nil, err
	}
	if err := saveImage(img, opts.Output); err != nil {
		return nil, err
	}
	stats.Image = opts.Output
	step.done("rendered image", "path", opts.Output, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))

	stats.Elapsed = total.done("done")
	return stats, nil
}
