package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorBlue  = lipgloss.Color("75")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber      = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleFile        = lipgloss.NewStyle().Foreground(colorBlue)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, label, path string) {
	fmt.Fprintf(w, "  %s %s %s\n", styleDim.Render(label), iconArrow, styleFile.Render(path))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-9s", key+":")), styleNumber.Render(fmt.Sprint(value)))
}

// printSummary reports a finished generate or render run.
func printSummary(w io.Writer, s *runStats) {
	printSuccess(w, "%s in %s", styleTitle.Render(fmt.Sprintf("%d tags", s.Tags)), s.Elapsed.Round(time.Millisecond))
	if s.Words > 0 {
		printKeyValue(w, "words", fmt.Sprintf("%d (%d distinct)", s.Words, s.Distinct))
	}
	printKeyValue(w, "bounds", fmt.Sprintf("%dx%d at (%d,%d)", s.Bounds.W, s.Bounds.H, s.Bounds.X, s.Bounds.Y))
	if s.Steps > 0 {
		printKeyValue(w, "steps", s.Steps)
		printKeyValue(w, "used", fmt.Sprintf("%.1f%%", s.Used*100))
	}
	if s.Image != "" {
		printFile(w, "image", s.Image)
	}
	if s.Layout != "" {
		printFile(w, "layout", s.Layout)
	}
}
