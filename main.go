package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tagcloud/cloudpack"
)

const (
	VERSION = "0.1.0"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The logger is attached to the context before any
// subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "tagcloud",
		Short:         "tagcloud draws word frequencies as a circular tag cloud",
		Long:          `tagcloud counts the words of its inputs, sizes each word by frequency and packs the labels along a spiral around a common center, without overlaps.`,
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML or TOML config file")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

func newGenerateCmd(configPath *string) *cobra.Command {
	opts := DefaultOptions()

	cmd := &cobra.Command{
		Use:     "generate [files or directories...]",
		Aliases: []string{"gen"},
		Short:   "Count words and render them as a tag cloud",
		Long: `Count the words of every input and render the most frequent ones as a tag cloud.

Directories contribute their *.txt files; "-" reads standard input. Besides the image a
layout JSON is written next to it, which "tagcloud render" can draw again.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, *configPath, &opts); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			stats, err := generate(cmd.Context(), &opts, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Output, "output", "o", opts.Output, "output image (png, jpg, gif, tif or bmp)")
	f.StringVar(&opts.LayoutPath, "layout", opts.LayoutPath, "layout JSON path (default: output with .json)")
	f.BoolVar(&opts.NoLayout, "no-layout", opts.NoLayout, "do not write the layout JSON")
	f.IntVarP(&opts.Limit, "limit", "n", opts.Limit, "keep only the N most frequent words (0 keeps all)")
	f.IntVar(&opts.MinLength, "min-length", opts.MinLength, "ignore words shorter than this")
	f.Float64Var(&opts.Font.Min, "font-min", opts.Font.Min, "font size of the rarest word in points")
	f.Float64Var(&opts.Font.Max, "font-max", opts.Font.Max, "font size of the most frequent word in points")
	f.Float64Var(&opts.DPI, "dpi", opts.DPI, "font resolution")
	f.StringVar(&opts.Ordering, "order", opts.Ordering, "placement order: "+strings.Join(cloudpack.Orderings, ", "))
	f.StringVar(&opts.Search, "search", opts.Search, "spiral search: continue (one spiral per run) or center (restart for each tag)")
	f.Float64Var(&opts.Step, "step", opts.Step, "spiral angle step in radians")
	f.Float64Var(&opts.Density, "density", opts.Density, "spiral radius growth per radian")
	f.IntVar(&opts.Padding, "padding", opts.Padding, "empty pixels around each label")
	f.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "give up on the layout after this long (0 disables)")
	addStyleFlags(f, &opts)

	return cmd
}

func newRenderCmd(configPath *string) *cobra.Command {
	opts := DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Draw a saved layout again",
		Long:  `Draw a layout JSON written by "tagcloud generate" again, with a different style or size, without recounting or repacking.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, *configPath, &opts); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			stats, err := renderLayout(cmd.Context(), &opts, args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), "layout %s", args[0])
			printSummary(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Output, "output", "o", opts.Output, "output image (png, jpg, gif, tif or bmp)")
	addStyleFlags(f, &opts)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tagcloud %s\n", VERSION)
		},
	}
}

func addStyleFlags(f *pflag.FlagSet, opts *Options) {
	f.IntVar(&opts.Margin, "margin", opts.Margin, "empty pixels around the cloud")
	f.IntVar(&opts.Width, "width", opts.Width, "fit the image into this width (0 keeps the natural size)")
	f.IntVar(&opts.Height, "height", opts.Height, "fit the image into this height (0 keeps the natural size)")
	f.StringVar(&opts.Background, "background", opts.Background, "background color, hex or name")
	f.StringSliceVar(&opts.Palette, "palette", opts.Palette, "label colors, used in turn")
	f.BoolVar(&opts.Boxes, "boxes", opts.Boxes, "outline each label's rectangle")
}

// applyConfig loads the config file at path over opts and then restores every flag given on
// the command line, so flags take precedence over the file.
func applyConfig(cmd *cobra.Command, path string, opts *Options) error {
	if path == "" {
		return nil
	}

	// Flag values point into opts, so capture them before the file overwrites the fields.
	type setting struct {
		flag   *pflag.Flag
		value  string
		values []string
	}
	var given []setting
	cmd.Flags().Visit(func(f *pflag.Flag) {
		s := setting{flag: f, value: f.Value.String()}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			s.values = slices.Clone(sv.GetSlice())
		}
		given = append(given, s)
	})

	if err := LoadConfigFile(path, opts); err != nil {
		return err
	}

	for _, s := range given {
		var err error
		if sv, ok := s.flag.Value.(pflag.SliceValue); ok {
			err = sv.Replace(s.values)
		} else {
			err = s.flag.Value.Set(s.value)
		}
		if err != nil {
			return &ConfigError{Field: s.flag.Name, Message: "restore flag value", Err: err}
		}
	}
	return nil
}
