package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gobeaver/formatkit"
)

// Colors
var (
	accent = lipgloss.Color("#00ADD8")
	muted  = lipgloss.Color("#666666")
)

// Styles
var (
	formatStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
)

// result is the serialized shape of one detection.
type result struct {
	Path      string `json:"path" yaml:"path"`
	Format    string `json:"format" yaml:"format"`
	Name      string `json:"name" yaml:"name"`
	MediaType string `json:"media_type" yaml:"media_type"`
	Extension string `json:"extension" yaml:"extension"`
	Kind      string `json:"kind" yaml:"kind"`
}

func toResult(path string, f formatkit.Format) result {
	return result{
		Path:      path,
		Format:    f.ShortName(),
		Name:      f.Name(),
		MediaType: f.MediaType(),
		Extension: f.Extension(),
		Kind:      string(f.Kind()),
	}
}

var detectCmd = &cobra.Command{
	Use:   "detect <path>...",
	Short: "Detect the format of files",
	Long: `Detect the format of one or more files by content.

Examples:
  formatkit detect report.bin
  formatkit detect --json *.dat
  formatkit detect -r --glob '**/*.bin' /data`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	detector := buildDetector()

	var results []result
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !recursive {
				return fmt.Errorf("%s is a directory (use --recursive)", path)
			}
			var selector formatkit.Selector
			if globPattern != "" {
				selector, err = formatkit.Glob(globPattern)
				if err != nil {
					return fmt.Errorf("invalid glob %q: %w", globPattern, err)
				}
			}
			matches, err := detector.DetectTree(cmd.Context(), path, selector)
			if err != nil {
				return err
			}
			for _, m := range matches {
				results = append(results, toResult(m.Path, m.Format))
			}
			continue
		}
		format, err := detector.FromFile(path)
		if err != nil {
			return err
		}
		results = append(results, toResult(path, format))
	}
	return emit(results)
}

func buildDetector() *formatkit.Detector {
	detector, err := loadDetector()
	if err != nil {
		detector = formatkit.NewDetector()
	}
	if noRefine {
		detector.DisableRefinement = true
	}
	if maxReadSize > 0 {
		detector.MaxReadSize = maxReadSize
	}
	return detector
}

func loadDetector() (*formatkit.Detector, error) {
	cfg, err := formatkit.GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Detector(), nil
}

func emit(results []result) error {
	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case yamlOutput:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(results)
	default:
		for _, r := range results {
			fmt.Printf("%s  %s  %s\n",
				formatStyle.Render(r.Format),
				r.Path,
				mutedStyle.Render(r.MediaType))
		}
		return nil
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the format catalog",
	Long: `List every format the detector can identify.

Examples:
  formatkit list
  formatkit list --kind image
  formatkit list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	formats := formatkit.Formats()
	if kindFilter != "" {
		formats = formatkit.FormatsByKind(formatkit.Kind(kindFilter))
	}

	var results []result
	for _, f := range formats {
		results = append(results, toResult("", f))
	}
	if jsonOutput || yamlOutput {
		return emit(results)
	}
	for _, r := range results {
		fmt.Printf("%-12s %-50s %s\n",
			formatStyle.Render(r.Format),
			r.Name,
			mutedStyle.Render(r.MediaType))
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Watch directories and detect changed files",
	Long: `Watch one or more directories and report the format of every file
created or modified under them until interrupted.

Examples:
  formatkit watch /incoming
  formatkit watch --json /uploads /tmp/staging`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	detector := buildDetector()
	watcher, err := detector.Watch()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range args {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, mutedStyle.Render("watching... (ctrl-c to stop)"))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if err := emit([]result{toResult(d.Path, d.Format)}); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}
