package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-keyframe/internal/trackfile"
)

// ValidationResult holds the outcome for one track file.
type ValidationResult struct {
	Path      string `json:"path"`
	Name      string `json:"name,omitempty"`
	Keyframes int    `json:"keyframes,omitempty"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <track.yaml>...",
		Short: "Check track files without sampling them",
		Long: `Check that track files parse, use a known kind and method, and that
their keyframe buffers match the method's layout.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	results := make([]ValidationResult, len(paths))
	failed := 0

	for i, path := range paths {
		results[i] = validateTrack(path)
		if !results[i].Valid {
			failed++
			slog.Debug("track invalid", "path", path, "error", results[i].Error)
		}
	}

	out := cmd.OutOrStdout()
	if opts.Format == formatJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(out, "✓ %s: %d keyframes\n", r.Name, r.Keyframes)
			} else {
				fmt.Fprintf(out, "✗ %s: %s\n", r.Path, r.Error)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d tracks invalid", failed, len(paths))
	}
	return nil
}

func validateTrack(path string) ValidationResult {
	track, err := trackfile.Load(path)
	if err != nil {
		return ValidationResult{Path: path, Error: err.Error()}
	}
	return ValidationResult{
		Path:      path,
		Name:      track.Name,
		Keyframes: len(track.Inputs),
		Valid:     true,
	}
}
