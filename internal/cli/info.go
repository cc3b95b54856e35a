package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	keyframe "github.com/tphakala/go-keyframe"
	"github.com/tphakala/go-keyframe/internal/simdops"
)

// Info describes the build's capabilities.
type Info struct {
	SIMD    string   `json:"simd"`
	Methods []string `json:"methods"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info",
		Short:         "Show SIMD support and interpolation methods",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := Info{SIMD: simdops.Info(), Methods: loadableMethods()}

			out := cmd.OutOrStdout()
			if rootOpts.Format == formatJSON {
				return writeJSON(out, info)
			}
			fmt.Fprintf(out, "SIMD: %s\n", info.SIMD)
			fmt.Fprintln(out, "Methods:")
			for _, m := range info.Methods {
				fmt.Fprintf(out, "  %s\n", m)
			}
			return nil
		},
	}
}

// loadableMethods lists the methods a track file may name.
func loadableMethods() []string {
	var names []string
	for m := keyframe.MethodStep; m < keyframe.MethodCustom; m++ {
		names = append(names, m.String())
	}
	return names
}
