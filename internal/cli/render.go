package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	keyframe "github.com/tphakala/go-keyframe"
	"github.com/tphakala/go-keyframe/internal/trackfile"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	Output     string
	SampleRate int
	BitDepth   int
	Gain       float64
	Parallel   bool
}

// Validate checks the render flags.
func (o *RenderOptions) Validate() error {
	if o.Output == "" {
		return errors.New("output path is required")
	}
	if o.SampleRate <= 0 || o.SampleRate > maxSampleRate {
		return fmt.Errorf("sample rate %d out of range (1-%d)", o.SampleRate, maxSampleRate)
	}
	if !slices.Contains(supportedBitDepths, o.BitDepth) {
		return fmt.Errorf("unsupported bit depth %d: must be one of %v", o.BitDepth, supportedBitDepths)
	}
	if math.IsNaN(o.Gain) || math.IsInf(o.Gain, 0) {
		return fmt.Errorf("gain must be finite, got %v", o.Gain)
	}
	return nil
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <track.yaml>",
		Short: "Render a scalar track to a mono WAV file",
		Long: `Render a scalar track to a mono PCM WAV file.

The track is sampled once per audio frame from its first to its last
keyframe. Values are multiplied by --gain and clipped to [-1, 1] before
quantization, so a track can describe a waveform or an envelope.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output WAV file")
	cmd.Flags().IntVar(&opts.SampleRate, "rate", defaultSampleRate, "sample rate in Hz")
	cmd.Flags().IntVar(&opts.BitDepth, "bits", defaultBitDepth, "bit depth (16, 24 or 32)")
	cmd.Flags().Float64Var(&opts.Gain, "gain", defaultGain, "linear gain applied before clipping")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "sample on multiple goroutines")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, path string, cmd *cobra.Command) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	track, err := trackfile.Load(path)
	if err != nil {
		return err
	}
	if track.Kind != trackfile.KindScalar {
		return fmt.Errorf("%w: render needs a %s track, %q is %s",
			trackfile.ErrInvalidTrack, trackfile.KindScalar, track.Name, track.Kind)
	}

	start, end := track.Bounds()
	times, err := keyframe.UniformTimes(start, end, 1/float64(opts.SampleRate))
	if err != nil {
		return fmt.Errorf("invalid render range: %w", err)
	}

	rows, err := track.Sample(times, trackfile.Options{EnableParallel: opts.Parallel})
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: opts.SampleRate},
		Data:           quantize(rows, opts.Gain, opts.BitDepth),
		SourceBitDepth: opts.BitDepth,
	}

	if err := writeWAV(opts.Output, buf); err != nil {
		return err
	}
	slog.Debug("rendered track", "name", track.Name, "frames", len(buf.Data),
		"rate", opts.SampleRate, "bits", opts.BitDepth, "output", opts.Output)

	if rootOpts.Format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"track":  track.Name,
			"output": opts.Output,
			"frames": len(buf.Data),
			"rate":   opts.SampleRate,
			"bits":   opts.BitDepth,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s: %d frames at %d Hz, %d-bit -> %s\n",
		track.Name, len(buf.Data), opts.SampleRate, opts.BitDepth, opts.Output)
	return nil
}

// quantize converts scalar rows to signed PCM at the given bit depth.
func quantize(rows [][]float64, gain float64, bitDepth int) []int {
	peak := float64(int64(1)<<(bitDepth-1) - 1)
	data := make([]int, len(rows))
	for i, row := range rows {
		v := max(-1, min(1, row[0]*gain))
		data[i] = int(math.Round(v * peak))
	}
	return data
}

// writeWAV encodes buf into a new file at path.
func writeWAV(path string, buf *audio.IntBuffer) error {
	return writeOutput(path, func(w io.WriteSeeker) error {
		encoder := wav.NewEncoder(w, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, wavFormatPCM)
		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("failed to write WAV data: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to finalize WAV file: %w", err)
		}
		return nil
	})
}

// writeOutput creates path and fills it with write. The file is removed when
// write or the final close fails, so no partial output is left behind.
func writeOutput(path string, write func(io.WriteSeeker) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
