package cli

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
)

// Sampling defaults
const (
	defaultStep      = 0.1 // Seconds between samples
	valuePrecision   = 6   // Decimal places in text output
	jsonIndent       = "  "
	componentDivider = " "
)

// Render defaults
const (
	defaultSampleRate = 48000 // Hz
	defaultBitDepth   = 16
	defaultGain       = 1.0
	maxSampleRate     = 384000 // Hz
	wavFormatPCM      = 1      // WAVE_FORMAT_PCM
	monoChannels      = 1
)

// supportedBitDepths lists the signed PCM widths render can write.
var supportedBitDepths = []int{16, 24, 32}
