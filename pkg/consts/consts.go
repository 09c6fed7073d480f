package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file peektab looks for in the working directory
	DefaultConfigFile = "peektab.yaml"

	// DefaultPreviewRows is the number of rows shown by the show command
	DefaultPreviewRows = 20

	// DefaultSampleRows is the number of rows drawn by the sample command
	DefaultSampleRows = 10

	// DefaultSampleSeed seeds the random row sampler so repeated runs agree
	DefaultSampleSeed = 42

	// DefaultTopK is the number of most frequent values reported per string column
	DefaultTopK = 5

	// DefaultMaxCellWidth is the display width at which cell values are truncated
	DefaultMaxCellWidth = 80

	// DefaultNullGlyph is rendered in place of missing values
	DefaultNullGlyph = "∅"

	// DefaultDelimiters is the candidate set for delimiter detection, in priority order
	DefaultDelimiters = ",\t;|"

	// DefaultSniffLines bounds how many lines are sampled for delimiter detection
	DefaultSniffLines = 64

	// DefaultSniffBytes bounds how many bytes are sampled for delimiter detection
	DefaultSniffBytes = 64 * 1024
)
