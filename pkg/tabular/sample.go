package tabular

import (
	"io"
	"os"
	"strings"

	"github.com/peektab/peektab/pkg/consts"
	"github.com/peektab/peektab/pkg/sniff"
	"github.com/pkg/errors"
)

// SampleLines captures up to maxLines non-blank lines from the head of the
// file at path, reading at most consts.DefaultSniffBytes. When that byte
// limit falls in the middle of a line, the partial line is discarded rather
// than returned truncated. The file is opened independently and closed
// before returning, so any stream a caller later hands to a parser is
// untouched and still readable from the start.
//
// A maxLines of 0 or less uses consts.DefaultSniffLines.
func SampleLines(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		maxLines = consts.DefaultSniffLines
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, consts.DefaultSniffBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrapf(err, "failed to sample file: %s", path)
	}

	head := string(buf[:n])
	raw := strings.Split(head, "\n")

	// A full buffer that does not end on a newline cut the last line short.
	if n == len(buf) && !strings.HasSuffix(head, "\n") {
		raw = raw[:len(raw)-1]
	}

	var lines []string
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
		if len(lines) == maxLines {
			break
		}
	}

	return lines, nil
}

// SniffDelimiter samples the head of the file at path and detects its field
// delimiter. It propagates sniff.ErrEmptySample when the file contains no
// non-blank lines.
func SniffDelimiter(path string, maxLines int, candidates ...rune) (rune, error) {
	lines, err := SampleLines(path, maxLines)
	if err != nil {
		return 0, err
	}

	return sniff.Detect(lines, candidates...)
}
