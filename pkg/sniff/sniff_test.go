package sniff_test

import (
	"testing"

	. "github.com/peektab/peektab/pkg/sniff"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  rune
	}{
		{
			name:  "uniform comma",
			lines: []string{"a,b,c", "d,e,f"},
			want:  ',',
		},
		{
			name:  "uniform tab",
			lines: []string{"a\tb", "c\td", "e\tf"},
			want:  '\t',
		},
		{
			name:  "uniform semicolon",
			lines: []string{"a;b;c;d", "1;2;3;4"},
			want:  ';',
		},
		{
			name:  "comma wins tie against semicolon",
			lines: []string{"a,b;c", "d,e;f"},
			want:  ',',
		},
		{
			name:  "single line pipe",
			lines: []string{"x|y|z"},
			want:  '|',
		},
		{
			name:  "no delimiter present falls back to comma",
			lines: []string{"hello", "world"},
			want:  ',',
		},
		{
			name:  "nothing uniform falls back to comma",
			lines: []string{"a,b;c|d\te", "f,,g;;h||i\t\tj"},
			want:  ',',
		},
		{
			name:  "higher field count beats priority",
			lines: []string{"a,b|c|d", "e,f|g|h"},
			want:  '|',
		},
		{
			name:  "trailing delimiter counts as empty field",
			lines: []string{"a,b,", "c,d,"},
			want:  ',',
		},
		{
			name:  "irregular comma yields tab",
			lines: []string{"a,b\tc", "d\te", "f,g,h\ti"},
			want:  '\t',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.lines)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDetectEmptySample(t *testing.T) {
	_, err := Detect(nil)
	require.ErrorIs(t, err, ErrEmptySample)

	_, err = Detect([]string{})
	require.ErrorIs(t, err, ErrEmptySample)
}

func TestDetectCustomCandidates(t *testing.T) {
	t.Run("restricted set ignores other characters", func(t *testing.T) {
		// Pipe is uniform but not a candidate here.
		got, err := Detect([]string{"a|b;c", "d|e;f"}, ';')
		require.NoError(t, err)
		require.Equal(t, ';', got)
	})

	t.Run("fallback is the first candidate", func(t *testing.T) {
		got, err := Detect([]string{"a;b", "c;d;e"}, '\t', ',')
		require.NoError(t, err)
		require.Equal(t, '\t', got)
	})

	t.Run("candidate order breaks ties", func(t *testing.T) {
		got, err := Detect([]string{"a;b,c", "d;e,f"}, ';', ',')
		require.NoError(t, err)
		require.Equal(t, ';', got)
	})
}

func TestDetectIsPure(t *testing.T) {
	lines := []string{"a,b", "c,d"}

	first, err := Detect(lines)
	require.NoError(t, err)

	second, err := Detect(lines)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, []string{"a,b", "c,d"}, lines)
}
