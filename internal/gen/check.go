package gen

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Stale is a generated file whose content on disk differs from a fresh
// generation.
type Stale struct {
	Filename string
	// Missing is set when the file does not exist.
	Missing bool
	// Diff is a line diff from the file on disk to the expected content.
	// Lines are prefixed with "-", "+" or " ".
	Diff string
}

// Check compares generated files with the files in the output directory
// without writing anything.
func Check(files []GeneratedFile, outputDir string) ([]Stale, error) {
	var stale []Stale

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		existing, err := os.ReadFile(outputPath)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, Stale{Filename: file.Filename, Missing: true})
			continue
		}

		if err != nil {
			return nil, err
		}

		if bytes.Equal(existing, file.Content) {
			continue
		}

		stale = append(stale, Stale{
			Filename: file.Filename,
			Diff:     LineDiff(string(existing), string(file.Content)),
		})
	}

	return stale, nil
}

// LineDiff returns a line based diff of two texts.
func LineDiff(from, to string) string {
	dmp := diffpatch.New()

	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		prefix := " "

		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
