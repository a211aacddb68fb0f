package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteResult lists what WriteFiles did, by file name.
type WriteResult struct {
	Written   []string
	Unchanged []string
}

// WriteFiles writes all generated files below the output directory, creating
// directories as needed. Files whose content is already up to date are left
// untouched, so their modification time does not trigger rebuilds.
func WriteFiles(files []GeneratedFile, outputDir string) (WriteResult, error) {
	var res WriteResult

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return res, fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		same, err := sameContent(outputPath, file.Content)
		if err != nil {
			return res, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if same {
			res.Unchanged = append(res.Unchanged, file.Filename)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return res, fmt.Errorf("creating directory for %s: %w", file.Filename, err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return res, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		res.Written = append(res.Written, file.Filename)
	}

	return res, nil
}

// sameContent reports whether the file at path holds exactly content. A
// missing file is never the same.
func sameContent(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return bytes.Equal(existing, content), nil
}
