package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" || len(content) == 0 {
		return nil
	}

	// Keep the extension so editors can syntax highlight, but avoid colliding
	// with real output.
	ext := filepath.Ext(filename)
	debugName := strings.TrimSuffix(filename, ext) + ".unformatted" + ext
	p := filepath.Join(outDir, debugName)

	if err := os.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(p, content, filePerm)
}
