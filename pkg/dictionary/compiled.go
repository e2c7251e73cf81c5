package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// compiledVersion guards against stale files after a format change.
const compiledVersion = 1

// CompiledExt is the extension of compiled dictionary files.
const CompiledExt = ".dict"

// compiledFile is the on-disk shape of a compiled dictionary.
type compiledFile struct {
	Version int      `msgpack:"v"`
	Words   []string `msgpack:"w"`
}

// SaveCompiled writes words to a msgpack compiled dictionary, keeping
// their order. Compiled files skip the line scanning and dedup work on
// startup for larger lists.
func SaveCompiled(words []string, path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != CompiledExt {
		return fmt.Errorf("compiled dictionary %s has invalid extension %s (expected %s)", path, ext, CompiledExt)
	}
	data, err := msgpack.Marshal(compiledFile{Version: compiledVersion, Words: words})
	if err != nil {
		return fmt.Errorf("failed to encode compiled dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write compiled dictionary %s: %w", path, err)
	}
	log.Debugf("Wrote compiled dictionary %s (%d words)", path, len(words))
	return nil
}

// LoadCompiled reads a compiled dictionary written by SaveCompiled.
func LoadCompiled(path string) ([]string, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != CompiledExt {
		return nil, fmt.Errorf("compiled dictionary %s has invalid extension %s (expected %s)", path, ext, CompiledExt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiled dictionary %s: %w", path, err)
	}
	var file compiledFile
	if err := msgpack.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode compiled dictionary %s: %w", path, err)
	}
	if file.Version != compiledVersion {
		return nil, fmt.Errorf("compiled dictionary %s has version %d, want %d", path, file.Version, compiledVersion)
	}
	log.Debugf("Loaded compiled dictionary %s (%d words)", path, len(file.Words))
	return file.Words, nil
}

// LoadAny loads path by extension: .txt word lists, .dict compiled files.
func LoadAny(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case CompiledExt:
		return LoadCompiled(path)
	case ".txt":
		return Load(path)
	default:
		return nil, fmt.Errorf("unsupported dictionary format for %s", path)
	}
}
