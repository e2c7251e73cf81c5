// Package dictionary loads the word lists that feed the suggest engine.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// maxWordLen guards against list files that are not word lists at all.
const maxWordLen = 64

// Load reads a plain text word list: one word per line, '#' comments
// and blank lines skipped, words lowercased. File order is preserved,
// since insertion order decides how equal-cost suggestions rank.
func Load(path string) ([]string, error) {
	if err := ValidateWordList(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := scanWords(file, make(map[string]struct{}))
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// LoadDir loads every .txt list directly under dir, merged in filename
// order with duplicates across files dropped.
func LoadDir(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.txt")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for word lists: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no word lists found in %s", dir)
	}
	sort.Strings(files)

	seen := make(map[string]struct{})
	var words []string
	for _, path := range files {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
		}
		fileWords, err := scanWords(file, seen)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
		}
		log.Debugf("Loaded %d words from %s", len(fileWords), path)
		words = append(words, fileWords...)
	}
	return words, nil
}

// scanWords collects words from one list, skipping entries already in seen.
func scanWords(file *os.File, seen map[string]struct{}) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := strings.ToLower(strings.Fields(line)[0])
		if len(word) > maxWordLen {
			log.Warnf("Skipping oversized entry (%d chars) in %s", len(word), file.Name())
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ValidateWordList checks a path looks like a text word list before
// reading it whole.
func ValidateWordList(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a word list", path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".txt" {
		return fmt.Errorf("word list %s has invalid extension %s (expected .txt)", path, ext)
	}
	if info.Size() == 0 {
		return fmt.Errorf("word list %s is empty", path)
	}
	return nil
}
