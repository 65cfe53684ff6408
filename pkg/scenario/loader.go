package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyFile is returned for a scenario file with no document.
var ErrEmptyFile = errors.New("empty scenario file")

// Extensions lists the file extensions LoadDir picks up.
var Extensions = []string{".yaml", ".yml", ".json"}

// Parse validates and decodes one scenario document. JSON is
// accepted since it is a subset of YAML. source names the
// document in errors.
func Parse(data []byte, source string) (*File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyFile)
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", source, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	file.Source = source

	seen := make(map[string]bool, len(file.Scenarios))
	for i, s := range file.Scenarios {
		if seen[s.Name] {
			return nil, fmt.Errorf(
				"scenario at index %d in %s: duplicate name %q",
				i, source, s.Name,
			)
		}
		seen[s.Name] = true
		if _, err := NewSubject(s.Outcome); err != nil {
			return nil, fmt.Errorf(
				"scenario %q in %s: %w", s.Name, source, err,
			)
		}
	}
	return &file, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadDir loads every scenario file directly inside dir, in name
// order.
func LoadDir(dir string) ([]*File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return LoadPaths(dir)
}

// Discover expands paths into the scenario files they name.
// Directories contribute the scenario files directly inside them,
// in name order.
func Discover(paths ...string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read scenario directory %s: %w", p, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !hasScenarioExt(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(p, entry.Name()))
		}
	}
	return files, nil
}

// LoadPaths loads each path as a file or, when it is a
// directory, every scenario file inside it.
func LoadPaths(paths ...string) ([]*File, error) {
	names, err := Discover(paths...)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(names))
	for _, name := range names {
		f, err := LoadFile(name)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func hasScenarioExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
