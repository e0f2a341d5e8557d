package leveldata

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed levels/*.json
var builtinFS embed.FS

// ParseJSON decodes a level description. Missing lists decode as empty.
func ParseJSON(data []byte) (*Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return &desc, nil
}

// LoadFile reads a level from fsys, choosing the decoder by extension
// (.json or .tmx). It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS.
func LoadFile(fsys fs.FS, name string) (*Description, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		desc, err := ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return desc, nil
	case ".tmx":
		return LoadTMX(fsys, name)
	default:
		return nil, fmt.Errorf("level %s: unsupported format %q", name, path.Ext(name))
	}
}

// Builtin returns the embedded campaign level with the given 1-based index.
func Builtin(level int) (*Description, error) {
	return LoadFile(builtinFS, fmt.Sprintf("levels/level%d.json", level))
}

// BuiltinCount reports how many campaign levels are embedded.
func BuiltinCount() int {
	matches, _ := fs.Glob(builtinFS, "levels/level*.json")
	return len(matches)
}

// LoadAll discovers every .json and .tmx level in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Description, []string, error) {
	var matches []string
	for _, ext := range []string{"json", "tmx"} {
		pattern := path.Join(dir, "*."+ext)
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	levels := make(map[string]*Description, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		desc, err := LoadFile(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		levels[stem] = desc
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
