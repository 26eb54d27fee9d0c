package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Built-in tables: characters, command tables and animation files.
//
//go:embed *.yaml
var tables embed.FS

// Built-in hit-rule scripts.
//
//go:embed scripts/*.tengo
var scripts embed.FS

// Dir is where edited tables and scripts override the built-in ones.
// Empty disables the override.
var Dir = "prefabs"

// Load reads a character, command or animation table. A copy under Dir
// wins over the built-in one.
func Load(name string) ([]byte, error) {
	return read(tables, tableName(name))
}

// LoadScript reads a hit-rule script. "rule.tengo", "scripts/rule.tengo"
// and "prefabs/scripts/rule.tengo" all name the same file.
func LoadScript(name string) ([]byte, error) {
	return read(scripts, path.Join("scripts", path.Base(tableName(name))))
}

func read(builtin embed.FS, name string) ([]byte, error) {
	if Dir != "" {
		if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(name))); err == nil {
			return data, nil
		}
	}
	return builtin.ReadFile(name)
}

// tableName is name relative to the prefab root, slash separated.
func tableName(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, "prefabs/")
	return s
}
