package layouts

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the layouts compiled into the binary, sorted by ID.
func Builtin() ([]Layout, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin layouts: %w", err)
	}

	var layouts []Layout
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin layout %s: %w", e.Name(), err)
		}
		layout, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin layout %s: %w", e.Name(), err)
		}
		layouts = append(layouts, layout)
	}

	sortByID(layouts)
	return layouts, nil
}

// BuiltinByID returns one built-in layout.
func BuiltinByID(id string) (Layout, error) {
	layouts, err := Builtin()
	if err != nil {
		return Layout{}, err
	}
	return find(layouts, id)
}
