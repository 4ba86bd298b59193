package layouts

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// YAMLLayout is the on-disk form of a layout file.
type YAMLLayout struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Size  YAMLSize   `yaml:"size"`
	Ships []YAMLShip `yaml:"ships"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLShip is one ship placement.
type YAMLShip struct {
	Ship   string `yaml:"ship"`
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
	Orient string `yaml:"orient"` // "horizontal" (default) or "vertical"
}

// ParseYAML parses and validates a layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}

	w, h := yl.Size.W, yl.Size.H
	if w == 0 && h == 0 {
		w, h = core.DefaultWidth, core.DefaultHeight
	}

	layout := Layout{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  w,
		Height: h,
	}
	if layout.Name == "" {
		layout.Name = yl.ID
	}

	for i, s := range yl.Ships {
		name, ok := core.ParseShipName(s.Ship)
		if !ok {
			return Layout{}, fmt.Errorf("ship %d: unknown ship %q", i, s.Ship)
		}
		orient, err := parseOrientation(s.Orient)
		if err != nil {
			return Layout{}, fmt.Errorf("ship %d: %w", i, err)
		}
		layout.Ships = append(layout.Ships, Placement{
			Ship:   name,
			Start:  core.At(s.Row, s.Col),
			Orient: orient,
		})
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func parseOrientation(s string) (core.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "h", "horizontal":
		return core.Horizontal, nil
	case "v", "vertical":
		return core.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
