package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed demo/*.yaml
var demoFS embed.FS

// DefaultDemo is the map the interactive demo opens with.
const DefaultDemo = "different-heights"

// DemoNames lists the embedded demo maps in lexical order.
func DemoNames() []string {
	entries, err := fs.ReadDir(demoFS, "demo")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Demo loads an embedded demo map by name.
func Demo(name string) (*Map, error) {
	data, err := demoFS.ReadFile("demo/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown demo map %q (have %s)", name, strings.Join(DemoNames(), ", "))
	}
	m, err := Parse(data, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("demo map %q: %w", name, err)
	}
	return m, nil
}
