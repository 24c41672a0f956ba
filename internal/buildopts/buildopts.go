// Package buildopts holds the CMake option set used to configure the
// OpenCV build.
package buildopts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option is a single name=value CMake cache entry.
type Option struct {
	Name  string
	Value string
}

// Set is an ordered collection of CMake options. Order is significant:
// it carries from the source document into the generator invocation.
type Set []Option

// Defaults returns the built-in option set used when the user supplies
// no options file.
func Defaults() Set {
	return Set{
		{"CMAKE_BUILD_TYPE", "RELEASE"},
		{"CMAKE_INSTALL_PREFIX", "/usr/local"},
		{"INSTALL_C_EXAMPLES", "OFF"},
		{"INSTALL_PYTHON_EXAMPLES", "OFF"},
		{"BUILD_OPENCV_PYTHON2", "ON"},
		{"PYTHON2_INCLUDE_DIR", "/usr/include/python2.7"},
		{"BUILD_EXAMPLES", "OFF"},
	}
}

// Load reads the option set from file. An empty path, a missing file or
// a document holding an empty mapping all yield Defaults: the configure
// step never runs with an empty option set. A loaded document fully
// replaces the defaults, it is not merged with them.
func Load(file string) (Set, error) {
	if file == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read build options %s: %w", file, err)
	}
	set, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse build options %s: %w", file, err)
	}
	if len(set) == 0 {
		return Defaults(), nil
	}
	return set, nil
}

// parse decodes a flat mapping, keeping the document's key order.
// YAML is a superset of JSON, so JSON documents parse too.
func parse(data []byte) (Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document is not a flat mapping of option name to value")
	}
	set := make(Set, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		set = append(set, Option{
			Name:  root.Content[i].Value,
			Value: root.Content[i+1].Value,
		})
	}
	return set, nil
}

// DefineArgs renders each option as "-D name=value", joined by spaces,
// ready for the cmake command line. Nothing is validated or escaped:
// malformed options surface as cmake errors.
func (s Set) DefineArgs() string {
	parts := make([]string, 0, len(s))
	for _, opt := range s {
		parts = append(parts, "-D "+opt.Name+"="+opt.Value)
	}
	return strings.Join(parts, " ")
}
