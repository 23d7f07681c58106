package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed behaviors.yaml
var defaultBehaviorsYAML []byte

// behaviorsFile mirrors the YAML document layout.
type behaviorsFile struct {
	Behaviors map[string]int `yaml:"behaviors"`
}

// BehaviorRegistry maps behavior names (as written in tileset
// properties) to the integer codes the mask compiler groups by, and
// back. It owns the valid-code vocabulary: queries against codes outside
// the registry are caller errors.
type BehaviorRegistry struct {
	codes map[string]int
	names map[int]string
}

// LoadBehaviors loads the behavior registry. A non-empty customPath is
// read from disk and must parse; otherwise the embedded default table is
// used.
func LoadBehaviors(customPath string) (*BehaviorRegistry, error) {
	data := defaultBehaviorsYAML
	if customPath != "" {
		b, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("read behaviors %s: %w", customPath, err)
		}
		data = b
	}

	var f behaviorsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse behaviors: %w", err)
	}
	return newBehaviorRegistry(f)
}

// DefaultBehaviors returns the registry built from the embedded table.
// The embedded file ships with the binary, so a parse failure is a build
// defect, not a runtime condition.
func DefaultBehaviors() *BehaviorRegistry {
	reg, err := LoadBehaviors("")
	if err != nil {
		panic(fmt.Sprintf("embedded behaviors.yaml invalid: %v", err))
	}
	return reg
}

func newBehaviorRegistry(f behaviorsFile) (*BehaviorRegistry, error) {
	reg := &BehaviorRegistry{
		codes: make(map[string]int, len(f.Behaviors)),
		names: make(map[int]string, len(f.Behaviors)),
	}
	for name, code := range f.Behaviors {
		if code <= 0 {
			return nil, fmt.Errorf("behavior %q: code %d out of range (0 is reserved)", name, code)
		}
		if other, dup := reg.names[code]; dup {
			return nil, fmt.Errorf("behaviors %q and %q share code %d", name, other, code)
		}
		reg.codes[name] = code
		reg.names[code] = name
	}
	return reg, nil
}

// Code returns the code for a behavior name.
func (r *BehaviorRegistry) Code(name string) (int, bool) {
	code, ok := r.codes[name]
	return code, ok
}

// MustCode returns the code for a behavior name, panicking on unknown
// names. For game code referencing behaviors that ship in the embedded
// table.
func (r *BehaviorRegistry) MustCode(name string) int {
	code, ok := r.codes[name]
	if !ok {
		panic(fmt.Sprintf("unknown behavior %q", name))
	}
	return code
}

// Name returns the behavior name for a code.
func (r *BehaviorRegistry) Name(code int) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// Names returns all behavior names in sorted order.
func (r *BehaviorRegistry) Names() []string {
	names := make([]string, 0, len(r.codes))
	for name := range r.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
