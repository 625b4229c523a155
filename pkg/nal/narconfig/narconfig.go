// Package narconfig loads a nal.Config from a YAML file. The core package
// has no serialization dependency of its own (see pkg/nal's Config doc);
// drivers that want file-based configuration use this package instead of
// depending on gopkg.in/yaml.v3 directly.
package narconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/nal-go/pkg/nal"
)

// Load reads and parses a YAML file into a nal.Config. Fields the file
// omits are left at their zero value; nal.NewMemory fills them with the
// engine defaults.
func Load(path string) (nal.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nal.Config{}, fmt.Errorf("narconfig: read %s: %w", path, err)
	}
	var cfg nal.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nal.Config{}, fmt.Errorf("narconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}
