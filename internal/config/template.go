package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const FileName = "hotseed.config.yaml"

const templateHeader = `# hotseed configuration
# Every key can also be set through HOTSEED_<KEY> (nested keys use _, e.g. HOTSEED_RATES_SIGMA)
# or the matching command flag. seed: 0 picks a fresh seed on each run.
`

// IsInitialized reports whether a config file already exists at path.
func IsInitialized(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteTemplate writes the default configuration as YAML to path.
func WriteTemplate(path string, force bool) error {
	if IsInitialized(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(templateHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
