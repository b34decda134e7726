package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var tomlCfg StructuredFileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &tomlCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return tomlCfg.toStructured(), nil
}
