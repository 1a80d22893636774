package configs

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/errors"
)

var hashPrefixRegex = regexp.MustCompile(`^[0-9a-fA-F]{4,40}$`)

type registryFile struct {
	Branches map[string]string `yaml:"branches"`
}

// LoadRegistry reads a YAML branch registry of the form
//
//	branches:
//	  rel-x: abc123
func LoadRegistry(path string) (entity.BranchRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidConfig(err, "reading branch registry %s", path)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.InvalidConfig(err, "parsing branch registry %s", path)
	}

	registry := entity.BranchRegistry(file.Branches)
	if err := ValidateRegistry(registry); err != nil {
		return nil, errors.InvalidConfig(err, "invalid branch registry %s", path)
	}
	return registry, nil
}

func ValidateRegistry(registry entity.BranchRegistry) error {
	for _, branch := range registry.Branches() {
		if branch == "" {
			return errors.InvalidConfig(nil, "empty branch name")
		}
		if !hashPrefixRegex.MatchString(registry[branch]) {
			return errors.InvalidConfig(nil, "branch %s: %q is not an abbreviated commit hash", branch, registry[branch])
		}
	}
	return nil
}
