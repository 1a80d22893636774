package configs

import (
	"os"
	"path"

	"github.com/spf13/viper"

	"github.com/bindersmedia/commitcount/constants"
	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/errors"
	"github.com/bindersmedia/commitcount/lib/git"
	"github.com/bindersmedia/commitcount/ui"
)

// Options are the values of the persistent command line flags.
type Options struct {
	ConfigFile   string
	RegistryFile string
	Repository   string
	Verbose      bool
	Interactive  bool
}

type Configs struct {
	Remote      entity.RemoteConfig
	Counter     entity.CounterConfig
	Registry    entity.BranchRegistry
	Credentials CredentialProvider
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return path.Join(home, constants.ConfigDir, constants.ConfigFileName)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("api_url", constants.DefaultAPIURL)
	v.SetDefault("max_pages", constants.DefaultMaxPages)
	v.SetDefault("delay", constants.DefaultDelay)
	v.SetDefault("timeout", constants.DefaultTimeout)
	v.SetDefault("page_len", 0)
	return v
}

// readConfigFile loads an explicitly requested file, or the default one when it exists.
func readConfigFile(v *viper.Viper, explicitPath string) error {
	configPath := explicitPath
	if configPath == "" {
		configPath = DefaultConfigPath()
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil
		}
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return errors.InvalidConfig(err, "reading config file %s", configPath)
	}
	return nil
}

func New(opts *Options) (*Configs, error) {
	if opts == nil {
		opts = &Options{}
	}

	v := newViper()
	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	maxPages := v.GetInt("max_pages")
	if maxPages <= 0 {
		return nil, errors.InvalidConfig(nil, "max_pages must be positive, got %d", maxPages)
	}
	delay := v.GetDuration("delay")
	if delay < 0 {
		return nil, errors.InvalidConfig(nil, "delay must not be negative, got %s", delay)
	}

	registryFile := opts.RegistryFile
	if registryFile == "" {
		registryFile = v.GetString("registry")
	}
	registry := entity.BranchRegistry(constants.DefaultBranches).Merge(nil)
	if registryFile != "" {
		fromFile, err := LoadRegistry(registryFile)
		if err != nil {
			return nil, err
		}
		registry = registry.Merge(fromFile)
	}

	providers := []CredentialProvider{NewViperProvider(v)}
	if opts.Interactive && ui.IsInteractive() {
		providers = append(providers, &PromptProvider{})
	}

	return &Configs{
		Remote: entity.RemoteConfig{
			APIURL:     v.GetString("api_url"),
			Repository: resolveRepository(opts.Repository, v.GetString("repository"), opts.Verbose),
			PageLen:    v.GetInt("page_len"),
			Timeout:    v.GetDuration("timeout"),
		},
		Counter: entity.CounterConfig{
			MaxPages: maxPages,
			Delay:    delay,
			Verbose:  opts.Verbose,
		},
		Registry:    registry,
		Credentials: NewChainProvider(providers...),
	}, nil
}

func resolveRepository(flagValue string, configValue string, verbose bool) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	slug, err := git.RepoSlug(".")
	if err != nil {
		ui.VerboseInfo(verbose, "no origin remote in the working directory: "+err.Error())
		return ""
	}
	return slug
}
