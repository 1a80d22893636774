package configs

import (
	"github.com/spf13/viper"

	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/errors"
	"github.com/bindersmedia/commitcount/ui"
)

type CredentialProvider interface {
	Credentials() (*entity.Credentials, error)
}

// ViperProvider reads username and password from the config file or the environment.
type ViperProvider struct {
	viper *viper.Viper
}

func NewViperProvider(v *viper.Viper) *ViperProvider {
	return &ViperProvider{viper: v}
}

func (p *ViperProvider) Credentials() (*entity.Credentials, error) {
	return &entity.Credentials{
		Username: p.viper.GetString("username"),
		Password: p.viper.GetString("password"),
	}, nil
}

type PromptProvider struct{}

func (p *PromptProvider) Credentials() (*entity.Credentials, error) {
	username, err := ui.PromptText("Username")
	if err != nil {
		return nil, err
	}
	password, err := ui.PromptSecret("App password")
	if err != nil {
		return nil, err
	}
	return &entity.Credentials{Username: username, Password: password}, nil
}

// StaticProvider serves a fixed pair.
type StaticProvider entity.Credentials

func (p StaticProvider) Credentials() (*entity.Credentials, error) {
	creds := entity.Credentials(p)
	return &creds, nil
}

// ChainProvider asks each provider in turn until both fields are filled.
// Fields found by an earlier provider are never overwritten.
type ChainProvider struct {
	providers []CredentialProvider
}

func NewChainProvider(providers ...CredentialProvider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

func (c *ChainProvider) Credentials() (*entity.Credentials, error) {
	creds := &entity.Credentials{}
	for _, provider := range c.providers {
		if creds.IsComplete() {
			break
		}
		found, err := provider.Credentials()
		if err != nil {
			return nil, errors.InvalidConfig(err, "reading credentials")
		}
		if found == nil {
			continue
		}
		if creds.Username == "" {
			creds.Username = found.Username
		}
		if creds.Password == "" {
			creds.Password = found.Password
		}
	}
	if !creds.IsComplete() {
		return nil, errors.CredentialsNotFound
	}
	return creds, nil
}
