package configs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bindersmedia/commitcount/configs"
	"github.com/bindersmedia/commitcount/constants"
	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/errors"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// isolate points HOME at an empty directory and clears the environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"USERNAME", "PASSWORD", "API_URL", "REPOSITORY", "REGISTRY", "MAX_PAGES", "DELAY", "PAGE_LEN", "TIMEOUT"} {
		t.Setenv(constants.EnvPrefix+"_"+key, "")
		require.NoError(t, os.Unsetenv(constants.EnvPrefix+"_"+key))
	}
	return home
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "branches.yaml", "branches:\n  rel-x: abc123\n  Rel-Y: DEF4567\n")

	registry, err := configs.LoadRegistry(p)
	require.NoError(t, err)
	require.Equal(t, entity.BranchRegistry{"rel-x": "abc123", "Rel-Y": "DEF4567"}, registry)
}

var invalidRegistryTest = []struct {
	name    string
	content string
}{
	{
		name:    "Malformed YAML",
		content: "branches: [rel-x",
	},
	{
		name:    "Empty hash",
		content: "branches:\n  rel-x: \"\"\n",
	},
	{
		name:    "Not a hash",
		content: "branches:\n  rel-x: main\n",
	},
	{
		name:    "Too short to be unambiguous",
		content: "branches:\n  rel-x: abc\n",
	},
}

func TestLoadRegistryInvalid(t *testing.T) {
	for _, tt := range invalidRegistryTest {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "branches.yaml", tt.content)
			_, err := configs.LoadRegistry(p)
			require.Error(t, err)
			require.Equal(t, errors.ExitConfiguration, errors.ExitCodeOf(err))
		})
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := configs.LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, pkgerrors.Is(err, os.ErrNotExist))
}

func TestNewDefaults(t *testing.T) {
	isolate(t)

	cfg, err := configs.New(&configs.Options{Repository: "bindersmedia/binders"})
	require.NoError(t, err)

	require.Equal(t, constants.DefaultAPIURL, cfg.Remote.APIURL)
	require.Equal(t, "bindersmedia/binders", cfg.Remote.Repository)
	require.Equal(t, constants.DefaultTimeout, cfg.Remote.Timeout)
	require.Equal(t, constants.DefaultMaxPages, cfg.Counter.MaxPages)
	require.Equal(t, constants.DefaultDelay, cfg.Counter.Delay)
	require.Equal(t, entity.BranchRegistry(constants.DefaultBranches), cfg.Registry)

	_, err = cfg.Credentials.Credentials()
	require.Equal(t, errors.CredentialsNotFound, err)
	require.Equal(t, 1, errors.ExitCodeOf(err))
}

func TestNewFromFileAndEnvironment(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	registry := writeFile(t, dir, "branches.yaml", "branches:\n  rel-x: abc123\n  develop: 0000aaaa\n")
	config := writeFile(t, dir, "config.yaml", ""+
		"username: jdoe\n"+
		"password: from-file\n"+
		"api_url: http://localhost:8080/2.0\n"+
		"repository: bindersmedia/binders\n"+
		"registry: "+registry+"\n"+
		"max_pages: 3\n"+
		"delay: 250ms\n")
	t.Setenv("COMMITCOUNT_PASSWORD", "from-env")

	cfg, err := configs.New(&configs.Options{ConfigFile: config})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/2.0", cfg.Remote.APIURL)
	require.Equal(t, "bindersmedia/binders", cfg.Remote.Repository)
	require.Equal(t, 3, cfg.Counter.MaxPages)
	require.Equal(t, 250*time.Millisecond, cfg.Counter.Delay)

	hash, ok := cfg.Registry.Lookup("rel-x")
	require.True(t, ok)
	require.Equal(t, "abc123", hash)
	hash, ok = cfg.Registry.Lookup("develop")
	require.True(t, ok)
	require.Equal(t, "0000aaaa", hash)
	_, ok = cfg.Registry.Lookup("rel-2024.06")
	require.True(t, ok)

	creds, err := cfg.Credentials.Credentials()
	require.NoError(t, err)
	require.Equal(t, &entity.Credentials{Username: "jdoe", Password: "from-env"}, creds)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	isolate(t)
	config := writeFile(t, t.TempDir(), "config.yaml", "max_pages: 0\n")

	_, err := configs.New(&configs.Options{ConfigFile: config, Repository: "a/b"})
	require.Error(t, err)
	require.Equal(t, errors.ExitConfiguration, errors.ExitCodeOf(err))
}

func TestNewMissingExplicitConfigFile(t *testing.T) {
	isolate(t)

	_, err := configs.New(&configs.Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"), Repository: "a/b"})
	require.Error(t, err)
}

type failingProvider struct{}

func (failingProvider) Credentials() (*entity.Credentials, error) {
	return nil, pkgerrors.New("keychain locked")
}

var chainTest = []struct {
	name      string
	providers []configs.CredentialProvider
	out       *entity.Credentials
	err       bool
}{
	{
		name:      "First complete provider wins",
		providers: []configs.CredentialProvider{configs.StaticProvider{Username: "a", Password: "1"}, configs.StaticProvider{Username: "b", Password: "2"}},
		out:       &entity.Credentials{Username: "a", Password: "1"},
	},
	{
		name:      "Fields are merged across providers",
		providers: []configs.CredentialProvider{configs.StaticProvider{Username: "a"}, configs.StaticProvider{Username: "b", Password: "2"}},
		out:       &entity.Credentials{Username: "a", Password: "2"},
	},
	{
		name:      "Later providers are not asked once complete",
		providers: []configs.CredentialProvider{configs.StaticProvider{Username: "a", Password: "1"}, failingProvider{}},
		out:       &entity.Credentials{Username: "a", Password: "1"},
	},
	{
		name:      "Missing password is an error",
		providers: []configs.CredentialProvider{configs.StaticProvider{Username: "a"}},
		err:       true,
	},
	{
		name:      "No providers is an error",
		providers: nil,
		err:       true,
	},
	{
		name:      "Provider failures abort",
		providers: []configs.CredentialProvider{failingProvider{}, configs.StaticProvider{Username: "a", Password: "1"}},
		err:       true,
	},
}

func TestChainProvider(t *testing.T) {
	for _, tt := range chainTest {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := configs.NewChainProvider(tt.providers...).Credentials()
			if tt.err {
				require.Error(t, err)
				require.Nil(t, creds)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.out, creds)
		})
	}
}
