package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bindersmedia/commitcount/errors"
)

func setupEnv(t *testing.T, apiURL string, settings ...string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("COMMITCOUNT_USERNAME", "jdoe")
	t.Setenv("COMMITCOUNT_PASSWORD", "secret")

	registry := filepath.Join(dir, "branches.yaml")
	require.NoError(t, os.WriteFile(registry, []byte("branches:\n  rel-x: abc123\n"), 0o600))
	config := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("api_url: %s\ndelay: 0s\nregistry: %s\n", apiURL, registry) + strings.Join(settings, "")
	require.NoError(t, os.WriteFile(config, []byte(content), 0o600))
	return config
}

func execute(args ...string) (string, error) {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	rootCmd := newRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCountRequiresBranch(t *testing.T) {
	_, err := execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), `required flag(s) "branch" not set`)
}

func TestCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repositories/bindersmedia/binders/commits/rel-x" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"values": [
			{"hash": "def4560000000000000000000000000000000000", "message": "Add export\n\nbody"},
			{"hash": "abc1230000000000000000000000000000000000"}
		]}`)
	}))
	defer srv.Close()
	config := setupEnv(t, srv.URL)

	out, err := execute("--config", config, "--repository", "bindersmedia/binders", "-b", "rel-x", "--list")
	require.NoError(t, err)
	require.Contains(t, out, "def456000000 Add export\n")
	require.Contains(t, out, "rel-x is 1 commits ahead of abc123\n")
}

func TestCountNotFound(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprintf(w, `{"values": [{"hash": "%040d"}, {"hash": "%040d"}], "next": "http://%s%s?page=%d"}`,
			2*requests, 2*requests+1, r.Host, r.URL.Path, requests+1)
	}))
	defer srv.Close()
	config := setupEnv(t, srv.URL, "max_pages: 3\n")

	out, err := execute("--config", config, "--repository", "bindersmedia/binders", "--branch", "rel-x")
	require.Error(t, err)
	require.Equal(t, errors.ExitNotFound, errors.ExitCodeOf(err))
	require.Contains(t, err.Error(), "after 3 page(s) and 6 commit(s)")
	require.Equal(t, 3, requests)
	require.Empty(t, out)
}

func TestCountTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	config := setupEnv(t, srv.URL)

	_, err := execute("--config", config, "--repository", "bindersmedia/binders", "--branch", "rel-x")
	require.Error(t, err)
	require.Equal(t, errors.ExitTransport, errors.ExitCodeOf(err))
	require.Contains(t, err.Error(), "503 Service Unavailable")
}

func TestCountUnknownBranch(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()
	config := setupEnv(t, srv.URL)

	_, err := execute("--config", config, "--repository", "bindersmedia/binders", "--branch", "rel-y")
	require.Error(t, err)
	require.Equal(t, errors.ExitConfiguration, errors.ExitCodeOf(err))
	require.Equal(t, 0, requests)
}

func TestCountMissingCredentials(t *testing.T) {
	config := setupEnv(t, "http://127.0.0.1:1")
	require.NoError(t, os.Unsetenv("COMMITCOUNT_PASSWORD"))

	_, err := execute("--config", config, "--repository", "bindersmedia/binders", "--branch", "rel-x")
	require.Equal(t, errors.CredentialsNotFound, err)
	require.Equal(t, 1, errors.ExitCodeOf(err))
}

func TestBranches(t *testing.T) {
	config := setupEnv(t, "http://127.0.0.1:1")

	out, err := execute("branches", "--config", config, "--repository", "a/b")
	require.NoError(t, err)
	require.Contains(t, out, "rel-x:")
	require.Contains(t, out, "abc123\n")
	require.Contains(t, out, "rel-2024.06:")
}

func TestVersion(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	require.Equal(t, "commitcount version source\n", out)
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute("cuont")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}
