package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/bindersmedia/commitcount/ui"
)

// Process exit codes, one per error kind. Anything unclassified exits with ExitUnknown.
const (
	ExitCredentials   = 1
	ExitUnknown       = 1
	ExitConfiguration = 2
	ExitTransport     = 3
	ExitParse         = 4
	ExitNotFound      = 5
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ConfigurationError is raised before any request is made.
type ConfigurationError struct {
	Message string
	Hint    string
	Code    int
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Hint != "" {
		msg = fmt.Sprintf("%s\n%s", msg, e.Hint)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

func (e *ConfigurationError) ExitCode() int {
	if e.Code <= 0 {
		return ExitConfiguration
	}
	return e.Code
}

type TransportError struct {
	Branch     string
	StatusCode int
	Status     string
	Cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("fetching commits of %s: %v", e.Branch, e.Cause)
	case e.StatusCode >= 200 && e.StatusCode < 300:
		return fmt.Sprintf("fetching commits of %s: empty response (%s)", e.Branch, e.Status)
	default:
		return fmt.Sprintf("fetching commits of %s: %s", e.Branch, e.Status)
	}
}

func (e *TransportError) Unwrap() error { return e.Cause }

func (e *TransportError) ExitCode() int { return ExitTransport }

type ParseError struct {
	Branch string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response for commits of %s: %v", e.Branch, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) ExitCode() int { return ExitParse }

// NotFoundError means the starting commit never showed up in the history that was scanned.
type NotFoundError struct {
	Branch  string
	Hash    string
	Pages   int
	Scanned int
	Cause   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("starting commit %s not found on %s after %d page(s) and %d commit(s)\n"+
		"The registry entry may be wrong, or the commit was rebased out of the branch history.",
		e.Hash, e.Branch, e.Pages, e.Scanned)
}

func (e *NotFoundError) Unwrap() error { return e.Cause }

func (e *NotFoundError) ExitCode() int { return ExitNotFound }

var (
	CredentialsNotFound = &ConfigurationError{
		Message: ui.RedText("Credentials not set.").String(),
		Hint:    fmt.Sprintf("Set %s and %s, add them to the config file, or run with %s", ui.Bold("COMMITCOUNT_USERNAME"), ui.Bold("COMMITCOUNT_PASSWORD"), ui.Bold("--interactive")),
		Code:    ExitCredentials,
	}
	RepositoryNotSet = &ConfigurationError{
		Message: ui.RedText("Repository not set.").String(),
		Hint:    fmt.Sprintf("Pass %s, set %s, or run inside a clone with an origin remote", ui.Bold("--repository workspace/repo"), ui.Bold("COMMITCOUNT_REPOSITORY")),
	}
)

func UnknownBranch(branch string) error {
	return &ConfigurationError{
		Message: ui.RedText(fmt.Sprintf("No starting commit registered for branch %q.", branch)).String(),
		Hint:    fmt.Sprintf("Add it to the branch registry file (see %s)", ui.Bold("--registry")),
	}
}

func InvalidConfig(cause error, format string, args ...interface{}) error {
	return &ConfigurationError{
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// ExitCodeOf extracts the exit code carried anywhere in the error chain.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if pkgerrors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitUnknown
}
