package constants

import "time"

// Version is overridden at build time with -ldflags "-X github.com/bindersmedia/commitcount/constants.Version=..."
var Version = "source"

const (
	ReleaseOwner = "bindersmedia"
	ReleaseRepo  = "commitcount"
)

const (
	EnvPrefix      = "COMMITCOUNT"
	ConfigDir      = ".commitcount"
	ConfigFileName = "config.yaml"
)

const (
	DefaultAPIURL   = "https://api.bitbucket.org/2.0"
	DefaultMaxPages = 10
	DefaultDelay    = 100 * time.Millisecond
	DefaultTimeout  = 30 * time.Second
)

// DefaultBranches are the release points known at build time. Entries from a registry file override these.
var DefaultBranches = map[string]string{
	"develop":     "3f9c2ab",
	"rel-2024.06": "b71d0e4",
	"rel-2024.11": "9e04c5d",
	"rel-2025.03": "c2a8f17",
}
