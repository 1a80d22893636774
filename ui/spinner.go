package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var DefaultTokens = spinner.CharSets[14]

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

// nil while no spinner is running
var s *spinner.Spinner

// StartSpinner shows progress on stderr. It is a no-op when stderr is not a terminal.
func StartSpinner(cfg *SpinnerCfg) {
	if s != nil || !isatty.IsTerminal(os.Stderr.Fd()) {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = DefaultTokens
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stderr

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

// StopSpinner stops the running spinner, if any.
func StopSpinner(msg string) {
	if s == nil {
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
