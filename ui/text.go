package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Keys longer than this do not push the values of other keys further right
const maxKeyPadding = 50

func Color(w io.Writer) aurora.Aurora {
	if f, ok := w.(*os.File); ok {
		return aurora.NewAurora(isatty.IsTerminal(f.Fd()))
	}
	return aurora.NewAurora(false)
}

func Bold(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) aurora.Value {
	return Color(os.Stderr).Red(text)
}

func YellowText(text string) aurora.Value {
	return Color(os.Stdout).Yellow(text)
}

func MagentaText(text string) aurora.Value {
	return Color(os.Stdout).Magenta(text)
}

func GrayText(text string) aurora.Value {
	return Color(os.Stderr).Gray(12, text)
}

// VerboseInfo writes a diagnostic line to stderr when verbose output is on.
func VerboseInfo(isVerbose bool, message string) {
	if !isVerbose {
		return
	}
	fmt.Fprintln(os.Stderr, GrayText(message))
}

// KeyValues renders a map as aligned "key: value" lines in key order.
func KeyValues(items map[string]string) string {
	keys := make([]string, 0, len(items))
	width := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	if width > maxKeyPadding {
		width = maxKeyPadding
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-*s %s\n", width+1, k+":", items[k]))
	}
	return sb.String()
}

// Truncate shortens text to maxLen characters by replacing its middle with an ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen || len(runes) <= 2 {
		return text
	}
	remaining := maxLen - 3
	if remaining < 2 {
		remaining = 2
	}
	head := (remaining + 1) / 2
	tail := remaining - head
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

func PrefixLines(text string, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		sb.WriteString(prefix + line + "\n")
	}
	return sb.String()
}

// FirstLine returns the text up to its first line break.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
