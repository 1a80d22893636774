package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bindersmedia/commitcount/ui"
)

func (h *Handler) Panic(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error {
	fmt.Fprintf(os.Stderr, "%s %s\n", ui.RedText("Something went wrong running"), ui.Bold(strings.TrimSpace(command+" "+strings.Join(args, " "))))
	fmt.Fprintln(os.Stderr, panicErr)
	fmt.Fprint(os.Stderr, ui.PrefixLines(stacktrace, "    "))
	return fmt.Errorf("panic: %s", panicErr)
}
