package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bindersmedia/commitcount/cmd"
	"github.com/bindersmedia/commitcount/configs"
	"github.com/bindersmedia/commitcount/constants"
	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/errors"
	"github.com/bindersmedia/commitcount/ui"
)

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				err = panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func newRootCmd() *cobra.Command {
	opts := &configs.Options{}
	handler := cmd.New(opts)

	rootCmd := &cobra.Command{
		Use:           "commitcount",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       constants.Version,
		Short:         "Count the commits on a branch since its registered starting commit",
		Long: "Count the commits on a branch since its registered starting commit.\n\n" +
			"History is read newest first from the repository host and scanning stops at the starting commit.",
		Args: cobra.NoArgs,
		RunE: contextualize(handler.Count, handler.Panic),
	}
	rootCmd.Flags().StringP("branch", "b", "", "Branch to count commits on")
	rootCmd.Flags().BoolP("list", "l", false, "List the counted commits")
	rootCmd.MarkFlagRequired("branch")

	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "Settings file (default ~/.commitcount/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.RegistryFile, "registry", "", "YAML file mapping branches to starting commits")
	rootCmd.PersistentFlags().StringVar(&opts.Repository, "repository", "", "Repository as workspace/repo (default from the origin remote)")
	rootCmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Print diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Prompt for missing credentials")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "branches",
		Short: "Show the registered branches and their starting commits",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Branches, handler.Panic),
	})

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open the branch history in the browser",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Open, handler.Panic),
	}
	openCmd.Flags().StringP("branch", "b", "", "Branch to open")
	openCmd.Flags().Bool("start", false, "Open the starting commit instead of the branch history")
	openCmd.MarkFlagRequired("branch")
	rootCmd.AddCommand(openCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of commitcount",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Version, handler.Panic),
	})

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") && len(os.Args) > 1 {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Fprintf(os.Stderr, "Unknown command \"%s\" for \"%s\".%s"+
				"ee \"commitcount --help\" for available commands.\n",
				os.Args[1], rootCmd.CommandPath(), suggStr)
		} else {
			fmt.Fprintln(os.Stderr, ui.RedText("Error:"), err)
		}
		os.Exit(errors.ExitCodeOf(err))
	}
}
