package cmd

import (
	"context"
	"fmt"

	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/ui"
)

func (h *Handler) Count(ctx context.Context, req *entity.CommandRequest) error {
	branch, err := req.Cmd.Flags().GetString("branch")
	if err != nil {
		return err
	}
	list, err := req.Cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}

	ctrl, err := h.controller()
	if err != nil {
		return err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: fmt.Sprintf("Counting commits on %s", branch),
	})
	result, err := ctrl.CountCommits(ctx, branch)
	ui.StopSpinner("")
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	if list {
		for _, commit := range result.Commits {
			fmt.Fprintf(out, "%s %s\n", ui.YellowText(commit.Hash[:shortHashLen(commit.Hash)]), ui.Truncate(ui.FirstLine(commit.Message), 72))
		}
	}
	fmt.Fprintf(out, "%s is %s commits ahead of %s\n", ui.Bold(result.Branch), ui.MagentaText(fmt.Sprint(result.Count)), result.StartHash)
	return nil
}

func shortHashLen(hash string) int {
	if len(hash) < 12 {
		return len(hash)
	}
	return 12
}
