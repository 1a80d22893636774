package cmd

import (
	"context"
	"fmt"

	"github.com/bindersmedia/commitcount/entity"
)

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	branch, err := req.Cmd.Flags().GetString("branch")
	if err != nil {
		return err
	}
	atStart, err := req.Cmd.Flags().GetBool("start")
	if err != nil {
		return err
	}

	ctrl, err := h.controller()
	if err != nil {
		return err
	}
	u, err := ctrl.OpenBranch(ctx, branch, atStart)
	if err != nil && u != "" {
		return fmt.Errorf("opening %s: %w", u, err)
	}
	return err
}
