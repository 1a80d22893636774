package cmd

import (
	"context"
	"fmt"

	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/ui"
)

func (h *Handler) Branches(ctx context.Context, req *entity.CommandRequest) error {
	ctrl, err := h.controller()
	if err != nil {
		return err
	}
	registry := ctrl.Configs().Registry
	if len(registry) == 0 {
		fmt.Fprintln(req.Cmd.OutOrStdout(), ui.YellowText("No branches registered"))
		return nil
	}
	fmt.Fprint(req.Cmd.OutOrStdout(), ui.KeyValues(registry))
	return nil
}
