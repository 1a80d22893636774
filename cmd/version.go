package cmd

import (
	"context"
	"fmt"

	"github.com/bindersmedia/commitcount/constants"
	"github.com/bindersmedia/commitcount/entity"
	"github.com/bindersmedia/commitcount/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	out := req.Cmd.OutOrStdout()
	fmt.Fprintf(out, "commitcount version %s\n", constants.Version)
	if constants.Version == "source" {
		return nil
	}

	ctrl, err := h.controller()
	if err != nil {
		return err
	}
	latest, err := ctrl.GetLatestVersion(ctx)
	if err != nil {
		ui.VerboseInfo(h.opts.Verbose, "checking for a newer release: "+err.Error())
		return nil
	}
	if latest != "" && latest != constants.Version {
		fmt.Fprintln(out, "A newer version of commitcount is available, please update to:", ui.Bold(latest))
	}
	return nil
}
