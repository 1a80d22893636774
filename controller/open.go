package controller

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/browser"

	"github.com/bindersmedia/commitcount/constants"
	cerrors "github.com/bindersmedia/commitcount/errors"
)

// BranchURL returns the web page of the branch history, or of its starting commit when atStart is set.
func (c *Controller) BranchURL(branch string, atStart bool) (string, error) {
	if c.cfg.Remote.Repository == "" {
		return "", cerrors.RepositoryNotSet
	}
	if !atStart {
		return fmt.Sprintf(constants.WebURLMap["commits"], c.cfg.Remote.Repository, url.PathEscape(branch)), nil
	}
	start, err := c.ResolveStart(branch)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(constants.WebURLMap["commit"], c.cfg.Remote.Repository, start), nil
}

func (c *Controller) OpenBranch(ctx context.Context, branch string, atStart bool) (string, error) {
	u, err := c.BranchURL(branch, atStart)
	if err != nil {
		return "", err
	}
	return u, browser.OpenURL(u)
}
