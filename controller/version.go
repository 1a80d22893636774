package controller

import (
	"context"

	"github.com/bindersmedia/commitcount/constants"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	rep, _, err := c.ghc.Repositories.GetLatestRelease(ctx, constants.ReleaseOwner, constants.ReleaseRepo)
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
