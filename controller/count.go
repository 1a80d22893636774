package controller

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bindersmedia/commitcount/entity"
	cerrors "github.com/bindersmedia/commitcount/errors"
	"github.com/bindersmedia/commitcount/gateway"
	"github.com/bindersmedia/commitcount/ui"
)

// ResolveStart returns the registered starting hash of branch.
func (c *Controller) ResolveStart(branch string) (string, error) {
	hash, ok := c.cfg.Registry.Lookup(branch)
	if !ok {
		return "", cerrors.UnknownBranch(branch)
	}
	return hash, nil
}

// CountCommits returns how many commits on branch are newer than its registered starting commit.
// Credentials, registry and repository are all checked before the first request.
func (c *Controller) CountCommits(ctx context.Context, branch string) (*entity.CountResult, error) {
	creds, err := c.cfg.Credentials.Credentials()
	if err != nil {
		return nil, err
	}
	start, err := c.ResolveStart(branch)
	if err != nil {
		return nil, err
	}
	if c.cfg.Remote.Repository == "" {
		return nil, cerrors.RepositoryNotSet
	}

	gtwy := gateway.New(c.cfg.Remote, creds)
	it := gateway.NewCommitIterator(gtwy, branch, c.cfg.Counter.MaxPages)
	return c.count(ctx, it, branch, start)
}

func (c *Controller) count(ctx context.Context, it *gateway.CommitIterator, branch string, start string) (*entity.CountResult, error) {
	result := &entity.CountResult{
		Branch:    branch,
		StartHash: start,
	}
	pages := 0

	for {
		commit, err := it.Next(ctx)
		if it.Pages() != pages {
			pages = it.Pages()
			ui.VerboseInfo(c.cfg.Counter.Verbose, fmt.Sprintf("fetched page %d of %s (%d commits scanned so far)", pages, branch, it.Scanned()))
		}
		if err != nil {
			if errors.Is(err, gateway.ErrPageLimit) || errors.Is(err, gateway.ErrEndOfHistory) {
				return nil, &cerrors.NotFoundError{
					Branch:  branch,
					Hash:    start,
					Pages:   it.Pages(),
					Scanned: it.Scanned(),
					Cause:   err,
				}
			}
			return nil, err
		}

		if entity.MatchesStart(commit.Hash, start) {
			result.Pages = it.Pages()
			return result, nil
		}

		result.Count++
		result.Commits = append(result.Commits, commit)
		c.sleep(c.cfg.Counter.Delay)
	}
}
