package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/bindersmedia/commitcount/entity"
	cerrors "github.com/bindersmedia/commitcount/errors"
)

type commitPageResponse struct {
	Values *[]entity.Commit `json:"values"`
	Next   string           `json:"next"`
}

func (g *Gateway) commitsURL(branch string, cursor string) string {
	base := fmt.Sprintf("%s/repositories/%s/commits/%s",
		strings.TrimRight(g.remote.APIURL, "/"), g.remote.Repository, url.PathEscape(branch))
	if cursor != "" {
		return base + "?" + cursor
	}
	if g.remote.PageLen > 0 {
		return fmt.Sprintf("%s?pagelen=%d", base, g.remote.PageLen)
	}
	return base
}

// FetchCommitPage requests one page of the history of branch, newest first.
// An empty cursor requests the branch tip.
func (g *Gateway) FetchCommitPage(ctx context.Context, branch string, cursor string) (*entity.CommitPage, error) {
	res, body, err := g.get(ctx, g.commitsURL(branch, cursor))
	if err != nil {
		transportErr := &cerrors.TransportError{Branch: branch, Cause: err}
		if res != nil {
			transportErr.StatusCode = res.StatusCode
			transportErr.Status = res.Status
		}
		return nil, transportErr
	}

	if len(bytes.TrimSpace(body)) == 0 || res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &cerrors.TransportError{
			Branch:     branch,
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}

	var resp commitPageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &cerrors.ParseError{Branch: branch, Cause: errors.Wrap(err, "decoding commit page")}
	}
	if resp.Values == nil {
		return nil, &cerrors.ParseError{Branch: branch, Cause: errors.New("commit page has no values")}
	}

	cursor, err = CursorFromNext(resp.Next)
	if err != nil {
		return nil, &cerrors.ParseError{Branch: branch, Cause: err}
	}

	return &entity.CommitPage{
		Values: *resp.Values,
		Next:   resp.Next,
		Cursor: cursor,
	}, nil
}

// CursorFromNext returns the query string of a next-page link, which the host treats as an opaque cursor.
func CursorFromNext(next string) (string, error) {
	if next == "" {
		return "", nil
	}
	u, err := url.Parse(next)
	if err != nil {
		return "", errors.Wrapf(err, "parsing next link %q", next)
	}
	if u.RawQuery == "" {
		return "", errors.Errorf("next link %q carries no cursor", next)
	}
	return u.RawQuery, nil
}
