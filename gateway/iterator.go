package gateway

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bindersmedia/commitcount/entity"
)

var (
	// ErrPageLimit is returned once the page budget is spent with the buffer drained.
	ErrPageLimit = errors.New("page limit reached")
	// ErrEndOfHistory is returned after the last record of the last page.
	ErrEndOfHistory = errors.New("end of branch history")
)

type PageFetcher interface {
	FetchCommitPage(ctx context.Context, branch string, cursor string) (*entity.CommitPage, error)
}

// CommitIterator walks the history of a branch one commit at a time, fetching pages on demand.
// It never fetches more than maxPages pages.
type CommitIterator struct {
	fetcher  PageFetcher
	branch   string
	maxPages int

	cursor  string
	buf     []entity.Commit
	pages   int
	scanned int
	last    bool
}

func NewCommitIterator(fetcher PageFetcher, branch string, maxPages int) *CommitIterator {
	return &CommitIterator{
		fetcher:  fetcher,
		branch:   branch,
		maxPages: maxPages,
	}
}

func (it *CommitIterator) Next(ctx context.Context) (entity.Commit, error) {
	for len(it.buf) == 0 {
		if it.last {
			return entity.Commit{}, ErrEndOfHistory
		}
		if it.pages >= it.maxPages {
			return entity.Commit{}, ErrPageLimit
		}

		page, err := it.fetcher.FetchCommitPage(ctx, it.branch, it.cursor)
		if err != nil {
			return entity.Commit{}, err
		}
		it.pages++
		it.buf = page.Values
		it.cursor = page.Cursor
		it.last = page.IsLast()
	}

	commit := it.buf[0]
	it.buf = it.buf[1:]
	it.scanned++
	return commit, nil
}

// Reset restarts the walk from the branch tip.
func (it *CommitIterator) Reset() {
	it.cursor = ""
	it.buf = nil
	it.pages = 0
	it.scanned = 0
	it.last = false
}

func (it *CommitIterator) Pages() int {
	return it.pages
}

func (it *CommitIterator) Scanned() int {
	return it.scanned
}
