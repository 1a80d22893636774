package entity

type CommitAuthor struct {
	Raw string `json:"raw,omitempty"`
}

type Commit struct {
	Hash    string       `json:"hash"`
	Message string       `json:"message,omitempty"`
	Author  CommitAuthor `json:"author,omitempty"`
}

/* CommitPage is one page of branch history, newest first.
   - Values: the commits on this page, in the order the host returned them
   - Next: full URL of the following page, empty on the last page
   - Cursor: query portion of Next, sent verbatim with the following request
*/
type CommitPage struct {
	Values []Commit `json:"values"`
	Next   string   `json:"next,omitempty"`
	Cursor string   `json:"-"`
}

func (p *CommitPage) IsLast() bool {
	return p.Cursor == ""
}

type CountResult struct {
	Branch    string
	StartHash string
	Count     int
	Pages     int
	Commits   []Commit
}
