package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bindersmedia/commitcount/constants"
	"github.com/bindersmedia/commitcount/entity"
)

type Gateway struct {
	remote     entity.RemoteConfig
	creds      *entity.Credentials
	httpClient *http.Client
}

func New(remote entity.RemoteConfig, creds *entity.Credentials) *Gateway {
	timeout := remote.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}
	return &Gateway{
		remote: remote,
		creds:  creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *Gateway) authorize(header http.Header) {
	header.Set("Authorization", g.creds.AuthorizationHeader())
}

// get issues an authorized GET and buffers the whole body.
func (g *Gateway) get(ctx context.Context, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "building request")
	}

	g.authorize(req.Header)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("commitcount/%s", constants.Version))
	res, err := g.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return res, nil, errors.Wrap(err, "reading response")
	}
	return res, buf.Bytes(), nil
}
