package mnsra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
	"mnsreestr/cmd/internal/domain/entity"
)

var ErrSessionNotOpen = errors.New("entrepreneur session is not open")

// EntrepreneurSession is the two-step exchange the registry expects before an
// entrepreneur search: the landing page sets the cookies the search form is
// validated against. A session belongs to a single lookup and is never reused.
type EntrepreneurSession struct {
	client     *Client
	httpClient *http.Client
	landingURL string
	opened     bool
}

func (c *Client) NewEntrepreneurSession() (*EntrepreneurSession, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &EntrepreneurSession{
		client: c,
		httpClient: &http.Client{
			Jar:       jar,
			Timeout:   c.timeout,
			Transport: c.transport,
		},
		landingURL: c.baseURL + entrepreneurPath,
	}, nil
}

// Open loads the entrepreneur landing page so the jar picks up its cookies.
func (s *EntrepreneurSession) Open(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.landingURL, nil)
	if err != nil {
		return fmt.Errorf("build landing request: %w", err)
	}

	resp, err := s.client.send(s.httpClient, req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	s.opened = true
	return nil
}

// Search submits form with the session cookies. It returns ErrNotFound when
// the registry renders no results table.
func (s *EntrepreneurSession) Search(ctx context.Context, form url.Values) ([]entity.Record, error) {
	if !s.opened {
		return nil, ErrSessionNotOpen
	}

	req, err := s.client.newSearchRequest(ctx, form)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", s.landingURL)
	req.Header.Set("Origin", s.client.origin)

	return s.client.searchRecords(s.httpClient, req, entity.KindEntrepreneur)
}
