package mnsra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"mnsreestr/cmd/internal/domain/entity"
)

var (
	// ErrNotFound means the registry answered but had nothing for the query.
	ErrNotFound = errors.New("not found")

	// ErrUpstream wraps transport failures, timeouts and non-200 answers.
	ErrUpstream = errors.New("mns registry unavailable")
)

const (
	searchPath       = "/reestr/search.php"
	entrepreneurPath = "/reestr/entrepreneur.php"

	// searchButton is the label of the submit button on the registry form,
	// the upstream dispatches on it so it has to match verbatim.
	searchButton = "Искать"

	DefaultBaseURL   = "https://mns-ra.org"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout   = 15 * time.Second
)

// Organization search form fields.
const (
	fieldInfo    = "search_info"
	fieldOrgINN  = "search_inn"
	fieldOrgName = "search_name"
	fieldButton  = "search"

	orgInfoValue = "None"
)

// Entrepreneur search form fields, the registry uses a separate schema for them.
const (
	fieldIPINN        = "search_ip_inn"
	fieldIPSurname    = "search_ip_surname"
	fieldIPName       = "search_ip_name"
	fieldIPPatronymic = "search_ip_patronymic"

	ipInfoValue = "ip"
)

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Transport is used by every request, nil means http.DefaultTransport.
	Transport http.RoundTripper
}

type Client struct {
	baseURL    string
	origin     string
	userAgent  string
	timeout    time.Duration
	transport  http.RoundTripper
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	return &Client{
		baseURL:   baseURL,
		origin:    originOf(baseURL),
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		transport: opts.Transport,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
	}
}

// FindOrganizationByINN returns the first organization the registry lists for inn.
func (c *Client) FindOrganizationByINN(ctx context.Context, inn string) (entity.Record, error) {
	form := url.Values{
		fieldInfo:   {orgInfoValue},
		fieldOrgINN: {inn},
	}

	records, err := c.searchOrganizations(ctx, form)
	if err != nil {
		return entity.Record{}, err
	}
	return first(records)
}

// FindOrganizationsByName returns every organization whose name matches. A page
// without a results table yields an empty slice and no error.
func (c *Client) FindOrganizationsByName(ctx context.Context, name string) ([]entity.Record, error) {
	form := url.Values{
		fieldInfo:    {orgInfoValue},
		fieldOrgName: {name},
	}

	records, err := c.searchOrganizations(ctx, form)
	if errors.Is(err, ErrNotFound) {
		return []entity.Record{}, nil
	}
	return records, err
}

// FindEntrepreneurByINN runs a fresh entrepreneur session and returns the first match.
func (c *Client) FindEntrepreneurByINN(ctx context.Context, inn string) (entity.Record, error) {
	form := url.Values{
		fieldInfo:  {ipInfoValue},
		fieldIPINN: {inn},
	}

	records, err := c.searchEntrepreneurs(ctx, form)
	if err != nil {
		return entity.Record{}, err
	}
	return first(records)
}

// FindEntrepreneursByName runs a fresh entrepreneur session. Given name and
// patronymic are always submitted, empty when unknown.
func (c *Client) FindEntrepreneursByName(ctx context.Context, name entity.PersonName) ([]entity.Record, error) {
	form := url.Values{
		fieldInfo:         {ipInfoValue},
		fieldIPSurname:    {name.Surname},
		fieldIPName:       {name.Given},
		fieldIPPatronymic: {name.Patronymic},
	}

	records, err := c.searchEntrepreneurs(ctx, form)
	if errors.Is(err, ErrNotFound) {
		return []entity.Record{}, nil
	}
	return records, err
}

func (c *Client) searchOrganizations(ctx context.Context, form url.Values) ([]entity.Record, error) {
	req, err := c.newSearchRequest(ctx, form)
	if err != nil {
		return nil, err
	}
	return c.searchRecords(c.httpClient, req, entity.KindOrganization)
}

func (c *Client) searchEntrepreneurs(ctx context.Context, form url.Values) ([]entity.Record, error) {
	session, err := c.NewEntrepreneurSession()
	if err != nil {
		return nil, err
	}

	if err = session.Open(ctx); err != nil {
		return nil, err
	}
	return session.Search(ctx, form)
}

func (c *Client) newSearchRequest(ctx context.Context, form url.Values) (*http.Request, error) {
	form.Set(fieldButton, searchButton)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// searchRecords sends req and parses the results table. ErrNotFound is
// returned when the table is missing.
func (c *Client) searchRecords(hc *http.Client, req *http.Request, kind entity.Kind) ([]entity.Record, error) {
	resp, err := c.send(hc, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrUpstream, req.URL.Path, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrUpstream, req.URL.Path, err)
	}

	table := findResultsTable(doc)
	if table == nil {
		return nil, ErrNotFound
	}
	return ExtractRecords(table, kind), nil
}

// send performs req with the identifying user agent. The caller owns the body
// of the returned response.
func (c *Client) send(hc *http.Client, req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUpstream, req.Method, req.URL.Path, err)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s failed with status code: %d", ErrUpstream, req.Method, req.URL.Path, resp.StatusCode)
	}
	return resp, nil
}

func first(records []entity.Record) (entity.Record, error) {
	if len(records) == 0 {
		return entity.Record{}, ErrNotFound
	}
	return records[0], nil
}

func originOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return baseURL
	}
	return u.Scheme + "://" + u.Host
}
