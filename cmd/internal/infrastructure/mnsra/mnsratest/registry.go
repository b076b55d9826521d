// Package mnsratest provides an in-memory stand-in for the MNS registry web
// search, serving the same form endpoints and HTML results table.
package mnsratest

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"mnsreestr/cmd/internal/domain/entity"
)

const (
	SearchPath  = "/reestr/search.php"
	LandingPath = "/reestr/entrepreneur.php"

	SessionCookie = "PHPSESSID"
	SearchButton  = "Искать"
)

// Request is what the fake saw of one incoming call.
type Request struct {
	Method  string
	Path    string
	Form    url.Values
	Header  http.Header
	Session string
}

// Registry answers organization and entrepreneur searches from its fixtures.
// Zero status fields mean 200.
type Registry struct {
	Organizations []entity.Record
	Entrepreneurs []entity.Record

	LandingStatus int
	SearchStatus  int

	// OmitTable renders result pages without the results table.
	OmitTable bool

	// Windows1251 serves pages in the legacy cyrillic code page.
	Windows1251 bool

	mu       sync.Mutex
	requests []Request
	sessions int
	server   *httptest.Server
}

// NewServer starts r on a local test server.
func NewServer(r *Registry) *httptest.Server {
	r.server = httptest.NewServer(r)
	return r.server
}

// Requests returns a copy of every request received so far.
func (r *Registry) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}

// RequestsTo filters Requests by path.
func (r *Registry) RequestsTo(path string) []Request {
	var out []Request
	for _, req := range r.Requests() {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	_ = req.ParseForm()

	session := ""
	if c, err := req.Cookie(SessionCookie); err == nil {
		session = c.Value
	}

	r.mu.Lock()
	r.requests = append(r.requests, Request{
		Method:  req.Method,
		Path:    req.URL.Path,
		Form:    req.PostForm,
		Header:  req.Header.Clone(),
		Session: session,
	})
	r.mu.Unlock()

	switch req.URL.Path {
	case LandingPath:
		r.serveLanding(w)
	case SearchPath:
		r.serveSearch(w, req, session)
	default:
		http.NotFound(w, req)
	}
}

func (r *Registry) serveLanding(w http.ResponseWriter) {
	if r.LandingStatus != 0 && r.LandingStatus != http.StatusOK {
		w.WriteHeader(r.LandingStatus)
		return
	}

	r.mu.Lock()
	r.sessions++
	id := fmt.Sprintf("session-%d", r.sessions)
	r.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: id, Path: "/"})
	r.writePage(w, `<form method="post" action="search.php"></form>`)
}

func (r *Registry) serveSearch(w http.ResponseWriter, req *http.Request, session string) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if r.SearchStatus != 0 && r.SearchStatus != http.StatusOK {
		w.WriteHeader(r.SearchStatus)
		return
	}

	form := req.PostForm
	if r.OmitTable || form.Get("search") != SearchButton {
		r.writePage(w, "<p>Ничего не найдено</p>")
		return
	}

	var records []entity.Record
	switch form.Get("search_info") {
	case "None":
		records = r.matchOrganizations(form)
	case "ip":
		if session == "" || !r.sameSite(req) {
			r.writePage(w, "<p>Сессия устарела</p>")
			return
		}
		records = r.matchEntrepreneurs(form)
	}

	if len(records) == 0 {
		r.writePage(w, "<p>Ничего не найдено</p>")
		return
	}
	r.writePage(w, ResultsTable(records...))
}

func (r *Registry) sameSite(req *http.Request) bool {
	if r.server == nil {
		return true
	}
	return req.Header.Get("Origin") == r.server.URL &&
		req.Header.Get("Referer") == r.server.URL+LandingPath
}

func (r *Registry) matchOrganizations(form url.Values) []entity.Record {
	inn := form.Get("search_inn")
	name := form.Get("search_name")

	var out []entity.Record
	for _, rec := range r.Organizations {
		switch {
		case inn != "" && rec.INN == inn:
			out = append(out, rec)
		case inn == "" && name != "" && containsFold(rec.Name, name):
			out = append(out, rec)
		}
	}
	return out
}

func (r *Registry) matchEntrepreneurs(form url.Values) []entity.Record {
	inn := form.Get("search_ip_inn")
	surname := form.Get("search_ip_surname")
	given := form.Get("search_ip_name")
	patronymic := form.Get("search_ip_patronymic")

	var out []entity.Record
	for _, rec := range r.Entrepreneurs {
		if inn != "" {
			if rec.INN == inn {
				out = append(out, rec)
			}
			continue
		}

		if surname == "" || !containsFold(rec.Name, surname) {
			continue
		}
		if given != "" && !containsFold(rec.Name, given) {
			continue
		}
		if patronymic != "" && !containsFold(rec.Name, patronymic) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (r *Registry) writePage(w http.ResponseWriter, content string) {
	page := "<html><head><title>Реестр</title></head><body>" + content + "</body></html>"

	if r.Windows1251 {
		encoded, err := charmap.Windows1251.NewEncoder().String(page)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write([]byte(encoded))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// ResultsTable renders records the way the registry does: a header row
// followed by one seven-column row per record.
func ResultsTable(records ...entity.Record) string {
	var b strings.Builder
	b.WriteString(`<table class="results">`)
	b.WriteString("<tr><th>Наименование</th><th>ИНН</th><th>Дата регистрации</th>" +
		"<th>Номер свидетельства</th><th>ОГРН</th><th>Статус налогоплательщика</th><th>Состояние</th></tr>")

	for _, rec := range records {
		b.WriteString("<tr>")
		for _, cell := range []string{
			rec.Name, rec.INN, rec.RegistrationDate, rec.CertificateNumber,
			rec.OGRN, rec.TaxpayerStatus, rec.Status,
		} {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</table>")
	return b.String()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
