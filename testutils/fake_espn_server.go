package testutils

import (
	"embed"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

const (
	ESPNLeagueID = "123456"
	ESPNSeason   = "2025"
)

//go:embed espndata
var espndata embed.FS

// FakeESPNServer serves a single private league. Requests without both
// auth cookies get a 401, just like the real API.
type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Get("/seasons/{season}/segments/0/leagues/{leagueID}", espnLeagueHandler)

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

func espnLeagueHandler(w http.ResponseWriter, r *http.Request) {
	if !hasCookie(r, "espn_s2") || !hasCookie(r, "SWID") {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"messages":["You are not authorized to view this League."]}`))
		return
	}

	if chi.URLParam(r, "leagueID") != ESPNLeagueID || chi.URLParam(r, "season") != ESPNSeason {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"messages":["Not Found"]}`))
		return
	}

	serveFile(w, espndata, "espndata/league.json")
}

func hasCookie(r *http.Request, name string) bool {
	c, err := r.Cookie(name)
	return err == nil && c.Value != ""
}
