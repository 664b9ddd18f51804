package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

const (
	SleeperLeagueID = "784462448236363776"
	SleeperSeason   = "2025"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// FakeSleeperServer serves both the Sleeper API and the projections API.
type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", sleeperFileHandler("players.json"))
		r.Get("/state/nfl", sleeperFileHandler("state.json"))

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", sleeperLeagueHandler("league.json"))
			r.Get("/rosters", sleeperLeagueHandler("rosters.json"))
			r.Get("/users", sleeperLeagueHandler("users.json"))
			r.Get("/matchups/{week}", sleeperMatchupsHandler)
		})
	})
	r.Get("/projections/nfl/{season}/{week}", sleeperProjectionsHandler)

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func sleeperFileHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, sleeperdata, "sleeperdata/"+name)
	}
}

// Unknown league ids get a 200 with "null" as the body, same as the real API.
func sleeperLeagueHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") != SleeperLeagueID {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("null"))
			return
		}
		serveFile(w, sleeperdata, "sleeperdata/"+name)
	}
}

func sleeperMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != SleeperLeagueID || chi.URLParam(r, "week") != "3" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, sleeperdata, "sleeperdata/matchups_3.json")
}

func sleeperProjectionsHandler(w http.ResponseWriter, r *http.Request) {
	season := chi.URLParam(r, "season")
	week := chi.URLParam(r, "week")
	if r.URL.Query().Get("season_type") != "regular" || season != SleeperSeason || week != "3" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, sleeperdata, fmt.Sprintf("sleeperdata/projections_%s_%s.json", season, week))
}

func serveFile(w http.ResponseWriter, fs embed.FS, name string) {
	b, err := fs.ReadFile(name)
	if err != nil {
		log.Printf("error reading %s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
