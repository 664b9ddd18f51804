package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/starter_optimizer/controller"
	"github.com/mww/starter_optimizer/model"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, league model.League, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logrus.StandardLogger(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped. The platforms can be slow.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/lineup", http.StatusFound)
	})

	r.Get("/lineup", lineupHandler(ctrl, league, render))
	r.Get("/matchups", matchupsHandler(ctrl, league, render))

	r.Route("/logs", func(r chi.Router) {
		r.Get("/", weeklyLogHandler(ctrl, league, render))
		r.Post("/", recordWeeklyTotalHandler(ctrl, league, render))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/lineup", lineupAPIHandler(ctrl, league, render))
		r.Get("/slots", slotsAPIHandler(ctrl, league, render))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusNotFound, "404", "page not found")
	})

	return r
}
