package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/mww/starter_optimizer/controller"
	"github.com/mww/starter_optimizer/logger"
	"github.com/mww/starter_optimizer/model"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// NewServer serves the dashboard for a single configured league.
func NewServer(port int, ctrl controller.C, league model.League) (*Server, error) {
	if !model.IsPlatformSupported(league.Platform) {
		return nil, fmt.Errorf("%w: %s", controller.ErrUnsupportedPlatform, league.Platform)
	}

	render := newRender()
	router := getRouter(ctrl, league, render)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	log := logger.WithComponent("web")

	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("error shutting down server")
		}
	}()

	log.Infof("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points": pointsFormatter,
				"label":  labelFormatter,
				"date":   dateFormatter,
			},
		},
	})
}

func pointsFormatter(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func labelFormatter(p model.Player) string {
	return p.Label()
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02 15:04")
}
