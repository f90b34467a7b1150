package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pet-kata/docs"
	mem "pet-kata/internal/adapters/storage/memory"
	pg "pet-kata/internal/adapters/storage/postgres"
	"pet-kata/internal/domain/people"
	"pet-kata/internal/domain/petstats"
	"pet-kata/internal/middleware"
	"pet-kata/internal/platform/metrics"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales: nil => zap.NewNop() / registry nuevo.
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// NewRouter arma el API y siembra el roster si el repositorio está vacío.
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	var repo people.Repository
	if opts.DB != nil {
		repo = pg.NewPeopleRepo(opts.DB)
		log.Info("using postgres repository")
	} else {
		repo = mem.NewPeopleRepo()
		log.Info("using in-memory repository")
	}

	peopleSvc := people.NewService(repo)
	roster, err := seedIfEmpty(ctx, peopleSvc)
	if err != nil {
		return nil, err
	}
	m.SetRoster(len(roster), len(people.AllPets(roster)))
	log.Info("roster ready", zap.Int("people", len(roster)))

	statsSvc := petstats.NewService(peopleSvc)

	r := chi.NewRouter()

	r.Use(middleware.Stack(log, m)...)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	people.RegisterRoutes(r, peopleSvc)
	petstats.RegisterRoutes(r, statsSvc)

	return r, nil
}

func seedIfEmpty(ctx context.Context, svc *people.Service) ([]people.Person, error) {
	current, err := svc.People(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	if len(current) > 0 {
		return current, nil
	}

	roster := people.NewRoster()
	if err := svc.Seed(ctx, roster); err != nil {
		return nil, err
	}
	return roster, nil
}
