package router

import (
	"net/http"

	mem "bird-sightings/internal/adapters/storage/memory"
	"bird-sightings/internal/docs"
	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"
	"bird-sightings/internal/middleware"
	"bird-sightings/internal/platform/logger"
	"bird-sightings/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => logger.Nop()
	Metrics *metrics.Metrics // nil => registry propio

	// Opcionales: si no vienen, in-memory.
	Birds     birds.Repository
	Sightings sightings.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	birdRepo := opts.Birds
	if birdRepo == nil {
		birdRepo = mem.NewBirdRepo()
	}
	sightingRepo := opts.Sightings
	if sightingRepo == nil {
		sightingRepo = mem.NewSightingRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	// Services por módulo. El de sightings consulta el store de birds
	// para validar que el bird exista.
	birdsSvc := birds.NewService(birdRepo)
	sightingsSvc := sightings.NewService(sightingRepo, birdRepo)

	// Rutas por módulo
	birds.RegisterRoutes(r, birdsSvc, log, m)
	sightings.RegisterRoutes(r, sightingsSvc, log, m)

	return r
}
