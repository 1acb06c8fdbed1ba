package v1handler

import (
	"fmt"
	"net/http"

	"grocer/internal/config"
	"grocer/internal/grocer"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Deps bundles the service dependencies used by the v1 handlers.
type Deps struct {
	// Grocer is the application service behind every v1 endpoint.
	Grocer grocer.Grocer
}

// Options configure response rendering for the v1 handlers.
type Options struct {
	// SigFigs is the number of significant figures used when rendering
	// display strings for quantities.
	SigFigs int
}

// NewOptions constructs an Options value from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{SigFigs: cfg.Build.SigFigs}
}

// Handler implements the v1 HTTP API.
type Handler struct {
	deps    Deps
	options Options

	tracer trace.Tracer

	builds        metric.Int64Counter
	buildItems    metric.Int64Histogram
	buildDuration metric.Float64Histogram
}

// New creates a v1 Handler with its build metrics registered on the given
// meter provider.
func New(deps Deps, options Options, mp metric.MeterProvider) (*Handler, error) {
	meter := mp.Meter("grocer/api")

	builds, err := meter.Int64Counter("grocer.builds",
		metric.WithDescription("Number of grocery list builds"))
	if err != nil {
		return nil, fmt.Errorf("could not create builds counter: %w", err)
	}

	buildItems, err := meter.Int64Histogram("grocer.build.items",
		metric.WithDescription("Number of consolidated items per built list"))
	if err != nil {
		return nil, fmt.Errorf("could not create build items histogram: %w", err)
	}

	buildDuration, err := meter.Float64Histogram("grocer.build.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of grocery list builds"))
	if err != nil {
		return nil, fmt.Errorf("could not create build duration histogram: %w", err)
	}

	return &Handler{
		deps:          deps,
		options:       options,
		tracer:        otel.Tracer("grocer/api"),
		builds:        builds,
		buildItems:    buildItems,
		buildDuration: buildDuration,
	}, nil
}

// Routes returns the v1 route table. Paths are relative to the /v1 prefix the
// server mounts this handler under.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /builds", h.createBuild)
	mux.HandleFunc("POST /lists", h.createList)
	mux.HandleFunc("GET /lists", h.listLists)
	mux.HandleFunc("GET /lists/{id}", h.getList)
	mux.HandleFunc("DELETE /lists/{id}", h.deleteList)
	mux.HandleFunc("PUT /materials", h.putMaterials)
	mux.HandleFunc("GET /materials", h.getMaterials)

	return mux
}
