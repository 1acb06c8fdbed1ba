package v1handler

import (
	"context"
	"net/http"
	"time"

	"grocer/pkg/domain"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// buildRequest bundles inline materials and recipes for one build call.
type buildRequest struct {
	Materials []domain.Material `json:"materials"`
	Recipes   []domain.Recipe   `json:"recipes"`
}

// createBuild consolidates the posted recipes into a grocery list without
// persisting it.
func (h *Handler) createBuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateBuild")
	defer span.End()

	var req buildRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	span.SetAttributes(attribute.Int("recipes", len(req.Recipes)))

	start := time.Now()
	list, err := h.deps.Grocer.BuildList(ctx, req.Materials, req.Recipes)
	h.recordBuild(ctx, time.Since(start), list, err)
	if err != nil {
		span.RecordError(err)
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		encodeItems(e, list, h.options.SigFigs)
		e.FieldStart("lines")
		e.ArrStart()
		for _, line := range list.Lines(h.options.SigFigs) {
			e.Str(line)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// recordBuild updates the build metrics for one build attempt.
func (h *Handler) recordBuild(ctx context.Context, took time.Duration, list domain.GroceryList, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	attrs := metric.WithAttributes(attribute.String("status", status))
	h.builds.Add(ctx, 1, attrs)
	h.buildDuration.Record(ctx, took.Seconds(), attrs)
	if err == nil {
		h.buildItems.Record(ctx, int64(len(list)))
	}
}
