package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"grocer/pkg/domain"
	"grocer/pkg/logger"
	"grocer/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// createListRequest carries the payload for building and saving a grocery list.
type createListRequest struct {
	Name string `json:"name"`

	buildRequest
}

// createList consolidates the posted recipes and persists the result under the
// given name.
func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateList")
	defer span.End()

	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}
	if req.Name == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "list name is required"))

		return
	}

	logger.Info(ctx, "saving grocery list",
		zap.String("name", req.Name),
		zap.String("subject", GetSubjectFromContext(ctx)))

	start := time.Now()
	list, err := h.deps.Grocer.BuildAndSave(ctx, req.Name, req.Materials, req.Recipes)
	if err != nil {
		h.recordBuild(ctx, time.Since(start), nil, err)
		span.RecordError(err)
		writeError(ctx, w, err)

		return
	}
	h.recordBuild(ctx, time.Since(start), list.Items, nil)

	writeJSON(ctx, w, http.StatusCreated, func(e *jx.Encoder) {
		encodeSavedList(e, list, h.options.SigFigs)
	})
}

// listLists returns a page of saved lists, newest first.
func (h *Handler) listLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var limit uint
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit %q", raw))

			return
		}
		limit = uint(parsed)
	}

	lists, next, err := h.deps.Grocer.SavedLists(ctx, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for i := range lists {
			encodeSavedList(e, &lists[i], h.options.SigFigs)
		}
		e.ArrEnd()
		if next != "" {
			e.FieldStart("nextCursor")
			e.Str(next)
		}
		e.ObjEnd()
	})
}

// getList returns one saved list by ID.
func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseListID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	list, err := h.deps.Grocer.SavedList(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		encodeSavedList(e, list, h.options.SigFigs)
	})
}

// deleteList removes one saved list by ID.
func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseListID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Grocer.DeleteList(ctx, id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListID(r *http.Request) (domain.ListID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.ListID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid list ID %q", raw)
	}

	return domain.ListID(id), nil
}
