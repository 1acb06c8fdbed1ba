package v1handler

import (
	"net/http"

	"grocer/pkg/domain"

	"github.com/go-faster/jx"
)

// syncMaterialsRequest carries a materials catalog update.
type syncMaterialsRequest struct {
	Materials []domain.Material `json:"materials"`
	// Prune removes stored materials absent from the posted set.
	Prune bool `json:"prune"`
}

// putMaterials upserts the posted materials into the stored catalog.
func (h *Handler) putMaterials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req syncMaterialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	affected, err := h.deps.Grocer.SyncMaterials(ctx, req.Materials, req.Prune)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("affected")
		e.Int64(affected)
		e.ObjEnd()
	})
}

// getMaterials returns the stored materials catalog ordered by name.
func (h *Handler) getMaterials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	materials, err := h.deps.Grocer.Materials(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, material := range materials {
			encodeMaterial(e, material)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}
