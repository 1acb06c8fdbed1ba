package v1handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"grocer/pkg/domain"
	"grocer/pkg/logger"
	"grocer/pkg/serrors"
	"grocer/pkg/units"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// decodeJSON decodes the request body into dst. Errors that already carry a
// semantic kind (e.g. an unknown unit inside a quantity) pass through
// untouched so their kind reaches the response; anything else is flagged as a
// bad request.
func decodeJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var sErr *serrors.Error
		if errors.As(err, &sErr) {
			return err
		}

		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode request body"),
			"could not decode request body")
	}

	return nil
}

// statusByKind maps semantic error kinds to HTTP statuses and fallback
// messages. More specific kinds come first so that a wrapped specific kind is
// not shadowed by a generic one.
//
//nolint: gochecknoglobals
var statusByKind = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrInvalidUnit, http.StatusBadRequest, "invalid unit"},
	{serrors.ErrDimensionMismatch, http.StatusBadRequest, "dimension mismatch"},
	{serrors.ErrUnregularizable, http.StatusBadRequest, "unregularizable quantity"},
	{serrors.ErrMalformedRecord, http.StatusBadRequest, "malformed record"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
}

// ErrorPayload is the wire form of an API error response.
type ErrorPayload struct {
	// Status is the HTTP status code.
	Status int
	// Code is the stable machine-readable error code.
	Code string
	// Message is the human-readable description.
	Message string
}

// NewError maps an error to the payload returned to API clients. Errors
// without a recognized semantic kind are reported as internal without leaking
// details.
func NewError(ctx context.Context, err error) ErrorPayload {
	logger.Error(ctx, err.Error())

	for _, entry := range statusByKind {
		if !errors.Is(err, entry.kind) {
			continue
		}

		message := entry.message
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			message = sErr.Message()
		}

		return ErrorPayload{Status: entry.status, Code: entry.kind.Error(), Message: message}
	}

	return ErrorPayload{
		Status:  http.StatusInternalServerError,
		Code:    serrors.ErrInternal.Error(),
		Message: "internal error",
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	payload := NewError(ctx, err)
	writeJSON(ctx, w, payload.Status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(payload.Code)
		e.FieldStart("message")
		e.Str(payload.Message)
		e.ObjEnd()
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func encodeQuantity(e *jx.Encoder, q units.Quantity) {
	e.ObjStart()
	e.FieldStart("value")
	e.Float64(q.Value)
	e.FieldStart("unit")
	e.Str(q.Unit.Symbol())
	e.ObjEnd()
}

func encodeEntry(e *jx.Encoder, entry domain.IngredientEntry, sigFigs int) {
	e.ObjStart()
	e.FieldStart("item")
	e.Str(entry.Item)
	e.FieldStart("quantity")
	encodeQuantity(e, entry.Quantity)
	e.FieldStart("display")
	e.Str(entry.Quantity.Format(sigFigs))
	e.ObjEnd()
}

func encodeItems(e *jx.Encoder, items domain.GroceryList, sigFigs int) {
	e.ArrStart()
	for _, entry := range items {
		encodeEntry(e, entry, sigFigs)
	}
	e.ArrEnd()
}

func encodeSavedList(e *jx.Encoder, list *domain.SavedList, sigFigs int) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(list.ID.String())
	e.FieldStart("name")
	e.Str(list.Name)
	e.FieldStart("items")
	encodeItems(e, list.Items, sigFigs)
	e.FieldStart("createdAt")
	e.Str(list.CreatedAt.Format(time.RFC3339Nano))
	if !list.UpdatedAt.IsZero() {
		e.FieldStart("updatedAt")
		e.Str(list.UpdatedAt.Format(time.RFC3339Nano))
	}
	e.ObjEnd()
}

func encodeFactor(e *jx.Encoder, factor units.Factor) {
	e.ObjStart()
	e.FieldStart("value")
	e.Float64(factor.Value)
	e.FieldStart("unit")
	e.Str(factor.Num.Symbol() + "/" + factor.Den.Symbol())
	e.ObjEnd()
}

func encodeMaterial(e *jx.Encoder, material domain.Material) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(material.Name)
	e.FieldStart("unit")
	e.Str(material.Unit.Symbol())
	if material.MassPerUnit != nil {
		e.FieldStart("massPerUnit")
		encodeFactor(e, *material.MassPerUnit)
	}
	if material.VolumePerUnit != nil {
		e.FieldStart("volumePerUnit")
		encodeFactor(e, *material.VolumePerUnit)
	}
	e.ObjEnd()
}
