package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"grocer/internal/api/handler/v1handler"
	mockgrocer "grocer/internal/grocer/mock"
	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/units"
)

func newTestHandler(t *testing.T, m *mockgrocer.MockGrocer) *v1handler.Handler {
	t.Helper()

	h, err := v1handler.New(v1handler.Deps{Grocer: m}, v1handler.Options{SigFigs: 2}, noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	return h
}

func doRequest(h *v1handler.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	return rec
}

// errorBody decodes the error envelope written by writeError.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()

	var res struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("could not decode error body %q: %v", rec.Body.String(), err)
	}

	return res.Code, res.Message
}

func TestHandler_CreateBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockgrocer.NewMockGrocer(ctrl)
	h := newTestHandler(t, m)

	recipes := []domain.Recipe{{
		Name: "Bread",
		Ingredients: []domain.IngredientEntry{
			{Item: "Flour", Quantity: units.Quantity{Value: 500, Unit: units.MustParse("g")}},
		},
	}}
	list := domain.GroceryList{
		{Item: "Flour", Quantity: units.Quantity{Value: 700, Unit: units.MustParse("g")}},
	}
	m.EXPECT().BuildList(gomock.Any(), gomock.Nil(), recipes).Return(list, nil)

	rec := doRequest(h, http.MethodPost, "/builds",
		`{"recipes":[{"name":"Bread","ingredients":[{"item":"Flour","quantity":"500 g"}]}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Items []struct {
			Item     string         `json:"item"`
			Quantity units.Quantity `json:"quantity"`
			Display  string         `json:"display"`
		} `json:"items"`
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("could not decode body %q: %v", rec.Body.String(), err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items len = %d", len(res.Items))
	}
	if res.Items[0].Item != "Flour" || res.Items[0].Display != "700 g" {
		t.Fatalf("unexpected item %+v", res.Items[0])
	}
	if res.Items[0].Quantity.Value != 700 || res.Items[0].Quantity.Unit.Symbol() != "g" {
		t.Fatalf("unexpected quantity %+v", res.Items[0].Quantity)
	}
	if len(res.Lines) != 1 || res.Lines[0] != "- 700 g Flour" {
		t.Fatalf("unexpected lines %v", res.Lines)
	}
}

func TestHandler_CreateBuild_InlineMaterials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockgrocer.NewMockGrocer(ctrl)
	h := newTestHandler(t, m)

	materials := []domain.Material{{
		Name: "Flour",
		Unit: units.MustParse("g"),
		VolumePerUnit: &units.Factor{
			Value: 0.002,
			Num:   units.MustParse("cup"),
			Den:   units.MustParse("g"),
		},
	}}
	m.EXPECT().BuildList(gomock.Any(), materials, gomock.Any()).Return(domain.GroceryList{}, nil)

	rec := doRequest(h, http.MethodPost, "/builds",
		`{"materials":[{"name":"Flour","unit":"g","volumePerUnit":"0.002 cup/g"}],`+
			`"recipes":[{"name":"Bread","ingredients":[{"item":"Flour","quantity":"1 cup"}]}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_CreateBuild_UnknownUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockgrocer.NewMockGrocer(ctrl)
	h := newTestHandler(t, m)

	// decode fails before the service is reached
	m.EXPECT().BuildList(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := doRequest(h, http.MethodPost, "/builds",
		`{"recipes":[{"name":"Bread","ingredients":[{"item":"Flour","quantity":"3 parsec"}]}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	code, message := errorBody(t, rec)
	if code != serrors.ErrInvalidUnit.Error() {
		t.Fatalf("code = %q", code)
	}
	if !strings.Contains(message, "parsec") {
		t.Fatalf("message = %q", message)
	}
}

func TestHandler_CreateBuild_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockgrocer.NewMockGrocer(ctrl)
	h := newTestHandler(t, m)

	rec := doRequest(h, http.MethodPost, "/builds", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	code, _ := errorBody(t, rec)
	if code != serrors.ErrBadRequest.Error() {
		t.Fatalf("code = %q", code)
	}
}

func TestHandler_CreateBuild_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockgrocer.NewMockGrocer(ctrl)
	h := newTestHandler(t, m)

	m.EXPECT().BuildList(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnregularizable,
			"material %q has no conversion from volume into its canonical unit g", "Honey"))

	rec := doRequest(h, http.MethodPost, "/builds",
		`{"recipes":[{"name":"Tea","ingredients":[{"item":"Honey","quantity":"1 tbsp"}]}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	code, message := errorBody(t, rec)
	if code != serrors.ErrUnregularizable.Error() {
		t.Fatalf("code = %q", code)
	}
	if !strings.Contains(message, "Honey") {
		t.Fatalf("message = %q", message)
	}
}
