package grocer_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"grocer/internal/grocer"
	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/storage"
	mockstorage "grocer/pkg/storage/mock"
	"grocer/pkg/units"

	"go.uber.org/mock/gomock"
)

func newTestGrocer(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, grocer.Grocer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	g := grocer.New(st, grocer.Options{PageLimit: 50})

	return ctrl, st, g
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestGrocer_BuildList_InlineMaterialOverridesStored(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return([]domain.Material{flour()}, nil)

	// The caller's flour is denser: a cup of it weighs 250 g.
	dense := flour()
	dense.VolumePerUnit = &units.Factor{Value: 0.004, Num: units.Cup, Den: units.Gram}

	recipes := []domain.Recipe{
		{Name: "Bread", Ingredients: []domain.IngredientEntry{entry("Flour", 1, units.Cup)}},
	}

	list, err := g.BuildList(context.Background(), []domain.Material{dense}, recipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || math.Abs(list[0].Quantity.Value-250) > 1e-9 {
		t.Fatalf("expected the inline factor to win, got %+v", list)
	}
}

func TestGrocer_BuildList_StorageError(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return(nil, errors.New("boom"))

	if _, err := g.BuildList(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error from Materials")
	}
}

func TestGrocer_BuildList_BuildErrorPropagates(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return([]domain.Material{
		{Name: "Honey", Unit: units.Gram},
	}, nil)

	recipes := []domain.Recipe{
		{Name: "Granola", Ingredients: []domain.IngredientEntry{entry("Honey", 2, units.Tablespoon)}},
	}

	_, err := g.BuildList(context.Background(), nil, recipes)
	if !errors.Is(err, serrors.ErrUnregularizable) {
		t.Fatalf("expected ErrUnregularizable, got %v", err)
	}
}

func TestGrocer_BuildAndSave(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return([]domain.Material{flour()}, nil)
	st.EXPECT().StoreLists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, lists ...domain.SavedList) ([]domain.SavedList, error) {
			if len(lists) != 1 {
				t.Fatalf("expected one list input")
			}
			ret := lists
			ret[0].ID = domain.NewListID()
			ret[0].CreatedAt = time.Now()

			return ret, nil
		},
	)

	recipes := []domain.Recipe{
		{Name: "Bread", Ingredients: []domain.IngredientEntry{
			entry("Flour", 200, units.Gram),
			entry("Flour", 1, units.Cup),
		}},
	}

	saved, err := g.BuildAndSave(context.Background(), "weekly shop", nil, recipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Name != "weekly shop" {
		t.Fatalf("expected name to be kept, got %q", saved.Name)
	}
	if len(saved.Items) != 1 || math.Abs(saved.Items[0].Quantity.Value-700) > 1e-9 {
		t.Fatalf("unexpected items: %+v", saved.Items)
	}
}

func TestGrocer_BuildAndSave_DoesNotStoreOnBuildError(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return([]domain.Material{
		{Name: "Honey", Unit: units.Gram},
	}, nil)
	st.EXPECT().StoreLists(gomock.Any(), gomock.Any()).Times(0)

	recipes := []domain.Recipe{
		{Name: "Granola", Ingredients: []domain.IngredientEntry{entry("Honey", 2, units.Tablespoon)}},
	}

	if _, err := g.BuildAndSave(context.Background(), "x", nil, recipes); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGrocer_SavedLists_SuccessAndPagination(t *testing.T) {
	_, st, g := newTestGrocer(t)

	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339Nano)

	page := storage.ListPage{
		Lists: []domain.SavedList{{Name: "weekly shop"}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().SavedLists(gomock.Any(), cursorTime, uint(10)).Return(page, nil)

	lists, next, err := g.SavedLists(context.Background(), cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "weekly shop" {
		t.Fatalf("unexpected lists: %+v", lists)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestGrocer_SavedLists_LimitClamped(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().SavedLists(gomock.Any(), time.Time{}, uint(50)).Return(storage.ListPage{}, nil).Times(2)

	if _, _, err := g.SavedLists(context.Background(), "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := g.SavedLists(context.Background(), "", 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGrocer_SavedLists_InvalidCursor(t *testing.T) {
	_, _, g := newTestGrocer(t)

	_, _, err := g.SavedLists(context.Background(), "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestGrocer_SavedList(t *testing.T) {
	_, st, g := newTestGrocer(t)
	id := domain.NewListID()

	// found
	st.EXPECT().ListByID(gomock.Any(), id).Return(&domain.SavedList{ID: id, Name: "x"}, nil)
	list, err := g.SavedList(context.Background(), id)
	if err != nil || list == nil || list.Name != "x" {
		t.Fatalf("unexpected: list=%+v err=%v", list, err)
	}

	// not found
	st.EXPECT().ListByID(gomock.Any(), id).Return(nil, nil)
	_, err = g.SavedList(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().ListByID(gomock.Any(), id).Return(nil, errors.New("boom"))
	if _, err := g.SavedList(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestGrocer_DeleteList(t *testing.T) {
	_, st, g := newTestGrocer(t)
	id := domain.NewListID()

	// success
	st.EXPECT().DeleteList(gomock.Any(), id).Return(&domain.SavedList{ID: id}, nil)
	if err := g.DeleteList(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteList(gomock.Any(), id).Return(nil, nil)
	err := g.DeleteList(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteList(gomock.Any(), id).Return(nil, errors.New("boom"))
	if err := g.DeleteList(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestGrocer_Materials(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().Materials(gomock.Any()).Return([]domain.Material{flour()}, nil)
	ms, err := g.Materials(context.Background())
	if err != nil || len(ms) != 1 || ms[0].Name != "Flour" {
		t.Fatalf("unexpected: materials=%+v err=%v", ms, err)
	}

	st.EXPECT().Materials(gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := g.Materials(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestGrocer_SyncMaterials(t *testing.T) {
	ctrl, st, g := newTestGrocer(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertMaterials(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
	})

	count, err := g.SyncMaterials(context.Background(), []domain.Material{flour(), eggs()}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 upserts, got %d", count)
	}
}

func TestGrocer_SyncMaterials_Prune(t *testing.T) {
	ctrl, st, g := newTestGrocer(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertMaterials(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		tx.EXPECT().DeleteMaterialsNotIn(gomock.Any(), []string{"Flour"}).Return(int64(3), nil)
	})

	count, err := g.SyncMaterials(context.Background(), []domain.Material{flour()}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 upsert, got %d", count)
	}
}

func TestGrocer_SyncMaterials_Rejections(t *testing.T) {
	_, st, g := newTestGrocer(t)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	// nothing to sync
	_, err := g.SyncMaterials(context.Background(), nil, false)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// malformed material
	bad := flour()
	bad.VolumePerUnit = &units.Factor{Value: 0, Num: units.Cup, Den: units.Gram}
	_, err = g.SyncMaterials(context.Background(), []domain.Material{bad}, false)
	if err == nil || !errors.Is(err, serrors.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestGrocer_SyncMaterials_TxError(t *testing.T) {
	_, st, g := newTestGrocer(t)

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("tx err"))

	if _, err := g.SyncMaterials(context.Background(), []domain.Material{flour()}, false); err == nil {
		t.Fatalf("expected error from WithTx")
	}
}
