package postgres

import (
	"context"
	"fmt"
	"grocer/pkg/domain"
	"grocer/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const listsTable = "lists"

// StoreLists persists the given grocery lists and returns the stored rows with
// their database-assigned identifiers and timestamps.
func (p *PgSQL) StoreLists(ctx context.Context, lists ...domain.SavedList) ([]domain.SavedList, error) {
	pgLists, err := domainListsToPg(lists)
	if err != nil {
		return nil, fmt.Errorf("could not convert lists to db models: %w", err)
	}

	var inserted []PgList
	if err := p.Builder.
		Insert(listsTable).
		Rows(pgLists).
		Returning(&PgList{}).
		Executor().
		ScanStructsContext(ctx, &inserted); err != nil {
		return nil, fmt.Errorf("could not insert lists: %w", err)
	}

	result, err := pgListsToDomain(inserted)
	if err != nil {
		return nil, fmt.Errorf("could not convert inserted lists to domain models: %w", err)
	}

	return result, nil
}

// SavedLists returns a page of stored lists ordered from newest to oldest. A
// zero cursor starts from the newest list; otherwise only lists created before
// the cursor are returned. The page size is capped at limit.
func (p *PgSQL) SavedLists(ctx context.Context, cursor time.Time, limit uint) (storage.ListPage, error) {
	query := p.Builder.
		From(listsTable).
		Where(goqu.I("deleted_at").IsNull())
	if !cursor.IsZero() {
		query = query.Where(goqu.I("created_at").Lt(cursor))
	}

	var pgLists []PgList
	if err := query.
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		// fetch one extra row to detect whether a next page exists
		Limit(limit + 1).
		Executor().
		ScanStructsContext(ctx, &pgLists); err != nil {
		return storage.ListPage{}, fmt.Errorf("could not query lists: %w", err)
	}

	var page storage.ListPage
	if uint(len(pgLists)) > limit {
		pgLists = pgLists[:limit]
		page.NextCursor = &pgLists[len(pgLists)-1].CreatedAt
	}

	lists, err := pgListsToDomain(pgLists)
	if err != nil {
		return storage.ListPage{}, fmt.Errorf("could not convert lists to domain models: %w", err)
	}
	page.Lists = lists

	return page, nil
}

// ListByID returns the stored list with the given ID, or nil when no such list
// exists or it has been deleted.
func (p *PgSQL) ListByID(ctx context.Context, ID domain.ListID) (*domain.SavedList, error) {
	var pgList PgList
	found, err := p.Builder.
		From(listsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID)), goqu.I("deleted_at").IsNull()).
		Executor().
		ScanStructContext(ctx, &pgList)
	if err != nil {
		return nil, fmt.Errorf("could not query list: %w", err)
	}
	if !found {
		return nil, nil
	}

	list, err := pgList.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("could not convert list to domain model: %w", err)
	}

	return list, nil
}

// DeleteList soft-deletes the stored list with the given ID and returns the
// deleted list, or nil when no live list with that ID exists.
func (p *PgSQL) DeleteList(ctx context.Context, ID domain.ListID) (*domain.SavedList, error) {
	var pgList PgList
	found, err := p.Builder.
		Update(listsTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(ID)), goqu.I("deleted_at").IsNull()).
		Returning(&PgList{}).
		Executor().
		ScanStructContext(ctx, &pgList)
	if err != nil {
		return nil, fmt.Errorf("could not delete list: %w", err)
	}
	if !found {
		return nil, nil
	}

	list, err := pgList.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("could not convert list to domain model: %w", err)
	}

	return list, nil
}
