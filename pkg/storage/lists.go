package storage

import (
	"context"
	"grocer/pkg/domain"
	"time"
)

// ListPage groups a page of saved lists together with an optional NextCursor
// used for pagination.
type ListPage struct {
	// Lists contains the current page of saved grocery lists.
	Lists []domain.SavedList
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ListStorage defines CRUD and query operations related to saved grocery
// lists. Implementations should ensure proper handling of soft-deletes.
type ListStorage interface {
	// StoreLists inserts one or more lists and returns the stored rows as they
	// exist in the database (including generated fields).
	StoreLists(ctx context.Context, lists ...domain.SavedList) ([]domain.SavedList, error)
	// SavedLists returns a page of lists created before the optional cursor
	// time, newest first, limited by the given limit.
	SavedLists(ctx context.Context, cursor time.Time, limit uint) (ListPage, error)
	// ListByID fetches a list by its ID, excluding soft-deleted records.
	// Returns nil when not found.
	ListByID(ctx context.Context, ID domain.ListID) (*domain.SavedList, error)
	// DeleteList performs a soft delete for the given list ID and returns the
	// deleted list, or nil if it was not found.
	DeleteList(ctx context.Context, ID domain.ListID) (*domain.SavedList, error)
}
