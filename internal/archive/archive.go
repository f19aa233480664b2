package archive

import (
	"context"
	"errors"
	"sync"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var (
	InFlightError = errors.New("an archival of this record is already in progress")
)

// Archiver moves a document from its primary collection to a sibling archive
// collection via copy-then-delete. The two steps are not transactional: a
// failure between the copy and the delete leaves both a live and an archived
// copy. The archive write is keyed by the source document id, so re-running
// the sequence after a partial failure overwrites the same archive document
// instead of duplicating it (at-least-once, not exactly-once).
type Archiver struct {
	client store.Client

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewArchiver(client store.Client) *Archiver {
	return &Archiver{
		client:   client,
		inFlight: make(map[string]bool),
	}
}

// Archive copies the full document body from source to destination, then
// deletes the source. A second Archive of the same document while one is in
// flight returns InFlightError, closing the double-submit race.
func (a *Archiver) Archive(ctx context.Context, source, destination, id string) error {
	key := source + "/" + id

	a.mu.Lock()
	if a.inFlight[key] {
		a.mu.Unlock()
		return InFlightError
	}
	a.inFlight[key] = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		delete(a.inFlight, key)
		a.mu.Unlock()
	}()

	// The archive collection holds a flat copy, so the full body is read, not
	// just the id.
	doc, err := a.client.Get(ctx, source, id)
	if err != nil {
		return err
	}

	if err := a.client.Set(ctx, destination, id, doc.Data); err != nil {
		return err
	}

	return a.client.Delete(ctx, source, id)
}
