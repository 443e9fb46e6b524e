package source

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// The four location reference tables form a flat namespace: each level is
// resolved independently by numeric id with no hierarchy walk.

// ResolveLocation resolves display names for the given location ids. The
// four reads share no state and have no ordering dependency, so they run
// concurrently and join before returning; this is the only parallelism in a
// record's processing. A miss or lookup error leaves the name nil.
func (s *Store) ResolveLocation(ctx context.Context, ids LocationIDs) Location {
	loc := Location{LocationIDs: ids}
	var wg sync.WaitGroup
	lookups := []struct {
		table string
		id    *int64
		dst   **string
	}{
		{"states", ids.State, &loc.StateName},
		{"districts", ids.District, &loc.DistrictName},
		{"blocks", ids.Block, &loc.BlockName},
		{"villages", ids.Village, &loc.VillageName},
	}
	for _, l := range lookups {
		if l.id == nil {
			continue
		}
		wg.Add(1)
		go func(table string, id int64, dst **string) {
			defer wg.Done()
			*dst = s.locationName(ctx, table, id)
		}(l.table, *l.id, l.dst)
	}
	wg.Wait()
	return loc
}

// locationName reads one reference table. A miss is degraded data, not an
// error; query failures are logged and resolve to nil.
func (s *Store) locationName(ctx context.Context, table string, id int64) *string {
	// table is one of the four fixed reference-table names, never user input.
	var name string
	err := s.db.QueryRowContext(ctx, s.bind(`SELECT name FROM `+table+` WHERE id = ?`), id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"table": table, "id": id}).Warn("location name lookup failed")
		return nil
	}
	return &name
}
