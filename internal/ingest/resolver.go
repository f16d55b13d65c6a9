package ingest

import (
	"context"
	"fmt"
)

type lguKey struct {
	name        string
	province    string
	hasProvince bool
}

func keyOf(name string, province *string) lguKey {
	if province == nil {
		return lguKey{name: name}
	}

	return lguKey{name: name, province: *province, hasProvince: true}
}

// resolver maps (name, province) to an LGU id for the length of one run.
// Each key costs at most one lookup and one insert; later rows hit the map.
// Not safe for concurrent use.
type resolver struct {
	ids     map[lguKey]int64
	created int
}

func newResolver() *resolver {
	return &resolver{ids: make(map[lguKey]int64)}
}

func (r *resolver) resolve(ctx context.Context, b Batch, name string, province *string) (int64, error) {
	key := keyOf(name, province)
	if id, ok := r.ids[key]; ok {
		return id, nil
	}

	id, found, err := b.FindLGU(ctx, name, province)
	if err != nil {
		return 0, fmt.Errorf("find lgu: %w", err)
	}

	if !found {
		id, err = b.CreateLGU(ctx, name, province)
		if err != nil {
			return 0, fmt.Errorf("create lgu: %w", err)
		}

		r.created++
	}

	r.ids[key] = id

	return id, nil
}

func (r *resolver) size() int {
	return len(r.ids)
}
