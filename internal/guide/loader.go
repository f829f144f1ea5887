package guide

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// Loader owns the single dataset load of a session. The in-flight
// operation itself is memoized, so two near-simultaneous first
// navigations share one fetch, and the outcome (dataset or failure)
// sticks for the process lifetime. A failed load is not retried; the
// session stays in the Error state until restart.
type Loader struct {
	src   domain.DatasetSource
	group singleflight.Group

	mu   sync.Mutex
	ds   *domain.Dataset
	err  error
	done bool
}

func NewLoader(src domain.DatasetSource) *Loader {
	return &Loader{src: src}
}

// Dataset returns the session dataset, fetching and normalizing it on
// first use.
func (l *Loader) Dataset(ctx context.Context) (*domain.Dataset, error) {
	l.mu.Lock()
	if l.done {
		ds, err := l.ds, l.err
		l.mu.Unlock()
		return ds, err
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do("dataset", func() (any, error) {
		// A fetch, once started, always completes or fails on its own
		// terms; the caller that happened to trigger it must not be able
		// to cancel it out from under the other waiters.
		raw, ferr := l.src.Fetch(context.WithoutCancel(ctx))
		var ds *domain.Dataset
		if ferr == nil {
			ds, ferr = Normalize(raw)
		}
		if ferr != nil {
			ferr = fmt.Errorf("%w: %v", domain.ErrLoadFailed, ferr)
			log.Error().Err(ferr).Msg("dataset load failed")
		} else {
			log.Info().Int("regions", len(ds.Regions)).Msg("dataset loaded")
		}
		l.mu.Lock()
		l.ds, l.err, l.done = ds, ferr, true
		l.mu.Unlock()
		return ds, ferr
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}
