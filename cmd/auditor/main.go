// auditor walks a dataset the way the server would: it derives the slug
// of every entity, re-resolves every constructible route through the
// dispatcher, and reports duplicate slugs and unresolvable links. Run it
// against a candidate dataset before publishing.
package main

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/observability"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/source"
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
	"github.com/Anatolt/ru-cities-n-poi/internal/guide"
	"github.com/Anatolt/ru-cities-n-poi/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	var src domain.DatasetSource
	if cfg.DataFile != "" {
		src = source.NewFile(cfg.DataFile)
	} else {
		client, err := source.New(cfg.DataURL, cfg.FetchRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize dataset source")
		}
		src = client
	}

	ds, err := guide.NewLoader(src).Dataset(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	log.Info().Int("regions", len(ds.Regions)).Msg("auditing dataset")

	var problems int64
	flag := func() { atomic.AddInt64(&problems, 1) }

	reportDuplicates("region", regionSlugs(ds), flag)

	sem := semaphore.NewWeighted(int64(cfg.AuditWorkers))
	var wg sync.WaitGroup
	for i := range ds.Regions {
		region := &ds.Regions[i]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			auditRegion(ds, region, flag)
		}()
	}
	wg.Wait()

	total := atomic.LoadInt64(&problems)
	if total > 0 {
		log.Error().Int64("problems", total).Msg("audit found problems")
		os.Exit(1)
	}
	log.Info().Msg("audit clean")
}

func auditRegion(ds *domain.Dataset, region *domain.Region, flag func()) {
	rs := guide.SlugOf(region.Name, region.Slug)
	if rs == "" {
		log.Warn().Str("region", region.Name).Msg("region derives an empty slug")
		flag()
		return
	}
	checkRoute(ds, domain.RouteRegion, flag, rs)

	var citySlugs []string
	for i := range region.Cities {
		city := &region.Cities[i]
		cs := guide.SlugOf(city.Name, city.Slug)
		citySlugs = append(citySlugs, cs)
		if cs == "" {
			log.Warn().Str("region", region.Name).Str("city", city.Name).Msg("city derives an empty slug")
			flag()
			continue
		}
		checkRoute(ds, domain.RouteCity, flag, rs, cs)

		var attractionSlugs []string
		for j := range city.Attractions {
			a := &city.Attractions[j]
			as := guide.SlugOf(a.Name, a.Slug)
			attractionSlugs = append(attractionSlugs, as)
			if as == "" {
				log.Warn().Str("city", city.Name).Str("attraction", a.Name).Msg("attraction derives an empty slug")
				flag()
				continue
			}
			checkRoute(ds, domain.RouteAttraction, flag, rs, cs, as)
		}
		reportDuplicates("attraction", attractionSlugs, flag)
	}
	reportDuplicates("city", citySlugs, flag)
}

// checkRoute re-enters the dispatcher with a link built from canonical
// slugs, exactly as the renderer would emit it.
func checkRoute(ds *domain.Dataset, want domain.RouteKind, flag func(), slugs ...string) {
	frag := "#/region"
	for _, s := range slugs {
		frag += "/" + s
	}
	if got := guide.Dispatch(ds, frag); got.Kind != want {
		log.Warn().Str("fragment", frag).Str("got", string(got.Kind)).Str("want", string(want)).Msg("route does not round-trip")
		flag()
	}
}

func regionSlugs(ds *domain.Dataset) []string {
	out := make([]string, 0, len(ds.Regions))
	for i := range ds.Regions {
		out = append(out, guide.SlugOf(ds.Regions[i].Name, ds.Regions[i].Slug))
	}
	return out
}

// reportDuplicates logs slugs that appear more than once in a container.
// Resolution picks the first listed entity; later ones are unreachable.
func reportDuplicates(level string, slugs []string, flag func()) {
	seen := make(map[string]int, len(slugs))
	for _, s := range slugs {
		seen[s]++
	}
	for s, n := range seen {
		if s != "" && n > 1 {
			log.Warn().Str("level", level).Str("slug", s).Int("count", n).Msg("duplicate slug; only the first entity is reachable")
			flag()
		}
	}
}
