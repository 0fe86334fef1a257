// Command seeder resets the demo dataset: it publishes a per-hotel catalog
// snapshot into Redis (inspectable with redis-cli, handy when poking at the
// demo without the API) and seeds a few bookings, favorites and a shortlist
// entry through the real services.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/Erkin33/hotel-new-rent/internal/adapters/observability"
	redisad "github.com/Erkin33/hotel-new-rent/internal/adapters/redis"
	"github.com/Erkin33/hotel-new-rent/internal/app"
	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
	"github.com/Erkin33/hotel-new-rent/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	drafts := app.NewDraftService(store)
	bookings := app.NewBookingService(store, drafts)
	prefs := app.NewPrefsService(store)

	// Snapshot keys are independent, so this part parallelizes safely.
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range catalog.Hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotel domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			sketch, _ := catalog.LocationSketch(hotel.ID)
			snap := map[string]any{
				"hotel":  hotel,
				"sketch": sketch,
			}
			if err := store.Set(ctx, "catalog:hotel:"+hotel.ID, snap); err != nil {
				log.Warn().Str("id", hotel.ID).Err(err).Msg("snapshot failed")
				return
			}
			log.Info().Str("id", hotel.ID).Msg("snapshot ok")
		}(h)
	}
	wg.Wait()

	// Bookings and prefs share single keys, so seed them sequentially.
	for _, id := range []string{"sg-fullerton", "tokyo-palace", "ist-old"} {
		if _, err := drafts.Save(ctx, domain.Selection{HotelID: id}); err != nil {
			log.Warn().Str("id", id).Err(err).Msg("draft failed")
			continue
		}
		b, err := bookings.Confirm(ctx)
		if err != nil {
			log.Warn().Str("id", id).Err(err).Msg("confirm failed")
			continue
		}
		log.Info().Str("id", id).Str("booking", b.ID).Msg("booking seeded")
	}

	for _, h := range catalog.Hotels {
		if h.Rating >= 9.2 {
			if err := prefs.AddFavorite(ctx, h.ID); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("favorite failed")
			}
		}
	}
	if _, err := prefs.AddToShortlist(ctx, "sg-emma", "suite", 1, 2); err != nil {
		log.Warn().Err(err).Msg("shortlist failed")
	}

	log.Info().Msg("seeding completed")
}
