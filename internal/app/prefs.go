package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// PrefsService covers the small persisted extras: favorited hotel ids, the
// room shortlist and the selected membership plan. Each lives under its own
// key and is rewritten whole on every change.
type PrefsService struct {
	store domain.Store
}

func NewPrefsService(s domain.Store) *PrefsService { return &PrefsService{store: s} }

func (s *PrefsService) Favorites(ctx context.Context) []string {
	var ids []string
	if ok, err := s.store.Get(ctx, domain.KeyFavorites, &ids); err != nil || !ok {
		return nil
	}
	return ids
}

func (s *PrefsService) AddFavorite(ctx context.Context, hotelID string) error {
	if _, ok := catalog.HotelByID(hotelID); !ok {
		return fmt.Errorf("hotel %s: %w", hotelID, domain.ErrNotFound)
	}
	ids := s.Favorites(ctx)
	for _, id := range ids {
		if id == hotelID {
			return nil
		}
	}
	return s.store.Set(ctx, domain.KeyFavorites, append(ids, hotelID))
}

func (s *PrefsService) RemoveFavorite(ctx context.Context, hotelID string) error {
	ids := s.Favorites(ctx)
	kept := ids[:0]
	for _, id := range ids {
		if id != hotelID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.store.Set(ctx, domain.KeyFavorites, kept)
}

func (s *PrefsService) Shortlist(ctx context.Context) []domain.ShortlistEntry {
	var entries []domain.ShortlistEntry
	if ok, err := s.store.Get(ctx, domain.KeyShortlist, &entries); err != nil || !ok {
		return nil
	}
	return entries
}

// AddToShortlist recomputes the prices server-side from the same primitives
// the booking flow uses, then appends the entry.
func (s *PrefsService) AddToShortlist(ctx context.Context, hotelID, roomKey string, qty, nights int) (domain.ShortlistEntry, error) {
	hotel, ok := catalog.HotelByID(hotelID)
	if !ok {
		return domain.ShortlistEntry{}, fmt.Errorf("hotel %s: %w", hotelID, domain.ErrNotFound)
	}
	if qty < 1 {
		qty = 1
	}
	if nights < 1 {
		nights = 1
	}
	rt := catalog.RoomTypeByKey(roomKey)
	ppn := catalog.RoomPrice(hotel.Price, rt.Mult)
	e := domain.ShortlistEntry{
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		RoomType:      rt.Name,
		Qty:           qty,
		Nights:        nights,
		PricePerNight: ppn,
		Total:         ppn * qty * nights,
		TS:            time.Now().UnixMilli(),
	}
	if err := s.store.Set(ctx, domain.KeyShortlist, append(s.Shortlist(ctx), e)); err != nil {
		return domain.ShortlistEntry{}, err
	}
	return e, nil
}

func (s *PrefsService) MembershipPlan(ctx context.Context) string {
	var plan string
	if ok, err := s.store.Get(ctx, domain.KeyMembership, &plan); err != nil || !ok {
		return domain.MembershipPlans[0]
	}
	for _, p := range domain.MembershipPlans {
		if p == plan {
			return plan
		}
	}
	return domain.MembershipPlans[0]
}

func (s *PrefsService) SetMembershipPlan(ctx context.Context, plan string) error {
	for _, p := range domain.MembershipPlans {
		if p == plan {
			return s.store.Set(ctx, domain.KeyMembership, plan)
		}
	}
	return fmt.Errorf("plan %q: %w", plan, domain.ErrInvalid)
}
