package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// DraftService owns the single in-progress selection slot.
type DraftService struct {
	store domain.Store
}

func NewDraftService(s domain.Store) *DraftService { return &DraftService{store: s} }

// normalize clamps counts and fills selection defaults the way the booking
// form does: today/tomorrow, 1 room, 2 adults, 0 children, deluxe.
func normalize(sel domain.Selection) domain.Selection {
	if sel.CheckIn == "" {
		sel.CheckIn = Today()
	}
	if sel.CheckOut == "" {
		sel.CheckOut = Tomorrow()
	}
	if sel.Rooms < 1 {
		sel.Rooms = 1
	}
	if sel.Adults < 1 {
		sel.Adults = 2
	}
	if sel.Children < 0 {
		sel.Children = 0
	}
	sel.RoomKey = catalog.RoomTypeByKey(sel.RoomKey).Key
	return sel
}

// Save computes the breakdown for sel and overwrites the draft slot
// (last-write-wins, no merge). A failed write is logged and swallowed: the
// caller's in-memory state stays authoritative for the session.
func (s *DraftService) Save(ctx context.Context, sel domain.Selection) (domain.BookingDraft, error) {
	sel = normalize(sel)
	hotel, ok := catalog.HotelByID(sel.HotelID)
	if !ok {
		return domain.BookingDraft{}, domain.ErrNotFound
	}
	rt := catalog.RoomTypeByKey(sel.RoomKey)
	nights := Nights(sel.CheckIn, sel.CheckOut)

	d := domain.BookingDraft{
		Selection: sel,
		Breakdown: PriceBreakdown(hotel, rt, sel.Rooms, nights),
	}
	if err := s.store.Set(ctx, domain.KeyDraft, d); err != nil {
		log.Warn().Err(err).Msg("draft persist failed, keeping in-flight value")
	}
	return d, nil
}

// Load reads the draft slot. Missing key, corrupt payload and payloads that
// fail validation all read as absent.
func (s *DraftService) Load(ctx context.Context) (domain.BookingDraft, bool) {
	var d domain.BookingDraft
	ok, err := s.store.Get(ctx, domain.KeyDraft, &d)
	if err != nil {
		log.Warn().Err(err).Msg("draft read failed")
		return domain.BookingDraft{}, false
	}
	if !ok || !d.Valid() {
		return domain.BookingDraft{}, false
	}
	return d, true
}

// Clear deletes the draft slot; deleting an absent draft is fine.
func (s *DraftService) Clear(ctx context.Context) {
	if err := s.store.Del(ctx, domain.KeyDraft); err != nil {
		log.Warn().Err(err).Msg("draft clear failed")
	}
}
