package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// BookingService owns the ordered, newest-first collection of confirmed
// bookings. Every mutation rewrites the whole stored sequence.
type BookingService struct {
	store  domain.Store
	drafts *DraftService
}

func NewBookingService(s domain.Store, d *DraftService) *BookingService {
	return &BookingService{store: s, drafts: d}
}

// newBookingID combines a time-based component with a random suffix so rapid
// successive confirmations cannot collide.
func newBookingID() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + hex.EncodeToString(b[:])
}

// Confirm turns the current draft into a booking: snapshot the hotel display
// fields, stamp id/created/status, prepend to the collection and delete the
// draft. Returns ErrNotFound when there is no draft to confirm.
func (s *BookingService) Confirm(ctx context.Context) (domain.Booking, error) {
	d, ok := s.drafts.Load(ctx)
	if !ok {
		return domain.Booking{}, fmt.Errorf("no draft: %w", domain.ErrNotFound)
	}
	hotel, ok := catalog.HotelByID(d.HotelID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("hotel %s: %w", d.HotelID, domain.ErrNotFound)
	}
	rt := catalog.RoomTypeByKey(d.RoomKey)
	nights := Nights(d.CheckIn, d.CheckOut)

	b := domain.Booking{
		ID:        newBookingID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    domain.StatusConfirmed,

		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		Image:     hotel.Image,
		Address:   hotel.Address,
		Rating:    hotel.Rating,
		Stars:     hotel.Stars,

		CheckIn:  d.CheckIn,
		CheckOut: d.CheckOut,
		Nights:   nights,
		Rooms:    d.Rooms,
		Adults:   d.Adults,
		Children: d.Children,

		RoomKey:  rt.Key,
		RoomType: rt.Name,

		// Recomputed here rather than trusted from the stored draft; both
		// sides call PriceBreakdown so the numbers are identical.
		Breakdown: PriceBreakdown(hotel, rt, d.Rooms, nights),
	}

	all := s.readAll(ctx)
	all = append([]domain.Booking{b}, all...)
	if err := s.store.Set(ctx, domain.KeyBookings, all); err != nil {
		return domain.Booking{}, fmt.Errorf("persist bookings: %w", err)
	}
	s.drafts.Clear(ctx)
	return b, nil
}

// List returns bookings in storage order (newest created first). upcoming
// keeps check-in today or later; past keeps check-out strictly before today.
func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) []domain.Booking {
	all := s.readAll(ctx)
	if f == "" || f == domain.FilterAll {
		return all
	}
	today := Today()
	out := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		switch f {
		case domain.FilterUpcoming:
			if b.CheckIn >= today {
				out = append(out, b)
			}
		case domain.FilterPast:
			if b.CheckOut < today {
				out = append(out, b)
			}
		}
	}
	return out
}

// Remove drops the booking with the given id. Unknown ids are a no-op, not an
// error; relative order of the rest is unchanged.
func (s *BookingService) Remove(ctx context.Context, id string) error {
	all := s.readAll(ctx)
	kept := all[:0]
	for _, b := range all {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return s.store.Set(ctx, domain.KeyBookings, kept)
}

// Clear empties the collection. An already-empty collection is a no-op with
// no storage write.
func (s *BookingService) Clear(ctx context.Context) error {
	if len(s.readAll(ctx)) == 0 {
		return nil
	}
	return s.store.Del(ctx, domain.KeyBookings)
}

// Watch signals whenever the stored collection changes, including writes from
// other processes. Consumers re-read the full list on each signal.
func (s *BookingService) Watch(ctx context.Context) (<-chan struct{}, func()) {
	return s.store.Watch(ctx, domain.KeyBookings)
}

// readAll tolerates a missing key or corrupt value by reading as empty.
func (s *BookingService) readAll(ctx context.Context) []domain.Booking {
	var all []domain.Booking
	if ok, err := s.store.Get(ctx, domain.KeyBookings, &all); err != nil || !ok {
		return nil
	}
	return all
}
