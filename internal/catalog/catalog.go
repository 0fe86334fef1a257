// Package catalog holds the static hotel inventory and the pure helpers the
// rest of the app derives prices and labels from.
package catalog

import (
	"math"
	"strconv"

	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// DefaultRoomKey is used when a selection carries no or an unknown room type.
const DefaultRoomKey = "deluxe"

// HotelByID scans the inventory for id. The second return is false when the
// id is unknown; there is no error path.
func HotelByID(id string) (domain.Hotel, bool) {
	for _, h := range Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

// RoomTypeByKey falls back to the deluxe room for unknown keys, matching the
// booking flow's default.
func RoomTypeByKey(key string) domain.RoomType {
	for _, rt := range RoomTypes {
		if rt.Key == key {
			return rt
		}
	}
	for _, rt := range RoomTypes {
		if rt.Key == DefaultRoomKey {
			return rt
		}
	}
	return RoomTypes[0]
}

// RoomPrice is the single rounding site for per-night prices. Drafts and
// confirmed bookings both recompute from the same inputs, so they must agree.
func RoomPrice(base int, mult float64) int {
	return int(math.Round(float64(base) * mult))
}

// FmtUSD renders a whole-dollar amount with thousands separators, e.g. $2,024.
func FmtUSD(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
