package app

import (
	"math"
	"time"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

const (
	taxRate = 0.12
	flatFee = 18 // USD, per booking
)

const dateLayout = "2006-01-02"

// Nights computes ceil((checkOut - checkIn) / 1 day), clamped to at least 1.
// Malformed or inverted ranges also yield 1.
func Nights(checkIn, checkOut string) int {
	in, err1 := time.Parse(dateLayout, checkIn)
	out, err2 := time.Parse(dateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// PriceBreakdown is the one place booking arithmetic lives. Quotes, drafts and
// confirmations all call it, so the summary widget and the confirmation step
// cannot drift apart.
func PriceBreakdown(hotel domain.Hotel, rt domain.RoomType, rooms, nights int) domain.Breakdown {
	ppn := catalog.RoomPrice(hotel.Price, rt.Mult)
	line := ppn * rooms * nights
	taxes := int(math.Round(float64(line) * taxRate))
	return domain.Breakdown{
		PricePerNight: ppn,
		Line:          line,
		Taxes:         taxes,
		Fees:          flatFee,
		Total:         line + taxes + flatFee,
	}
}

// Today returns the current date in storage form.
func Today() string { return time.Now().Format(dateLayout) }

// Tomorrow returns today + 1 day, the default check-out.
func Tomorrow() string { return time.Now().AddDate(0, 0, 1).Format(dateLayout) }
