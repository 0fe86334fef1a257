package domain

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Breakdown is the price arithmetic shared by quotes, drafts and confirmed
// bookings. Amounts are whole USD.
type Breakdown struct {
	PricePerNight int `json:"pricePerNight"`
	Line          int `json:"line"`
	Taxes         int `json:"taxes"`
	Fees          int `json:"fees"`
	Total         int `json:"total"`
}

// Selection is the raw booking intent: which hotel, which dates, which room.
// Dates are ISO "2006-01-02" strings so storage order matches calendar order.
type Selection struct {
	HotelID  string `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	RoomKey  string `json:"roomKey"`
	Rooms    int    `json:"rooms"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// BookingDraft is the single in-progress selection plus its computed
// breakdown. A new draft unconditionally replaces the previous one.
type BookingDraft struct {
	Selection
	Breakdown
}

// Valid reports whether a decoded draft is usable. Corrupt or foreign payloads
// in the draft slot are treated as absent, not as errors.
func (d BookingDraft) Valid() bool {
	return d.HotelID != "" && d.CheckIn != "" && d.CheckOut != "" && d.Rooms >= 1
}

// Booking is a confirmed reservation. Hotel display fields are a snapshot
// captured at confirmation time so later catalog edits do not rewrite history.
// All fields except Status are immutable once created.
type Booking struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Status    Status `json:"status"`

	HotelID   string  `json:"hotelId"`
	HotelName string  `json:"hotelName"`
	Image     string  `json:"image"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating"`
	Stars     int     `json:"stars"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Rooms    int    `json:"rooms"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`

	RoomKey  string `json:"roomKey"`
	RoomType string `json:"roomType"`

	Breakdown
}

type BookingFilter string

const (
	FilterAll      BookingFilter = "all"
	FilterUpcoming BookingFilter = "upcoming"
	FilterPast     BookingFilter = "past"
)

// ShortlistEntry is a saved room pick from the category cards. Display only;
// nothing else consumes it.
type ShortlistEntry struct {
	HotelID       string `json:"hotelId"`
	HotelName     string `json:"hotelName"`
	RoomType      string `json:"roomType"`
	Qty           int    `json:"qty"`
	Nights        int    `json:"nights"`
	PricePerNight int    `json:"pricePerNight"`
	Total         int    `json:"total"`
	TS            int64  `json:"ts"`
}

// Account is the demo user record. Plain-text password: this mirrors the demo
// auth screens, there is no real authentication here.
type Account struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

var MembershipPlans = []string{"free", "plus", "pro"}
