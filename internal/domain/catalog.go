package domain

type Amenity string

const (
	AmenityWifi      Amenity = "wifi"
	AmenityPool      Amenity = "pool"
	AmenitySpa       Amenity = "spa"
	AmenityBreakfast Amenity = "breakfast"
)

// Hotel is a static catalog entry. The list is baked in at build time and
// never mutated at runtime.
type Hotel struct {
	ID        string    `json:"id"`
	Country   string    `json:"country"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Stars     int       `json:"stars"`  // 1..5
	Rating    float64   `json:"rating"` // 0..10
	Reviews   int       `json:"reviews"`
	Price     int       `json:"price"` // USD per night, base rate
	Image     string    `json:"image"`
	Amenities []Amenity `json:"amenities"`
	Gallery   []string  `json:"gallery,omitempty"`
}

type RoomType struct {
	Key   string   `json:"key"` // standard|deluxe|suite
	Name  string   `json:"name"`
	Mult  float64  `json:"mult"` // price multiplier, >= 1
	Perks []string `json:"perks"`
	Beds  string   `json:"beds"`
	Badge string   `json:"badge,omitempty"`
}
