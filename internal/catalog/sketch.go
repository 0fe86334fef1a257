package catalog

import "math"

// Pin is a decorative map marker, positioned in percent of the sketch area.
type Pin struct {
	X int `json:"x"` // 8..92
	Y int `json:"y"` // 10..86
}

// Transport lists illustrative travel times in minutes.
type Transport struct {
	MetroWalk    int `json:"metroWalk"`
	AirportDrive int `json:"airportDrive"`
	CentralDrive int `json:"centralDrive"`
	OldTownWalk  int `json:"oldTownWalk"`
}

// Sketch is the pseudo-map shown on a hotel's location tab. It is seeded from
// the hotel id so the same hotel always renders the same pins.
type Sketch struct {
	Address   string    `json:"address"`
	Pins      []Pin     `json:"pins"`
	Transport Transport `json:"transport"`
}

// LocationSketch generates the deterministic decoration for a hotel. The
// boolean is false for unknown ids.
func LocationSketch(hotelID string) (Sketch, bool) {
	h, ok := HotelByID(hotelID)
	if !ok {
		return Sketch{}, false
	}
	rand := mulberry32(seedFromString(h.ID))
	s := Sketch{Address: h.Address}
	for i := 0; i < 6; i++ {
		s.Pins = append(s.Pins, Pin{
			X: int(math.Round(8 + rand()*84)),
			Y: int(math.Round(10 + rand()*76)),
		})
	}
	s.Transport = Transport{
		MetroWalk:    int(math.Round(3 + rand()*5)),
		AirportDrive: int(math.Round(18 + rand()*40)),
		CentralDrive: int(math.Round(8 + rand()*15)),
		OldTownWalk:  int(math.Round(10 + rand()*20)),
	}
	return s, true
}

// mulberry32 is a tiny deterministic PRNG; values are uniform in [0,1).
func mulberry32(a uint32) func() float64 {
	return func() float64 {
		a += 0x6d2b79f5
		t := a
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		return float64(t^(t>>14)) / 4294967296
	}
}

// seedFromString is an FNV-style string hash used to seed the sketch PRNG.
func seedFromString(s string) uint32 {
	h := uint32(2166136261)
	for _, c := range []byte(s) {
		h ^= uint32(c)
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}
