package catalog_test

import (
	"testing"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
)

func TestHotelByID(t *testing.T) {
	h, ok := catalog.HotelByID("sg-fullerton")
	if !ok || h.Name != "The Fullerton Hotel Singapore" || h.Price != 2024 {
		t.Fatalf("unexpected hotel: %+v ok=%v", h, ok)
	}
	if _, ok := catalog.HotelByID("does-not-exist"); ok {
		t.Fatal("expected absent")
	}
	if _, ok := catalog.HotelByID(""); ok {
		t.Fatal("empty id should be absent")
	}
}

func TestRoomTypeByKey(t *testing.T) {
	if rt := catalog.RoomTypeByKey("suite"); rt.Mult != 1.6 || rt.Badge != "Best value" {
		t.Fatalf("suite = %+v", rt)
	}
	// unknown keys fall back to the booking flow's default
	if rt := catalog.RoomTypeByKey("penthouse"); rt.Key != "deluxe" {
		t.Fatalf("fallback = %+v", rt)
	}
	if rt := catalog.RoomTypeByKey(""); rt.Key != "deluxe" {
		t.Fatalf("empty fallback = %+v", rt)
	}
}

func TestRoomPrice(t *testing.T) {
	cases := []struct {
		base int
		mult float64
		want int
	}{
		{2024, 1.25, 2530},
		{880, 1.6, 1408},
		{520, 1, 520},
		{990, 1.25, 1238}, // 1237.5 rounds up
	}
	for _, c := range cases {
		if got := catalog.RoomPrice(c.base, c.mult); got != c.want {
			t.Errorf("RoomPrice(%d, %v) = %d, want %d", c.base, c.mult, got, c.want)
		}
	}
}

func TestFmtUSD(t *testing.T) {
	cases := map[int]string{
		0:       "$0",
		18:      "$18",
		999:     "$999",
		2024:    "$2,024",
		5685:    "$5,685",
		1234567: "$1,234,567",
	}
	for n, want := range cases {
		if got := catalog.FmtUSD(n); got != want {
			t.Errorf("FmtUSD(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestDestinations(t *testing.T) {
	ds := catalog.Destinations()
	want := []string{catalog.AllDestinations, "Singapore", "Dubai", "Tokyo", "Paris", "New York", "Istanbul"}
	if len(ds) != len(want) {
		t.Fatalf("destinations = %v", ds)
	}
	for i := range want {
		if ds[i] != want[i] {
			t.Fatalf("destinations[%d] = %q, want %q", i, ds[i], want[i])
		}
	}
}

func TestNormalizeDestination(t *testing.T) {
	cases := map[string]string{
		"":           catalog.AllDestinations,
		"all":        catalog.AllDestinations,
		"  Dubai  ":  "Dubai",
		"dubay":      "Dubai",
		"дубай":      "Dubai",
		"tokio":      "Tokyo",
		"tonkyo":     "Tokyo",
		"Tokyoo":     "Tokyo", // distance 1
		"singapure":  "Singapore",
		"Singapoore": "Singapore",
		"ny":         "New York",
		"new-york":   "New York",
		"стамбул":    "Istanbul",
		"paris":      "Paris",
		"atlantis":   catalog.AllDestinations, // nothing close: silent fallback
	}
	for in, want := range cases {
		if got := catalog.NormalizeDestination(in); got != want {
			t.Errorf("NormalizeDestination(%q) = %q, want %q", in, got, want)
		}
	}
}
