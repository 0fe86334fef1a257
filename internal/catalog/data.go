package catalog

import "github.com/Erkin33/hotel-new-rent/internal/domain"

// Hotels is the demo inventory. IDs are stable: confirmed bookings and
// favorites reference them.
var Hotels = []domain.Hotel{
	// Singapore
	{
		ID: "sg-fullerton", Country: "Singapore",
		Name: "The Fullerton Hotel Singapore", Address: "1 Fullerton Square, Singapore",
		Stars: 5, Rating: 9.5, Reviews: 1200, Price: 2024,
		Image:     "/Hotels/hotelN1.webp",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityBreakfast, domain.AmenitySpa},
		Gallery:   []string{"/Hotels/hotelN1.webp", "/TopRated/The-Spectator-Hotel.svg", "/TopRated/Marseilles-Beachfront-Hotel.svg"},
	},
	{
		ID: "sg-rosewood", Country: "Singapore",
		Name: "Rosewood Mayakoba", Address: "Beachfront Ave, Singapore",
		Stars: 5, Rating: 9.1, Reviews: 980, Price: 1790,
		Image:     "/Hotels/hotelN2.jpg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityPool, domain.AmenitySpa},
		Gallery:   []string{"/Hotels/hotelN2.jpg", "/TopRated/Waldorf-Astoria-Los-Cabos-Pedregal.svg"},
	},
	{
		ID: "sg-emma", Country: "Singapore",
		Name: "Hotel Emma", Address: "Downtown, Singapore",
		Stars: 4, Rating: 8.8, Reviews: 650, Price: 880,
		Image:     "/TopRated/Deco-Boutique-Hotel.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityBreakfast},
		Gallery:   []string{"/TopRated/Deco-Boutique-Hotel.svg"},
	},
	// Dubai
	{
		ID: "dubai-ocean", Country: "Dubai",
		Name: "Palm Ocean Resort", Address: "Palm Jumeirah, Dubai, UAE",
		Stars: 5, Rating: 9.1, Reviews: 1100, Price: 1900,
		Image:     "/TopRated/Marseilles-Beachfront-Hotel.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityPool, domain.AmenitySpa},
	},
	{
		ID: "dubai-city", Country: "Dubai",
		Name: "Downtown City Hotel", Address: "Downtown Dubai, UAE",
		Stars: 4, Rating: 8.6, Reviews: 570, Price: 960,
		Image:     "/TopRated/Waldorf-Astoria-Los-Cabos-Pedregal.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityBreakfast},
	},
	// Tokyo
	{
		ID: "tokyo-urban", Country: "Tokyo",
		Name: "Urban Boutique Tokyo", Address: "Shinjuku, Tokyo, Japan",
		Stars: 4, Rating: 8.9, Reviews: 700, Price: 1050,
		Image:     "/Category/Kayakapi-Premium.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityBreakfast},
	},
	{
		ID: "tokyo-palace", Country: "Tokyo",
		Name: "Imperial Palace View", Address: "Chiyoda City, Tokyo",
		Stars: 5, Rating: 9.4, Reviews: 1150, Price: 2300,
		Image:     "/TopRated/The-Spectator-Hotel.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenitySpa, domain.AmenityBreakfast},
	},
	// Paris
	{
		ID: "paris-raphael", Country: "Paris",
		Name: "Hôtel Raphael", Address: "Avenue Kléber, Paris, France",
		Stars: 5, Rating: 9.2, Reviews: 740, Price: 2100,
		Image:     "/Category/Hotel-Raphael.svg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenitySpa, domain.AmenityBreakfast},
	},
	// New York
	{
		ID: "nyc-inn", Country: "New York",
		Name: "The Inn at Lost Creek (NYC)", Address: "Chelsea, New York",
		Stars: 4, Rating: 8.5, Reviews: 680, Price: 990,
		Image:     "/Hotels/hotelN3.jpg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityPool},
	},
	// Istanbul
	{
		ID: "ist-old", Country: "Istanbul",
		Name: "Old City Boutique", Address: "Sultanahmet, Istanbul, TR",
		Stars: 4, Rating: 8.7, Reviews: 610, Price: 520,
		Image:     "/Hotels/hotelN5.jpg",
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityBreakfast},
	},
}

var RoomTypes = []domain.RoomType{
	{
		Key: "standard", Name: "Standard", Mult: 1,
		Perks: []string{"Free Wi-Fi", "City view"},
		Beds:  "1 Queen",
	},
	{
		Key: "deluxe", Name: "Deluxe", Mult: 1.25,
		Perks: []string{"Free Wi-Fi", "Breakfast included", "Partial sea view"},
		Beds:  "1 King", Badge: "Popular",
	},
	{
		Key: "suite", Name: "Suite", Mult: 1.6,
		Perks: []string{"Free Wi-Fi", "Breakfast included", "Sea view", "Lounge access"},
		Beds:  "2 King", Badge: "Best value",
	},
}
