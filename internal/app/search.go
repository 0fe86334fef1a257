package app

import (
	"strings"

	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// PriceBucket is a half-open nightly-price range [Min, Max).
type PriceBucket struct {
	Key   string `json:"key"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

var PriceBuckets = []PriceBucket{
	{Key: "0-200", Min: 0, Max: 200, Label: "$ 0 - $ 200"},
	{Key: "200-500", Min: 200, Max: 500, Label: "$ 200 - $ 500"},
	{Key: "500-1000", Min: 500, Max: 1000, Label: "$ 500 - $ 1,000"},
	{Key: "1000-2000", Min: 1000, Max: 2000, Label: "$ 1,000 - $ 2,000"},
	{Key: "2000-5000", Min: 2000, Max: 5000, Label: "$ 2,000 - $ 5,000"},
}

// SearchQuery carries the hotels-results filters. Destination goes through
// NormalizeDestination, so misspellings still land on a known city.
type SearchQuery struct {
	Destination string
	Query       string   // substring match on hotel name
	Buckets     []string // price bucket keys, OR-ed
	Stars       int      // exact star rating, 0 = any
}

// SearchResult bundles the filtered hotels with the facet counts shown next
// to the filter checkboxes. Facets are computed over the destination-scoped
// set, not the fully filtered one.
type SearchResult struct {
	Destination  string         `json:"destination"`
	Items        []domain.Hotel `json:"items"`
	BucketCounts map[string]int `json:"bucketCounts"`
	StarsCounts  map[int]int    `json:"starsCounts"`
	Destinations []string       `json:"destinations"`
}

func SearchHotels(q SearchQuery) SearchResult {
	dest := catalog.NormalizeDestination(q.Destination)

	scoped := make([]domain.Hotel, 0, len(catalog.Hotels))
	for _, h := range catalog.Hotels {
		if dest == catalog.AllDestinations || strings.EqualFold(h.Country, dest) {
			scoped = append(scoped, h)
		}
	}

	bucketCounts := map[string]int{}
	starsCounts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, b := range PriceBuckets {
		bucketCounts[b.Key] = 0
	}
	for _, h := range scoped {
		for _, b := range PriceBuckets {
			if h.Price >= b.Min && h.Price < b.Max {
				bucketCounts[b.Key]++
			}
		}
		starsCounts[h.Stars]++
	}

	items := make([]domain.Hotel, 0, len(scoped))
	for _, h := range scoped {
		if q.Query != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(q.Query)) {
			continue
		}
		if len(q.Buckets) > 0 && !inAnyBucket(h.Price, q.Buckets) {
			continue
		}
		if q.Stars != 0 && h.Stars != q.Stars {
			continue
		}
		items = append(items, h)
	}

	return SearchResult{
		Destination:  dest,
		Items:        items,
		BucketCounts: bucketCounts,
		StarsCounts:  starsCounts,
		Destinations: catalog.Destinations(),
	}
}

func inAnyBucket(price int, keys []string) bool {
	for _, k := range keys {
		for _, b := range PriceBuckets {
			if b.Key == k && price >= b.Min && price < b.Max {
				return true
			}
		}
	}
	return false
}
