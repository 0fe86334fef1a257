//go:build integration || !unit

package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	server "github.com/Erkin33/hotel-new-rent/internal/adapters/http_server"
	redisad "github.com/Erkin33/hotel-new-rent/internal/adapters/redis"
	"github.com/Erkin33/hotel-new-rent/internal/app"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

// newTestServer wires the full stack over an in-process Redis.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	store := redisad.New(mr.Addr(), "", 0)
	drafts := app.NewDraftService(store)

	srv := server.New(1000) // high rps so tests never throttle
	srv.MountHandlers(&server.Handlers{
		Drafts:   drafts,
		Bookings: app.NewBookingService(store, drafts),
		Prefs:    app.NewPrefsService(store),
		Auth:     app.NewAuthService(store),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

func TestHTTP_SearchAndDetails(t *testing.T) {
	ts := newTestServer(t)

	// misspelled destination still lands on Dubai
	var search struct {
		Destination string           `json:"destination"`
		Items       []map[string]any `json:"items"`
		Bucket      map[string]int   `json:"bucketCounts"`
	}
	res := getJSON(t, ts.URL+"/v1/hotels?country=dubay", &search)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if search.Destination != "Dubai" || len(search.Items) != 2 {
		t.Fatalf("search = %+v", search)
	}

	// detail with ETag round trip
	res = getJSON(t, ts.URL+"/v1/hotels/sg-fullerton", nil)
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/hotels/sg-fullerton", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional status %d, want 304", res2.StatusCode)
	}

	res = getJSON(t, ts.URL+"/v1/hotels/nope", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown hotel status %d", res.StatusCode)
	}
}

func TestHTTP_BookingFlow(t *testing.T) {
	ts := newTestServer(t)

	// quote, the known scenario
	var quote struct {
		Nights int `json:"nights"`
		Total  int `json:"total"`
	}
	url := fmt.Sprintf("%s/v1/quote?hotelId=sg-fullerton&checkIn=2030-01-01&checkOut=2030-01-03&rooms=1&room=deluxe", ts.URL)
	if res := getJSON(t, url, &quote); res.StatusCode != http.StatusOK {
		t.Fatalf("quote status %d", res.StatusCode)
	}
	if quote.Nights != 2 || quote.Total != 5685 {
		t.Fatalf("quote = %+v", quote)
	}

	// no draft yet
	if res := getJSON(t, ts.URL+"/v1/draft", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("draft status %d, want 404", res.StatusCode)
	}

	// save the draft, then confirm it
	sel := domain.Selection{HotelID: "sg-fullerton", CheckIn: "2030-01-01", CheckOut: "2030-01-03", RoomKey: "deluxe", Rooms: 1, Adults: 2}
	if res := do(t, http.MethodPut, ts.URL+"/v1/draft", sel); res.StatusCode != http.StatusOK {
		t.Fatalf("save draft status %d", res.StatusCode)
	}

	res := do(t, http.MethodPost, ts.URL+"/v1/bookings", nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("confirm status %d", res.StatusCode)
	}
	var booked domain.Booking
	if err := json.NewDecoder(res.Body).Decode(&booked); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	res.Body.Close()
	if booked.Total != 5685 || booked.Status != domain.StatusConfirmed {
		t.Fatalf("booking = %+v", booked)
	}

	// draft is consumed; list has exactly the new booking
	if res := getJSON(t, ts.URL+"/v1/draft", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("draft after confirm: %d, want 404", res.StatusCode)
	}
	var list []domain.Booking
	getJSON(t, ts.URL+"/v1/bookings?filter=upcoming", &list)
	if len(list) != 1 || list[0].ID != booked.ID {
		t.Fatalf("list = %+v", list)
	}

	// remove it, list goes empty
	if res := do(t, http.MethodDelete, ts.URL+"/v1/bookings/"+booked.ID, nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("remove status %d", res.StatusCode)
	}
	getJSON(t, ts.URL+"/v1/bookings", &list)
	if len(list) != 0 {
		t.Fatalf("list after remove = %+v", list)
	}
}

func TestHTTP_WatchStreamsChanges(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/bookings/watch")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer res.Body.Close()
	rd := bufio.NewReader(res.Body)

	line, err := rd.ReadString('\n')
	if err != nil || line != `{"event":"ready"}`+"\n" {
		t.Fatalf("first line %q err %v", line, err)
	}

	// another "view" mutates the collection
	go func() {
		time.Sleep(100 * time.Millisecond)
		sel := domain.Selection{HotelID: "ist-old"}
		r := do(t, http.MethodPut, ts.URL+"/v1/draft", sel)
		r.Body.Close()
		r = do(t, http.MethodPost, ts.URL+"/v1/bookings", nil)
		r.Body.Close()
	}()

	lineCh := make(chan string, 1)
	go func() {
		l, _ := rd.ReadString('\n')
		lineCh <- l
	}()
	select {
	case l := <-lineCh:
		if l != `{"event":"changed"}`+"\n" {
			t.Fatalf("change line %q", l)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event on the watch stream")
	}
}

func TestHTTP_AuthAndPrefs(t *testing.T) {
	ts := newTestServer(t)

	reg := map[string]string{"username": "ana", "email": "ana@example.com", "password": "secret1", "confirm": "secret1"}
	if res := do(t, http.MethodPost, ts.URL+"/v1/auth/register", reg); res.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", res.StatusCode)
	}
	var sess struct {
		Active   bool   `json:"active"`
		Username string `json:"username"`
	}
	getJSON(t, ts.URL+"/v1/auth/session", &sess)
	if !sess.Active || sess.Username != "ana" {
		t.Fatalf("session = %+v", sess)
	}

	if res := do(t, http.MethodPut, ts.URL+"/v1/favorites/sg-emma", nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("favorite status %d", res.StatusCode)
	}
	var favs struct {
		Items []string `json:"items"`
	}
	getJSON(t, ts.URL+"/v1/favorites", &favs)
	if len(favs.Items) != 1 || favs.Items[0] != "sg-emma" {
		t.Fatalf("favorites = %+v", favs)
	}

	if res := do(t, http.MethodPut, ts.URL+"/v1/membership", map[string]string{"plan": "plus"}); res.StatusCode != http.StatusNoContent {
		t.Fatalf("membership status %d", res.StatusCode)
	}
	var plan struct {
		Plan string `json:"plan"`
	}
	getJSON(t, ts.URL+"/v1/membership", &plan)
	if plan.Plan != "plus" {
		t.Fatalf("plan = %+v", plan)
	}
}
