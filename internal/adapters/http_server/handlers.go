package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Erkin33/hotel-new-rent/internal/adapters/observability"
	"github.com/Erkin33/hotel-new-rent/internal/app"
	"github.com/Erkin33/hotel-new-rent/internal/catalog"
	"github.com/Erkin33/hotel-new-rent/internal/domain"
)

type Handlers struct {
	Drafts   *app.DraftService
	Bookings *app.BookingService
	Prefs    *app.PrefsService
	Auth     *app.AuthService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// The watch stream stays outside the timeout wrapper: TimeoutHandler's
	// writer cannot flush.
	s.mux.Get("/v1/bookings/watch", h.watchBookings)

	s.mux.Group(func(g chi.Router) {
		g.Use(Timeout(15 * time.Second))

		g.Get("/v1/hotels", h.listHotels)
		g.Get("/v1/hotels/{id}", h.getHotel)
		g.Get("/v1/hotels/{id}/rooms", h.hotelRooms)
		g.Get("/v1/hotels/{id}/location", h.hotelLocation)
		g.Get("/v1/quote", h.quote)

		g.Put("/v1/draft", h.saveDraft)
		g.Get("/v1/draft", h.getDraft)
		g.Delete("/v1/draft", h.clearDraft)

		g.Post("/v1/bookings", h.confirmBooking)
		g.Get("/v1/bookings", h.listBookings)
		g.Delete("/v1/bookings/{id}", h.removeBooking)
		g.Delete("/v1/bookings", h.clearBookings)

		g.Get("/v1/favorites", h.listFavorites)
		g.Put("/v1/favorites/{hotelID}", h.addFavorite)
		g.Delete("/v1/favorites/{hotelID}", h.removeFavorite)

		g.Get("/v1/shortlist", h.listShortlist)
		g.Post("/v1/shortlist", h.addShortlist)

		g.Get("/v1/membership", h.getMembership)
		g.Put("/v1/membership", h.setMembership)

		g.Post("/v1/auth/register", h.register)
		g.Post("/v1/auth/login", h.login)
		g.Post("/v1/auth/logout", h.logout)
		g.Get("/v1/auth/session", h.session)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeServiceErr maps the domain sentinels onto problem responses.
func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalid):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		log.Error().Err(err).Msg("request failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

/* ---------------- catalog ---------------- */

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stars := 0
	if ss := q.Get("stars"); ss != "" {
		n, err := strconv.Atoi(ss)
		if err != nil || n < 1 || n > 5 {
			writeProblem(w, http.StatusBadRequest, "Invalid stars", "stars must be an integer between 1 and 5")
			return
		}
		stars = n
	}
	res := app.SearchHotels(app.SearchQuery{
		Destination: q.Get("country"),
		Query:       q.Get("q"),
		Buckets:     q["bucket"],
		Stars:       stars,
	})
	writeCacheable(w, r, res)
}

type hotelResponse struct {
	domain.Hotel
	PriceLabel string `json:"priceLabel"`
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, ok := catalog.HotelByID(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeCacheable(w, r, hotelResponse{Hotel: hotel, PriceLabel: catalog.FmtUSD(hotel.Price)})
}

type roomOffer struct {
	domain.RoomType
	PerNight      int    `json:"perNight"`
	PerNightLabel string `json:"perNightLabel"`
}

func (h *Handlers) hotelRooms(w http.ResponseWriter, r *http.Request) {
	hotel, ok := catalog.HotelByID(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	offers := make([]roomOffer, 0, len(catalog.RoomTypes))
	for _, rt := range catalog.RoomTypes {
		p := catalog.RoomPrice(hotel.Price, rt.Mult)
		offers = append(offers, roomOffer{RoomType: rt, PerNight: p, PerNightLabel: catalog.FmtUSD(p)})
	}
	writeCacheable(w, r, offers)
}

func (h *Handlers) hotelLocation(w http.ResponseWriter, r *http.Request) {
	sketch, ok := catalog.LocationSketch(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeCacheable(w, r, sketch)
}

/* ---------------- quote & draft ---------------- */

// selectionFromQuery applies the documented defaults: today, tomorrow,
// 1 room, 2 adults, 0 children, deluxe.
func selectionFromQuery(r *http.Request) domain.Selection {
	q := r.URL.Query()
	atoi := func(k string, def int) int {
		if v := q.Get(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return domain.Selection{
		HotelID:  q.Get("hotelId"),
		CheckIn:  q.Get("checkIn"),
		CheckOut: q.Get("checkOut"),
		RoomKey:  q.Get("room"),
		Rooms:    atoi("rooms", 1),
		Adults:   atoi("adults", 2),
		Children: atoi("children", 0),
	}
}

type quoteResponse struct {
	domain.Selection
	Nights int `json:"nights"`
	domain.Breakdown
	TotalLabel string `json:"totalLabel"`
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	sel := selectionFromQuery(r)
	hotel, ok := catalog.HotelByID(sel.HotelID)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	if sel.CheckIn == "" {
		sel.CheckIn = app.Today()
	}
	if sel.CheckOut == "" {
		sel.CheckOut = app.Tomorrow()
	}
	if sel.Rooms < 1 {
		sel.Rooms = 1
	}
	rt := catalog.RoomTypeByKey(sel.RoomKey)
	sel.RoomKey = rt.Key
	nights := app.Nights(sel.CheckIn, sel.CheckOut)
	bd := app.PriceBreakdown(hotel, rt, sel.Rooms, nights)
	writeJSON(w, http.StatusOK, quoteResponse{
		Selection: sel, Nights: nights, Breakdown: bd, TotalLabel: catalog.FmtUSD(bd.Total),
	})
}

func (h *Handlers) saveDraft(w http.ResponseWriter, r *http.Request) {
	var sel domain.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected a JSON selection")
		return
	}
	d, err := h.Drafts.Save(r.Context(), sel)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) getDraft(w http.ResponseWriter, r *http.Request) {
	d, ok := h.Drafts.Load(r.Context())
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "no booking draft")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) clearDraft(w http.ResponseWriter, r *http.Request) {
	h.Drafts.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

/* ---------------- bookings ---------------- */

func (h *Handlers) confirmBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.Confirm(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	observability.BookingsConfirmed.Inc()
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	f := domain.BookingFilter(r.URL.Query().Get("filter"))
	switch f {
	case "", domain.FilterAll, domain.FilterUpcoming, domain.FilterPast:
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid filter", "filter must be one of all, upcoming, past")
		return
	}
	items := h.Bookings.List(r.Context(), f)
	if items == nil {
		items = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) removeBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) clearBookings(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Clear(r.Context()); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// watchBookings streams one JSON line per change to the bookings collection
// until the client goes away. Consumers re-fetch the list on each line.
func (h *Handlers) watchBookings(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		writeProblem(w, http.StatusNotImplemented, "Unsupported", "streaming not supported")
		return
	}
	ch, stop := h.Bookings.Watch(r.Context())
	defer stop()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"event":"ready"}` + "\n"))
	fl.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, open := <-ch:
			if !open {
				return
			}
			if _, err := w.Write([]byte(`{"event":"changed"}` + "\n")); err != nil {
				return
			}
			fl.Flush()
		}
	}
}

/* ---------------- favorites / shortlist / membership ---------------- */

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	ids := h.Prefs.Favorites(r.Context())
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": ids})
}

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.Prefs.AddFavorite(r.Context(), chi.URLParam(r, "hotelID")); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.Prefs.RemoveFavorite(r.Context(), chi.URLParam(r, "hotelID")); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listShortlist(w http.ResponseWriter, r *http.Request) {
	items := h.Prefs.Shortlist(r.Context())
	if items == nil {
		items = []domain.ShortlistEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handlers) addShortlist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HotelID string `json:"hotelId"`
		Room    string `json:"room"`
		Qty     int    `json:"qty"`
		Nights  int    `json:"nights"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected a JSON shortlist entry")
		return
	}
	e, err := h.Prefs.AddToShortlist(r.Context(), body.HotelID, body.Room, body.Qty, body.Nights)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handlers) getMembership(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"plan": h.Prefs.MembershipPlan(r.Context())})
}

func (h *Handlers) setMembership(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected a JSON plan")
		return
	}
	if err := h.Prefs.SetMembershipPlan(r.Context(), body.Plan); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ---------------- auth ---------------- */

// accountView hides the stored password from responses.
type accountView struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toView(a domain.Account) accountView {
	return accountView{Username: a.Username, Email: a.Email, Avatar: a.Avatar, CreatedAt: a.CreatedAt}
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
		Avatar   string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected a JSON registration")
		return
	}
	a, err := h.Auth.Register(r.Context(), body.Username, body.Email, body.Password, body.Confirm, body.Avatar)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toView(a))
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID       string `json:"id"` // email or username
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON credentials")
		return
	}
	a, err := h.Auth.Login(r.Context(), body.ID, body.Password)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(a))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) {
	username, active := h.Auth.Session(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"active": active, "username": username})
}
