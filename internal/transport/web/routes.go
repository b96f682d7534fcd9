package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbeaudet/rendezvous/internal/catalog"
	"github.com/mbeaudet/rendezvous/internal/schedule"
	"github.com/mbeaudet/rendezvous/internal/wizard"
)

const sessionHeader = "Session-Key"

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

// sessionWizard resolves the wizard bound to the Session-Key header. On
// failure it writes the response itself and returns nil.
func (s *Server) sessionWizard(w http.ResponseWriter, r *http.Request) *wizard.Wizard {
	key := r.Header.Get(sessionHeader)
	if key == "" {
		http.Error(w, "Session-Key header is missing", http.StatusBadRequest)

		return nil
	}

	ctx := wizard.NewContextWithSessionKey(r.Context(), key)

	wiz, err := s.store.Session(ctx)
	if err != nil {
		s.l.LogErrorf("Could not resolve session: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return nil
	}

	return wiz
}

func (s *Server) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	s.writeJSON(w, http.StatusOK, catalog.Filter(s.services, search, category))
}

func (s *Server) calendarHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, wiz.Grid())
}

func (s *Server) slotsHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	slots := wiz.Slots()
	if slots == nil {
		slots = []schedule.TimeSlot{}
	}

	s.writeJSON(w, http.StatusOK, slots)
}

func (s *Server) selectServiceHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	var body struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, wiz.SelectService(body.ID))
}

func (s *Server) selectDateHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	var body struct {
		Date string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		http.Error(w, "date must be formatted as 2006-01-02", http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, wiz.SelectDate(date))
}

func (s *Server) selectTimeHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	var body struct {
		Time string `json:"time"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, wiz.SelectTime(body.Time))
}

func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, wiz.UpdateContact(body.Field, body.Value))
}

func (s *Server) backHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, wiz.Back())
}

func (s *Server) cancelHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, wiz.Cancel())
}

func (s *Server) prevMonthHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, wiz.PrevMonth())
}

func (s *Server) nextMonthHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, wiz.NextMonth())
}

func (s *Server) submitHandler(w http.ResponseWriter, r *http.Request) {
	wiz := s.sessionWizard(w, r)
	if wiz == nil {
		return
	}

	req, err := wiz.Submit(r.Context())
	if validationErr := wizard.IsValidationError(err); validationErr != nil {
		s.writeJSON(w, http.StatusBadRequest, validationErr.Fields())

		return
	}

	if submissionErr := wizard.IsSubmissionError(err); submissionErr != nil {
		s.writeJSON(w, http.StatusBadGateway, map[string]string{"reason": submissionErr.Reason()})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not submit booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, req)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, h http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("GET /api/services/v1", s.listServicesHandler)
	handle("GET /api/calendar/v1", s.calendarHandler)
	handle("GET /api/slots/v1", s.slotsHandler)
	handle("POST /api/wizard/v1/service", s.selectServiceHandler)
	handle("POST /api/wizard/v1/date", s.selectDateHandler)
	handle("POST /api/wizard/v1/time", s.selectTimeHandler)
	handle("POST /api/wizard/v1/contact", s.contactHandler)
	handle("POST /api/wizard/v1/back", s.backHandler)
	handle("POST /api/wizard/v1/cancel", s.cancelHandler)
	handle("POST /api/wizard/v1/month/prev", s.prevMonthHandler)
	handle("POST /api/wizard/v1/month/next", s.nextMonthHandler)
	handle("POST /api/wizard/v1/submit", s.submitHandler)

	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
	r.Handle("GET /metrics", promhttp.Handler())
}
