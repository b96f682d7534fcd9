package wizard

import (
	"context"
	"log"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mbeaudet/rendezvous/internal/catalog"
	"github.com/mbeaudet/rendezvous/internal/logger"
	"github.com/mbeaudet/rendezvous/internal/observability/metrics"
	"github.com/mbeaudet/rendezvous/internal/schedule"
)

var tracer = otel.Tracer("rendezvous.internal.wizard")

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

// Sink is the external collaborator that accepts a finished
// BookingRequest and performs the actual scheduling side effects. Submit
// is awaited: the draft survives until the sink acknowledges.
type Sink interface {
	Submit(ctx context.Context, req *BookingRequest) error
}

// Clock pins "today" for past-date checks. Injectable so tests are not
// bound to the wall clock.
type Clock func() time.Time

// Wizard is the booking state machine. Every action re-checks its guard
// and either applies the transition or leaves the draft untouched; the
// returned snapshot is the single source of truth for the host.
//
// Access is synchronous: one action runs to completion before the next.
type Wizard struct {
	l        *logger.Logger
	services []catalog.Service
	planner  *schedule.Planner
	sink     Sink
	idGen    idGenerator
	now      Clock
	metrics  *metrics.BookingMetrics
	onClose  func()

	draft Draft
}

type Config struct {
	L        *logger.Logger
	Services []catalog.Service
	Planner  *schedule.Planner
	Sink     Sink
	IDGen    idGenerator
	Now      Clock
	Metrics  *metrics.BookingMetrics
	// OnClose is invoked after Cancel has cleared the draft. Optional.
	OnClose func()
}

func New(conf Config) *Wizard {
	now := conf.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	l := conf.L
	if l == nil {
		l = logger.New(log.Default())
	}

	w := &Wizard{
		l:        l,
		services: conf.Services,
		planner:  conf.Planner,
		sink:     conf.Sink,
		idGen:    conf.IDGen,
		now:      now,
		metrics:  conf.Metrics,
		onClose:  conf.OnClose,
	}
	w.draft = w.newDraft()

	return w
}

func (w *Wizard) newDraft() Draft {
	return Draft{
		Step:         StepService,
		VisibleMonth: monthOf(w.now()),
	}
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Snapshot returns a copy of the draft safe to hand to the host.
func (w *Wizard) Snapshot() Draft {
	snapshot := w.draft

	if w.draft.Service != nil {
		service := *w.draft.Service
		snapshot.Service = &service
	}

	if w.draft.Date != nil {
		date := *w.draft.Date
		snapshot.Date = &date
	}

	return snapshot
}

// Services filters the session catalog by free text and category.
func (w *Wizard) Services(search, category string) []catalog.Service {
	return catalog.Filter(w.services, search, category)
}

// Grid renders the visible month as a fixed 42-day calendar.
func (w *Wizard) Grid() []schedule.CalendarDay {
	return w.planner.Grid(w.draft.VisibleMonth, w.now())
}

// Slots returns the slots of the selected date, empty when no date is
// selected yet.
func (w *Wizard) Slots() []schedule.TimeSlot {
	if w.draft.Date == nil {
		return nil
	}

	return w.planner.SlotsFor(*w.draft.Date)
}

// SelectService moves to the slot step. Unknown service ids and calls
// outside step 1 are no-ops.
func (w *Wizard) SelectService(id string) Draft {
	if w.draft.Step != StepService {
		return w.Snapshot()
	}

	service, ok := catalog.ByID(w.services, id)
	if !ok {
		w.l.LogDebug("select service rejected, unknown id %q", id)

		return w.Snapshot()
	}

	w.draft.Service = &service
	w.draft.Step = StepSlot

	return w.Snapshot()
}

// SelectDate picks a day within step 2. Past days and closed weekdays are
// rejected. A new date always clears any previously selected time.
func (w *Wizard) SelectDate(date time.Time) Draft {
	if w.draft.Step != StepSlot {
		return w.Snapshot()
	}

	if !w.planner.Selectable(date, w.now()) {
		w.l.LogDebug("select date rejected, %v not selectable", date.Format("2006-01-02"))

		return w.Snapshot()
	}

	day := schedule.Day(date)
	w.draft.Date = &day
	w.draft.Time = ""

	return w.Snapshot()
}

// SelectTime picks a slot of the selected date and moves to the contact
// step. The slot must exist and be available.
func (w *Wizard) SelectTime(hhmm string) Draft {
	if w.draft.Step != StepSlot || w.draft.Date == nil {
		return w.Snapshot()
	}

	if !w.slotAvailable(hhmm) {
		w.l.LogDebug("select time rejected, slot %q not available", hhmm)

		return w.Snapshot()
	}

	w.draft.Time = hhmm
	w.draft.Step = StepContact

	return w.Snapshot()
}

func (w *Wizard) slotAvailable(hhmm string) bool {
	for _, slot := range w.planner.SlotsFor(*w.draft.Date) {
		if slot.Time == hhmm {
			return slot.Available
		}
	}

	return false
}

// UpdateContact mutates one contact field within step 3. Unknown fields
// are no-ops; consent accepts strconv.ParseBool forms.
func (w *Wizard) UpdateContact(field, value string) Draft {
	if w.draft.Step != StepContact {
		return w.Snapshot()
	}

	switch field {
	case FieldFirstName:
		w.draft.Contact.FirstName = value
	case FieldLastName:
		w.draft.Contact.LastName = value
	case FieldEmail:
		w.draft.Contact.Email = value
	case FieldPhone:
		w.draft.Contact.Phone = value
	case FieldCompany:
		w.draft.Contact.Company = value
	case FieldMessage:
		w.draft.Contact.Message = value
	case FieldRGPDConsent:
		consent, err := strconv.ParseBool(value)
		if err != nil {
			w.l.LogDebug("update contact rejected, bad consent value %q", value)

			return w.Snapshot()
		}

		w.draft.Contact.RGPDConsent = consent
	default:
		w.l.LogDebug("update contact rejected, unknown field %q", field)
	}

	return w.Snapshot()
}

// Back returns to the previous step. At step 1 it is a no-op.
func (w *Wizard) Back() Draft {
	switch w.draft.Step {
	case StepSlot:
		w.draft.Step = StepService
	case StepContact:
		w.draft.Step = StepSlot
	case StepService:
	}

	return w.Snapshot()
}

// Cancel clears the whole draft from any state and notifies closure.
func (w *Wizard) Cancel() Draft {
	w.draft = w.newDraft()

	if w.onClose != nil {
		w.onClose()
	}

	return w.Snapshot()
}

// PrevMonth shifts the visible month back. Legal in any state.
func (w *Wizard) PrevMonth() Draft {
	w.draft.VisibleMonth = w.draft.VisibleMonth.AddDate(0, -1, 0)

	return w.Snapshot()
}

// NextMonth shifts the visible month forward. Legal in any state.
func (w *Wizard) NextMonth() Draft {
	w.draft.VisibleMonth = w.draft.VisibleMonth.AddDate(0, 1, 0)

	return w.Snapshot()
}

func (w *Wizard) validate() error {
	validationErr := newValidationError()

	if strings.TrimSpace(w.draft.Contact.FirstName) == "" {
		validationErr.addError(FieldFirstName, "provide first name")
	}

	if strings.TrimSpace(w.draft.Contact.LastName) == "" {
		validationErr.addError(FieldLastName, "provide last name")
	}

	if _, err := mail.ParseAddress(w.draft.Contact.Email); err != nil {
		validationErr.addError(FieldEmail, "provide valid email")
	}

	if strings.TrimSpace(w.draft.Contact.Phone) == "" {
		validationErr.addError(FieldPhone, "provide phone number")
	}

	if !w.draft.Contact.RGPDConsent {
		validationErr.addError(FieldRGPDConsent, "consent is required")
	}

	if w.draft.Service == nil {
		validationErr.addError("service", "select a service")
	}

	if w.draft.Date == nil {
		validationErr.addError("date", "select a date")
	}

	if w.draft.Time == "" {
		validationErr.addError("time", "select a time slot")
	}

	if validationErr.fieldsCount() > 0 {
		return validationErr
	}

	return nil
}

// Submit validates the draft, hands the finished BookingRequest to the
// sink and waits for the outcome. Validation and sink failures both leave
// the draft intact; only an acknowledged submission resets the wizard.
func (w *Wizard) Submit(ctx context.Context) (*BookingRequest, error) {
	ctx, span := tracer.Start(ctx, "wizard.submit")
	defer span.End()

	start := w.now()

	if err := w.validate(); err != nil {
		validationErr := IsValidationError(err)
		for field := range validationErr.Fields() {
			w.metrics.ObserveValidationFailure(field)
		}

		w.metrics.ObserveSubmission("invalid")
		span.RecordError(err)

		return nil, err
	}

	id, err := w.idGen.GetID(ctx)
	if err != nil {
		w.metrics.ObserveSubmission("error")

		return nil, ErrNextID
	}

	req := &BookingRequest{
		ID:        id,
		Service:   *w.draft.Service,
		Date:      *w.draft.Date,
		Time:      w.draft.Time,
		Contact:   w.draft.Contact,
		CreatedAt: w.now(),
	}

	span.SetAttributes(
		attribute.String("rendezvous.booking_id", req.ID),
		attribute.String("rendezvous.service_id", req.Service.ID),
		attribute.String("rendezvous.date", req.Date.Format("2006-01-02")),
		attribute.String("rendezvous.time", req.Time),
	)

	if err := w.sink.Submit(ctx, req); err != nil {
		w.metrics.ObserveSubmission("failed")
		span.RecordError(err)
		w.l.LogErrorf("Sink rejected booking %v: %v", req.ID, err.Error())

		return nil, &SubmissionError{reason: err}
	}

	w.metrics.ObserveSubmission("accepted")
	w.metrics.ObserveSubmitLatency(w.now().Sub(start).Seconds())
	w.l.LogInfo(
		"Booking %v accepted: service %v on %v at %v",
		req.ID,
		req.Service.ID,
		req.Date.Format("2006-01-02"),
		req.Time,
	)

	w.draft = w.newDraft()

	return req, nil
}
