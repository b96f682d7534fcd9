package wizard

import (
	"time"

	"github.com/mbeaudet/rendezvous/internal/catalog"
)

type Step int

const (
	StepService Step = 1
	StepSlot    Step = 2
	StepContact Step = 3
)

// Contact field keys, as they cross the wire and as they appear in
// validation failures.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCompany     = "company"
	FieldMessage     = "message"
	FieldRGPDConsent = "rgpdConsent"
)

type ContactForm struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Message     string `json:"message"`
	RGPDConsent bool   `json:"rgpdConsent"`
}

// Draft is the wizard's working state: one per session, mutated by guarded
// actions until submission or cancellation.
type Draft struct {
	Step         Step             `json:"step"`
	Service      *catalog.Service `json:"service,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	Time         string           `json:"time,omitempty"`
	VisibleMonth time.Time        `json:"visible_month"`
	Contact      ContactForm      `json:"contact"`
}

// BookingRequest is the finished, validated booking handed to the
// submission sink.
type BookingRequest struct {
	ID        string          `json:"id"`
	Service   catalog.Service `json:"service"`
	Date      time.Time       `json:"date"`
	Time      string          `json:"time"`
	Contact   ContactForm     `json:"contact"`
	CreatedAt time.Time       `json:"created_at"`
}
