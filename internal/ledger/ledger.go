package ledger

import (
	"errors"
	"fmt"
	"time"
)

// Hospital value stored when the visit is virtual.
const VirtualHospital = "N/A"

const (
	TypeVirtual  = "virtual"
	TypePhysical = "physical"
)

// TimeSlots are the bookable half-hour slots. Kept in display format because
// that is the stored format too.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
	"05:00 PM", "05:30 PM",
}

var Specialties = []string{
	"general", "cardiology", "neurology", "pediatrics", "orthopedics", "dermatology",
}

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrPastDate         = errors.New("appointment date cannot be in the past")
	ErrInvalidDate      = errors.New("invalid appointment date")
	ErrInvalidSlot      = errors.New("time is not a bookable slot")
	ErrInvalidSpecialty = errors.New("unknown specialty")
	ErrHospitalRequired = errors.New("physical appointment needs a hospital")
	ErrNotVirtual       = errors.New("appointment is not virtual")
)

// Appointment field names are the stored schema; do not rename.
type Appointment struct {
	ID        int64  `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // e.g. "09:30 AM"
	Type      string `json:"type"`
	Hospital  string `json:"hospital"`
}

// SessionURL derives the virtual consultation room address from the
// appointment id. Pure formatting, no allocation against a video service.
func (a Appointment) SessionURL() string {
	return fmt.Sprintf("https://meet.jit.si/your-health-session-%d", a.ID)
}

// Store persists the whole appointment list as one unit.
type Store interface {
	Load() ([]Appointment, error)
	Save(appointments []Appointment) error
}

// Ledger owns a user's appointments. It is the sole writer of its store and
// saves the full list after every mutation. Not safe for concurrent use;
// callers serialize access.
type Ledger struct {
	store        Store
	appointments []Appointment
	lastID       int64
}

// Open loads the persisted ledger once and returns it ready for use.
func Open(store Store) (*Ledger, error) {
	appointments, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	l := &Ledger{store: store, appointments: appointments}
	for _, a := range appointments {
		if a.ID > l.lastID {
			l.lastID = a.ID
		}
	}
	return l, nil
}

type BookRequest struct {
	Doctor    string
	Specialty string
	Date      string
	Time      string
	Type      string
	Hospital  string
}

// Book validates the request, appends a new appointment with a fresh id and
// persists the ledger.
func (l *Ledger) Book(req BookRequest) (Appointment, error) {
	if err := validateDate(req.Date); err != nil {
		return Appointment{}, err
	}
	if !validSlot(req.Time) {
		return Appointment{}, ErrInvalidSlot
	}
	if !validSpecialty(req.Specialty) {
		return Appointment{}, ErrInvalidSpecialty
	}

	hospital := req.Hospital
	switch req.Type {
	case TypeVirtual:
		if hospital == "" {
			hospital = VirtualHospital
		}
	case TypePhysical:
		if hospital == "" {
			return Appointment{}, ErrHospitalRequired
		}
	}

	appointment := Appointment{
		ID:        l.nextID(),
		Doctor:    req.Doctor,
		Specialty: req.Specialty,
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Hospital:  hospital,
	}

	l.appointments = append(l.appointments, appointment)
	if err := l.store.Save(l.appointments); err != nil {
		l.appointments = l.appointments[:len(l.appointments)-1]
		return Appointment{}, fmt.Errorf("save ledger: %w", err)
	}
	return appointment, nil
}

// Reschedule replaces date and time of an existing appointment. Everything
// else is immutable after booking.
func (l *Ledger) Reschedule(id int64, date, timeSlot string) (Appointment, error) {
	if err := validateDate(date); err != nil {
		return Appointment{}, err
	}
	if !validSlot(timeSlot) {
		return Appointment{}, ErrInvalidSlot
	}

	for i := range l.appointments {
		if l.appointments[i].ID != id {
			continue
		}
		prevDate, prevTime := l.appointments[i].Date, l.appointments[i].Time
		l.appointments[i].Date = date
		l.appointments[i].Time = timeSlot
		if err := l.store.Save(l.appointments); err != nil {
			l.appointments[i].Date = prevDate
			l.appointments[i].Time = prevTime
			return Appointment{}, fmt.Errorf("save ledger: %w", err)
		}
		return l.appointments[i], nil
	}
	return Appointment{}, ErrNotFound
}

// List returns appointments in booking order.
func (l *Ledger) List() []Appointment {
	out := make([]Appointment, len(l.appointments))
	copy(out, l.appointments)
	return out
}

// Get returns a single appointment by id.
func (l *Ledger) Get(id int64) (Appointment, error) {
	for _, a := range l.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrNotFound
}

// nextID derives the id from the booking timestamp. When two bookings land
// in the same millisecond the id is bumped so it stays unique and monotonic.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func validateDate(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if d.Before(today) {
		return ErrPastDate
	}
	return nil
}

func validSlot(timeSlot string) bool {
	for _, s := range TimeSlots {
		if s == timeSlot {
			return true
		}
	}
	return false
}

func validSpecialty(specialty string) bool {
	for _, s := range Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}
