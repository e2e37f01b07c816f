package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type memStore struct {
	appointments []Appointment
	saves        int
	failSave     bool
}

func (m *memStore) Load() ([]Appointment, error) {
	return m.appointments, nil
}

func (m *memStore) Save(appointments []Appointment) error {
	if m.failSave {
		return errors.New("store down")
	}
	m.appointments = append([]Appointment(nil), appointments...)
	m.saves++
	return nil
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func mustBook(t *testing.T, l *Ledger, req BookRequest) Appointment {
	t.Helper()
	a, err := l.Book(req)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	return a
}

func physicalRequest() BookRequest {
	return BookRequest{
		Doctor:    "Dr. Rasmita Singh",
		Specialty: "cardiology",
		Date:      futureDate(3),
		Time:      "09:00 AM",
		Type:      TypePhysical,
		Hospital:  "City Care Multispeciality",
	}
}

func TestBookAssignsUniqueIDsInBookingOrder(t *testing.T) {
	store := &memStore{}
	l, err := Open(store)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var booked []Appointment
	for i := 0; i < 5; i++ {
		req := physicalRequest()
		req.Doctor = fmt.Sprintf("Dr. %d", i)
		booked = append(booked, mustBook(t, l, req))
	}

	seen := make(map[int64]bool)
	for _, a := range booked {
		if seen[a.ID] {
			t.Fatalf("duplicate id %d", a.ID)
		}
		seen[a.ID] = true
	}

	list := l.List()
	if len(list) != len(booked) {
		t.Fatalf("List() length = %d, want %d", len(list), len(booked))
	}
	for i, a := range list {
		if a.ID != booked[i].ID {
			t.Errorf("List()[%d].ID = %d, want %d (booking order)", i, a.ID, booked[i].ID)
		}
	}
	if store.saves != 5 {
		t.Errorf("store saved %d times, want 5", store.saves)
	}
}

func TestBookVirtualWithoutHospitalStoresSentinel(t *testing.T) {
	l, _ := Open(&memStore{})

	a := mustBook(t, l, BookRequest{
		Doctor:    "Dr. Joseph",
		Specialty: "general",
		Date:      futureDate(1),
		Time:      "02:30 PM",
		Type:      TypeVirtual,
	})

	if a.Hospital != VirtualHospital {
		t.Errorf("Hospital = %q, want %q", a.Hospital, VirtualHospital)
	}
}

func TestBookValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookRequest)
		wantErr error
	}{
		{
			name:    "past date",
			mutate:  func(r *BookRequest) { r.Date = time.Now().AddDate(0, 0, -2).Format("2006-01-02") },
			wantErr: ErrPastDate,
		},
		{
			name:    "malformed date",
			mutate:  func(r *BookRequest) { r.Date = "tomorrow" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "time outside slot set",
			mutate:  func(r *BookRequest) { r.Time = "01:00 PM" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "unknown specialty",
			mutate:  func(r *BookRequest) { r.Specialty = "telepathy" },
			wantErr: ErrInvalidSpecialty,
		},
		{
			name: "physical without hospital",
			mutate: func(r *BookRequest) {
				r.Type = TypePhysical
				r.Hospital = ""
			},
			wantErr: ErrHospitalRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := Open(&memStore{})
			req := physicalRequest()
			tt.mutate(&req)

			_, err := l.Book(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Book() error = %v, want %v", err, tt.wantErr)
			}
			if got := len(l.List()); got != 0 {
				t.Errorf("ledger has %d appointments after rejected booking, want 0", got)
			}
		})
	}
}

func TestRescheduleIsIdempotent(t *testing.T) {
	l, _ := Open(&memStore{})
	a := mustBook(t, l, physicalRequest())

	newDate := futureDate(10)
	first, err := l.Reschedule(a.ID, newDate, "04:00 PM")
	if err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}
	second, err := l.Reschedule(a.ID, newDate, "04:00 PM")
	if err != nil {
		t.Fatalf("second Reschedule() error = %v", err)
	}

	if first != second {
		t.Errorf("second reschedule changed state: %+v vs %+v", first, second)
	}
	if first.ID != a.ID || first.Doctor != a.Doctor || first.Type != a.Type {
		t.Errorf("reschedule touched immutable fields: %+v", first)
	}
	if first.Date != newDate || first.Time != "04:00 PM" {
		t.Errorf("reschedule did not apply: %+v", first)
	}
}

func TestRescheduleUnknownIDLeavesLedgerUnchanged(t *testing.T) {
	l, _ := Open(&memStore{})
	a := mustBook(t, l, physicalRequest())
	before := l.List()

	_, err := l.Reschedule(a.ID+999, futureDate(5), "10:00 AM")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Reschedule() error = %v, want ErrNotFound", err)
	}

	after := l.List()
	if len(after) != len(before) {
		t.Fatalf("ledger length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("appointment %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestFailedSaveRollsBackBooking(t *testing.T) {
	store := &memStore{failSave: true}
	l, _ := Open(store)

	if _, err := l.Book(physicalRequest()); err == nil {
		t.Fatal("Book() expected error when store fails")
	}
	if got := len(l.List()); got != 0 {
		t.Errorf("ledger has %d appointments after failed save, want 0", got)
	}
}

func TestSessionURLDerivedFromID(t *testing.T) {
	a := Appointment{ID: 1755000000123, Type: TypeVirtual}
	want := "https://meet.jit.si/your-health-session-1755000000123"
	if got := a.SessionURL(); got != want {
		t.Errorf("SessionURL() = %q, want %q", got, want)
	}
}
