package ledger

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	store := NewFileStore(path)

	l, err := Open(store)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	booked := mustBook(t, l, physicalRequest())

	reopened, err := Open(NewFileStore(path))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}

	list := reopened.List()
	if len(list) != 1 {
		t.Fatalf("reopened ledger has %d appointments, want 1", len(list))
	}
	if list[0] != booked {
		t.Errorf("reloaded appointment = %+v, want %+v", list[0], booked)
	}
}

func TestFileStoreMissingFileMeansEmptyLedger(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	appointments, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(appointments) != 0 {
		t.Errorf("Load() returned %d appointments, want 0", len(appointments))
	}
}

func TestReopenedLedgerKeepsIDsMonotonic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")

	l, _ := Open(NewFileStore(path))
	first := mustBook(t, l, physicalRequest())

	reopened, _ := Open(NewFileStore(path))
	second := mustBook(t, reopened, physicalRequest())

	if second.ID <= first.ID {
		t.Errorf("id after reopen = %d, want > %d", second.ID, first.ID)
	}
}
