package timezone

import (
	"testing"
	"time"
)

func TestLookupKnownZone(t *testing.T) {
	loc, err := Lookup("Romance Standard Time")
	if err != nil {
		t.Fatal(err)
	}
	_, offset := time.Date(2020, time.January, 1, 0, 0, 0, 0, loc).Zone()
	if offset != 3600 {
		t.Errorf("offset = %d, want 3600", offset)
	}
}

func TestLookupUnknownZone(t *testing.T) {
	_, err := Lookup("Narnia Standard Time")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Unable to find a time zone named 'Narnia Standard Time'"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
