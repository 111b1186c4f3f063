package session

import (
	"errors"
	"testing"
)

func TestIDString(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"no qualifier", NewID("FIX.4.2", "BUY", "SELL"), "FIX.4.2:BUY->SELL"},
		{"qualifier", ID{BeginString: "FIXT.1.1", SenderCompID: "A", TargetCompID: "B", Qualifier: "q1"}, "FIXT.1.1:A->B:q1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseID_RoundTrip(t *testing.T) {
	inputs := []string{
		"FIX.4.2:BUY->SELL",
		"FIX.4.4:BANZAI->EXEC:primary",
		"FIXT.1.1:A->B",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			id, err := ParseID(in)
			if err != nil {
				t.Fatalf("ParseID(%q) returned error: %v", in, err)
			}
			if id.String() != in {
				t.Errorf("String() = %q, want %q", id.String(), in)
			}
		})
	}
}

func TestParseID_Fields(t *testing.T) {
	id, err := ParseID("FIX.4.4:BANZAI->EXEC:primary")
	if err != nil {
		t.Fatal(err)
	}
	want := ID{BeginString: "FIX.4.4", SenderCompID: "BANZAI", TargetCompID: "EXEC", Qualifier: "primary"}
	if id != want {
		t.Errorf("ParseID = %+v, want %+v", id, want)
	}
	if !id.HasQualifier() {
		t.Error("HasQualifier() = false, want true")
	}
}

func TestParseID_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"FIX.4.2",
		":BUY->SELL",
		"FIX.4.2:BUY",
		"FIX.4.2:->SELL",
		"FIX.4.2:BUY->",
		"FIX.4.2:BUY->../SELL",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseID(in)
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", in, err)
			}
		})
	}
}

func TestIDIsZero(t *testing.T) {
	if !(ID{}).IsZero() {
		t.Error("zero ID should report IsZero")
	}
	if NewID("FIX.4.2", "A", "B").IsZero() {
		t.Error("populated ID should not report IsZero")
	}
}
