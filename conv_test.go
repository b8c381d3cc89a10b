package cmparith

import (
	"errors"
	"testing"
)

func TestNewAndString(t *testing.T) {
	tests := []struct {
		w    Width
		in   string
		want string
	}{
		{Unlimited, "0", "0"},
		{Unlimited, "+0", "0"},
		{Unlimited, "-0", "0"},
		{Unlimited, "123456789", "123456789"},
		{Unlimited, "+123456789", "123456789"},
		{Unlimited, "-123456789", "-123456789"},
		{FixedWidth(4), "2147483647", "2147483647"},
		{FixedWidth(4), "-2147483648", "-2147483648"},
	}
	for i, tt := range tests {
		x, err := New(tt.w, tt.in)
		if err != nil {
			t.Errorf("#%d: New(%v, %q): unexpected error %v", i, tt.w, tt.in, err)
			continue
		}
		if got := x.String(); got != tt.want {
			t.Errorf("#%d: New(%v, %q).String() = %s; want %s", i, tt.w, tt.in, got, tt.want)
		}
	}
}

func TestNewSyntaxErrors(t *testing.T) {
	bad := []string{"", "+", "-", "abc", "12a3", "1 2", "--1", "1.5", " 1"}
	for _, s := range bad {
		_, err := New(Unlimited, s)
		if err == nil {
			t.Errorf("New(Unlimited, %q): expected SyntaxError", s)
			continue
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("New(Unlimited, %q): error %v is not *SyntaxError", s, err)
		}
	}
}

func TestNewFixedOverflow(t *testing.T) {
	_, err := New(FixedWidth(4), "99999999999")
	if err == nil {
		t.Fatalf("New(fixed(4), 99999999999): expected overflow error")
	}
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("error %v is not *OverflowError", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "42", "-42", "999999999999999999999999999999"}
	for _, s := range values {
		x := mustNew(t, Unlimited, s)
		if got := x.String(); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestWidenWidensAndSignExtends(t *testing.T) {
	dst := Zero(FixedWidth(8))
	src := mustNew(t, FixedWidth(4), "-123")
	got, err := Widen(dst, src)
	if err != nil {
		t.Fatalf("Widen: unexpected error %v", err)
	}
	if got.ActualWidth() != 8 {
		t.Errorf("Widen actual width = %d; want 8", got.ActualWidth())
	}
	if !got.Equal(src) {
		t.Errorf("Widen(%v) = %s; want value-equal to %s", got, got.String(), src.String())
	}
}

func TestWidenRejectsNarrowing(t *testing.T) {
	dst := Zero(FixedWidth(4))
	src := mustNew(t, FixedWidth(8), "1")
	_, err := Widen(dst, src)
	if err == nil {
		t.Fatalf("Widen(fixed(4), fixed(8)): expected NarrowingError")
	}
	var narrow *NarrowingError
	if !errors.As(err, &narrow) {
		t.Fatalf("error %v is not *NarrowingError", err)
	}
}

func TestWidenToUnlimitedAlwaysAllowed(t *testing.T) {
	dst := Zero(Unlimited)
	src := mustNew(t, FixedWidth(4), "-7")
	got, err := Widen(dst, src)
	if err != nil {
		t.Fatalf("Widen to Unlimited: unexpected error %v", err)
	}
	if !got.Equal(src) {
		t.Errorf("Widen(Unlimited, -7) = %s; want -7", got.String())
	}
}
