package cmparith

import (
	"errors"
	"testing"
)

func TestMul(t *testing.T) {
	tests := []struct {
		w    Width
		a, b string
		want string
	}{
		{FixedWidth(4), "-123456", "678", "-83703168"},
		{FixedWidth(4), "0", "12345", "0"},
		{FixedWidth(4), "-1", "-1", "1"},
		{Unlimited, "-123456789123456789123456789123456789", "987654321987654321987654321",
			"-121932631356500531591068431703703700581771069347203169112635269"},
	}
	for i, tt := range tests {
		a := mustNew(t, tt.w, tt.a)
		b := mustNew(t, tt.w, tt.b)
		got, err := Mul(a, b)
		if err != nil {
			t.Errorf("#%d: Mul(%s, %s): unexpected error %v", i, tt.a, tt.b, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("#%d: Mul(%s, %s) = %s; want %s", i, tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestMulFixedOverflow(t *testing.T) {
	a := mustNew(t, FixedWidth(4), "-1234567890")
	got, err := Mul(a, a)
	if err == nil {
		t.Fatalf("Mul(-1234567890, -1234567890): expected overflow error")
	}
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("error %v is not *OverflowError", err)
	}
	_ = got
}

func TestMulWidenedToUnlimitedDoesNotOverflow(t *testing.T) {
	fixed := mustNew(t, FixedWidth(4), "-1234567890")
	a, err := Widen(Zero(Unlimited), fixed)
	if err != nil {
		t.Fatalf("Widen: unexpected error %v", err)
	}
	got, err := Mul(a, a)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := "1524157875019052100"; got.String() != want {
		t.Errorf("got %s; want %s", got.String(), want)
	}
}

func TestMulCommutative(t *testing.T) {
	a := mustNew(t, Unlimited, "123456789")
	b := mustNew(t, Unlimited, "-987654321")
	ab, err := Mul(a, b)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ab.Equal(ba) {
		t.Errorf("Mul not commutative: %s vs %s", ab.String(), ba.String())
	}
}

func TestMulByZeroAndOne(t *testing.T) {
	w := FixedWidth(4)
	a := mustNew(t, w, "424242")
	zero, one := Zero(w), One(w)
	z, err := Mul(a, zero)
	if err != nil || !z.Equal(zero) {
		t.Errorf("a*0 = %s, err=%v; want 0", z.String(), err)
	}
	o, err := Mul(a, one)
	if err != nil || !o.Equal(a) {
		t.Errorf("a*1 = %s, err=%v; want %s", o.String(), err, a.String())
	}
}
