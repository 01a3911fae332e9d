package arith

import (
	"testing"
)

func TestPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    uint64
		e    uint64
		want uint64
	}{
		{
			name: "zero exponent",
			a:    0x_FB_D1_9F_BB_C5_C0_7F_F5,
			e:    0,
			want: 1,
		},
		{
			name: "one exponent",
			a:    0x_FB_D1_9F_BB_C5_C0_7F_F5,
			e:    1,
			want: 0x_FB_D1_9F_BB_C5_C0_7F_F5,
		},
		{
			name: "small power",
			a:    3,
			e:    5,
			want: 243,
		},
		{
			name: "wrapping power",
			a:    1 << 32,
			e:    2,
			want: 0,
		},
		{
			name: "base zero",
			a:    0,
			e:    7,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Pow(tt.a, tt.e); got != tt.want {
				t.Errorf("unexpected result: got=%#x want=%#x", got, tt.want)
			}
		})
	}
}

func TestPowMatchesIteration(t *testing.T) {
	t.Parallel()
	a := uint64(0x_27_BB_2E_E6_87_B0_B0_FD)
	iter := uint64(1)
	for e := uint64(0); e < 1000; e++ {
		if got := Pow(a, e); got != iter {
			t.Fatalf("unexpected result at e=%d: got=%#x want=%#x", e, got, iter)
		}
		iter *= a
	}
}

func TestGeometricSumMatchesIteration(t *testing.T) {
	t.Parallel()
	for _, a := range []uint64{0x_FB_D1_9F_BB_C5_C0_7F_F5, 0x_36_9D_EA_0F_31_A5_3F_85, 3, 1} {
		a := a
		var sum, p uint64 = 0, 1
		for s := uint64(0); s < 2000; s++ {
			if got := GeometricSum(s, a); got != sum {
				t.Fatalf("unexpected result at a=%#x s=%d: got=%#x want=%#x", a, s, got, sum)
			}
			sum += p
			p *= a
		}
	}
}

func TestGeometricSumLargeWindow(t *testing.T) {
	t.Parallel()
	// sum(1^i, i=0..s-1) == s, including s with many set bits.
	for _, s := range []uint64{1<<20 - 1, 1<<33 + 12345, 1 << 63} {
		if got := GeometricSum(s, 1); got != s {
			t.Errorf("unexpected result at s=%d: got=%d", s, got)
		}
	}
}

func TestLog2Floor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s    uint64
		want uint64
	}{
		{s: 1, want: 0},
		{s: 2, want: 1},
		{s: 3, want: 1},
		{s: 4, want: 2},
		{s: 1<<20 + 5, want: 20},
		{s: 1 << 63, want: 63},
		{s: ^uint64(0), want: 63},
	}

	for _, tt := range tests {
		if got := Log2Floor(tt.s); got != tt.want {
			t.Errorf("unexpected result at s=%d: got=%d want=%d", tt.s, got, tt.want)
		}
	}
}
