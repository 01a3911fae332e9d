package prng

import (
	"fmt"
)

// Param holds the coefficients of the linear congruential recursion
// r' = A*r + B mod 2^64. Construction is unchecked: callers that need the
// full 2^64 period must supply B odd and A = 1 mod 4.
type Param struct {
	A uint64
	B uint64
}

var (
	// ParamDefault is the default recursion parameter set.
	ParamDefault = Param{A: 0x_FB_D1_9F_BB_C5_C0_7F_F5, B: 1}

	// ParamLecuyer1, ParamLecuyer2 and ParamLecuyer3 are alternate multipliers
	// from L'Ecuyer's tables of good LCG parameters.
	ParamLecuyer1 = Param{A: 0x_27_BB_2E_E6_87_B0_B0_FD, B: 1}
	ParamLecuyer2 = Param{A: 0x_2C_6F_E9_6E_E7_8B_69_55, B: 1}
	ParamLecuyer3 = Param{A: 0x_36_9D_EA_0F_31_A5_3F_85, B: 1}
)

// FullPeriod reports whether the recursion visits all 2^64 residues before
// repeating, which holds iff B is odd and A = 1 mod 4.
func (p Param) FullPeriod() bool {
	return p.B&1 == 1 && p.A&3 == 1
}

func (p Param) String() string {
	return fmt.Sprintf("Param[a=%d, b=%d]", p.A, p.B)
}
