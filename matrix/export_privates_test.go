// SPDX-License-Identifier: MIT
package matrix

// OptionsSnapshot_TestOnly exposes the resolved option values to external tests.
type OptionsSnapshot_TestOnly struct {
	RankTol        float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot_TestOnly {
	o := gatherOptions(opts...)

	return OptionsSnapshot_TestOnly{RankTol: o.rankTol, ValidateNaNInf: o.validateNaNInf}
}

// PanicRankToleranceInvalid_TestOnly is the stable panic message of WithRankTolerance.
const PanicRankToleranceInvalid_TestOnly = panicRankToleranceInvalid
