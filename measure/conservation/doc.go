// Package conservation measures how well a [phase.Transform] conserves the
// information it rotates.
//
// For a block of samples the analyzer reports the round-trip error of
// shifting forward and back, the magnitude drift of the forward rotation,
// the energy discarded when the backward shift truncates to the real axis,
// and the spectral energy of the block before and after the forward
// rotation. A pure rotation leaves the spectral energy unchanged, so
// [Result.EnergyRatio] stays at 1.
package conservation
