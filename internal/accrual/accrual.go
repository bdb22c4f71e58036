// Package accrual computes how much value a release schedule has made
// available at a given ledger time. All functions are pure: they never
// touch storage and always return freshly allocated integers.
//
// Division truncates and is always recomputed from the total amount and
// the full duration, never from a cached per-second rate, so repeated
// queries cannot accumulate rounding drift. The last fractional unit is
// released when now reaches the interval end, where the result snaps to
// the total exactly.
package accrual

import "math/big"

// StreamAccrued returns the cumulative amount released by a linear stream
// at time now. The result is clamped to [0, total].
func StreamAccrued(total *big.Int, startTime, endTime, now uint64) *big.Int {
	if now <= startTime || endTime <= startTime {
		return big.NewInt(0)
	}
	if now >= endTime {
		return new(big.Int).Set(total)
	}

	elapsed := new(big.Int).SetUint64(now - startTime)
	duration := new(big.Int).SetUint64(endTime - startTime)

	accrued := new(big.Int).Mul(total, elapsed)
	accrued.Quo(accrued, duration)

	return clamp(accrued, total)
}

// VestingAccrued returns the cumulative amount vested by a cliff + linear
// schedule at time now. Nothing vests before startTime+cliffDuration;
// cliffAmount unlocks at the cliff instant; the remainder vests linearly
// until startTime+totalDuration. The result is clamped to [0, total].
func VestingAccrued(total, cliffAmount *big.Int, startTime, cliffDuration, totalDuration, now uint64) *big.Int {
	if now < startTime || totalDuration <= cliffDuration {
		return big.NewInt(0)
	}

	elapsed := now - startTime
	if elapsed < cliffDuration {
		return big.NewInt(0)
	}
	if elapsed >= totalDuration {
		return new(big.Int).Set(total)
	}

	remaining := new(big.Int).Sub(total, cliffAmount)
	sinceCliff := new(big.Int).SetUint64(elapsed - cliffDuration)
	vestingDuration := new(big.Int).SetUint64(totalDuration - cliffDuration)

	linear := new(big.Int).Mul(remaining, sinceCliff)
	linear.Quo(linear, vestingDuration)

	vested := linear.Add(linear, cliffAmount)

	return clamp(vested, total)
}

// Claimable returns accrued minus claimed, clamped to zero. A claimed
// amount above accrued indicates inconsistent state; zero is returned
// rather than a negative balance.
func Claimable(accrued, claimed *big.Int) *big.Int {
	if accrued.Cmp(claimed) <= 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(accrued, claimed)
}

func clamp(v, total *big.Int) *big.Int {
	if v.Sign() < 0 {
		return big.NewInt(0)
	}
	if v.Cmp(total) > 0 {
		return new(big.Int).Set(total)
	}
	return v
}
