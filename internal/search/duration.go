package search

import (
	"fmt"
	"github.com/shopspring/decimal"
	"math/big"
	"time"
)

// RollsPerSecond is the measured rate at which the generator advances in game.
const RollsPerSecond = 4833.9

const DefaultWindow = 10 * time.Hour

var sixty = decimal.NewFromInt(60)

// MaxRolls converts a search window into a truncated roll count. Decimal
// arithmetic keeps 4833.9 * 36000 at exactly 174020400.
func MaxRolls(rollsPerSecond float64, window time.Duration) uint64 {
	rate := decimal.NewFromFloat(rollsPerSecond)
	seconds := decimal.New(int64(window/time.Millisecond), -3)
	rolls := rate.Mul(seconds).Truncate(0)
	if rolls.Sign() <= 0 {
		return 0
	}
	return uint64(rolls.IntPart())
}

// Duration splits the real time needed for distance rolls into whole minutes
// and the remaining whole seconds. A non-positive rate yields zero.
func Duration(distance uint64, rollsPerSecond float64) (minutes int64, seconds int64) {
	if rollsPerSecond <= 0 {
		return 0, 0
	}
	total := decimal.NewFromBigInt(new(big.Int).SetUint64(distance), 0).
		Div(decimal.NewFromFloat(rollsPerSecond))
	whole := total.Truncate(0)
	return whole.Div(sixty).IntPart(), whole.Mod(sixty).IntPart()
}

func FormatDuration(distance uint64, rollsPerSecond float64) string {
	minutes, seconds := Duration(distance, rollsPerSecond)
	if minutes > 0 {
		return fmt.Sprintf("%d minutes, %d seconds", minutes, seconds)
	}
	return fmt.Sprintf("%d seconds", seconds)
}
