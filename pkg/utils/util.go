package utils

import (
	"math"
	"math/rand"
)

// SeededRandom は seed から [0,1) の擬似乱数を決定的に求めます。
// fract(sin(seed) * 10000) なので暗号用途には使えません。
// 連続した値が欲しい場合は seed + i*k のようにオフセットをずらして呼び出します。
// NaN や ±Inf のシードでは 0 を返します。
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	v := x - math.Floor(x)
	if math.IsNaN(v) || v < 0 || v >= 1 {
		return 0
	}
	return v
}

// IsFiniteSeed はシードが NaN でも ±Inf でもないかどうかです。
func IsFiniteSeed(seed float64) bool {
	return !math.IsNaN(seed) && !math.IsInf(seed, 0)
}

// SanitizeSeed は NaN や ±Inf のシードを 0 に置き換えます。
func SanitizeSeed(seed float64) float64 {
	if !IsFiniteSeed(seed) {
		return 0
	}
	return seed
}

// SeededIntn は SeededRandom を [0,n) の整数に写像します。n <= 0 の場合は 0 を返します。
func SeededIntn(seed float64, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(math.Floor(SeededRandom(seed) * float64(n)))
	switch {
	case v < 0:
		return 0
	case v >= n:
		// 浮動小数点の丸めで n に届く場合がある
		return n - 1
	default:
		return v
	}
}

// NewSeed は再生成用の新しいシード値を返します。
func NewSeed() float64 {
	return rand.Float64()
}

// DereferenceSeed は、float64のポインタを安全にデリファレンスします。
// ポインタがnilの場合は NewSeed で新しいシードを払い出します。
func DereferenceSeed(seed *float64) float64 {
	if seed == nil {
		return NewSeed()
	}
	return *seed
}
