package core

import (
	"math/rand"
	"time"
)

// Random 發球方向的亂數來源，*rand.Rand 就符合
type Random interface {
	Float64() float64
}

// NewRandom seed為0時用目前時間
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randomSign(r Random) float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}
