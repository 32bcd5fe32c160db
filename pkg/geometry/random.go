package geometry

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource は見た目の揺らぎに使う乱数源です。
// [0, 1) の一様乱数を返せば何でもよく、テストでは固定列に差し替えられるのだ。
type RandomSource interface {
	Float64() float64
}

// lockedSource は複数のゴルーチンから共有できるように rand.Rand を保護します。
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewRandomSource はシード付きの乱数源を返します。seed が 0 の場合は現在時刻から初期化するのだ。
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// FixedSource は与えられた値を順に返し、末尾に達したら先頭に戻る乱数源です。
// 値が空の場合は常に 0.5 を返します。複数のゴルーチンから呼んでもよいが、
// 並列に呼ぶと値を受け取る順番は決まらないのだ。
type FixedSource struct {
	Values []float64

	mu   sync.Mutex
	next int
}

func (f *FixedSource) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Values) == 0 {
		return 0.5
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
