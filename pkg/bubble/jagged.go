package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const (
	electricStep      = 15.0
	electricAmplitude = 5.0
	wobblyStep        = 10.0
	wobblyAmplitude   = 3.0
	wobblyFrequency   = 0.2
	// maxSideSamples を超える長い辺ではサンプル間隔を広げるのだ。
	maxSideSamples = 100
)

// jitterFunc は辺上の点 (x, y) を法線方向にずらした点を返します。
type jitterFunc func(x, y float64) geometry.Point

// jaggedSide は輪郭を構成する1辺です。
type jaggedSide struct {
	placement  Placement
	start, end float64 // 辺に沿った座標
	constant   float64 // 辺と直交する座標
	horizontal bool
}

// jaggedPath は辺を一定間隔でサンプリングした折れ線を描きます。
// しっぽの辺では付け根の帯に入ったサンプルを先端1点に置き換えるのだ。
func jaggedPath(width, height, step float64, jitter jitterFunc, tail *tailGeometry) geometry.Path {
	sides := []jaggedSide{
		{PlacementTop, 0, width, 0, true},
		{PlacementRight, 0, height, width, false},
		{PlacementBottom, width, 0, height, true},
		{PlacementLeft, height, 0, 0, false},
	}

	var pts []geometry.Point
	for _, s := range sides {
		positions := samplePositions(s.start, s.end, step)

		from, to := len(positions), len(positions)
		onTail := tail != nil && tail.placement == s.placement
		if onTail {
			from, to = zoneRange(positions, tail.along(), tail.halfWidth())
		}

		sidePts := make([]geometry.Point, 0, len(positions))
		for i, pos := range positions {
			if i >= from && i < to {
				continue
			}
			if s.horizontal {
				sidePts = append(sidePts, jitter(pos, s.constant))
			} else {
				sidePts = append(sidePts, jitter(s.constant, pos))
			}
		}
		if onTail {
			// 除いたサンプルの位置に先端を1点だけ差し込む
			sidePts = splice(sidePts, from, from, tail.tip)
		}
		pts = append(pts, sidePts...)
	}

	var p geometry.Path
	p.Polyline(pts)
	return p
}

// samplePositions は start から end までを step 以下の等間隔で分割した座標列を返します（両端を含む）。
func samplePositions(start, end, step float64) []float64 {
	span := math.Abs(end - start)
	steps := int(math.Ceil(span / step))
	if steps < 1 {
		steps = 1
	}
	if steps > maxSideSamples {
		steps = maxSideSamples
	}
	inc := (end - start) / float64(steps)
	positions := make([]float64, steps+1)
	for i := range positions {
		positions[i] = start + float64(i)*inc
	}
	return positions
}

// electricJitter は上下辺なら y、左右辺なら x を ±5px の乱数でずらします。
func electricJitter(height float64, rnd geometry.RandomSource) jitterFunc {
	return func(x, y float64) geometry.Point {
		offset := (rnd.Float64() - 0.5) * 2 * electricAmplitude
		if y == 0 || y == height {
			return geometry.Point{X: x, Y: y + offset}
		}
		return geometry.Point{X: x + offset, Y: y}
	}
}

// wobblyJitter は辺に沿った座標の正弦波で滑らかに揺らすのだ。
func wobblyJitter(height float64) jitterFunc {
	return func(x, y float64) geometry.Point {
		if y == 0 || y == height {
			return geometry.Point{X: x, Y: y + math.Sin(x*wobblyFrequency)*wobblyAmplitude}
		}
		return geometry.Point{X: x + math.Sin(y*wobblyFrequency)*wobblyAmplitude, Y: y}
	}
}
