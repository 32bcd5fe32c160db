package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const (
	starSpikes     = 16
	shoutSpikes    = 20
	shoutVariance  = 10.0
	innerRadiusDiv = 3.0
)

// spikyPath は外径・内径を交互に結ぶ星形を描きます。
// 外径は幅の 1/2、内径は幅の 1/3 で、叫びは各半径を ±10px 揺らすのだ。
// しっぽは先端方向に最も近い外側の頂点を先端に置き換えて表現します。
func spikyPath(width, height float64, spikes int, jitter geometry.RandomSource, tail *tailGeometry) geometry.Path {
	center := geometry.Point{X: width / 2, Y: height / 2}
	outerR := width / 2
	innerR := width / innerRadiusDiv

	n := spikes * 2
	nominal := make([]geometry.Point, n)
	pts := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		r := innerR
		if i%2 == 0 {
			r = outerR
		}
		a := math.Pi * float64(i) / float64(spikes)
		nominal[i] = geometry.Point{X: center.X + math.Cos(a)*r, Y: center.Y + math.Sin(a)*r}

		if jitter != nil {
			r += jitter.Float64()*2*shoutVariance - shoutVariance
		}
		pts[i] = geometry.Point{X: center.X + math.Cos(a)*r, Y: center.Y + math.Sin(a)*r}
	}

	if tail != nil {
		target := math.Atan2(tail.tip.Y-center.Y, tail.tip.X-center.X)
		outer := func(i int) bool { return i%2 == 0 }
		if idx := nearestByAngle(nominal, center, target, outer); idx >= 0 {
			pts = splice(pts, idx, idx+1, tail.tip)
		}
	}

	var p geometry.Path
	p.Polyline(pts)
	return p
}
