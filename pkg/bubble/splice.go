package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// 輪郭上の位置を探してしっぽの迂回路を差し込む共通部品なのだ。
// 星形は「目標方向に最も近い頂点」、ギザギザ系は「付け根の帯に入ったサンプル」を探し、
// どちらも splice で1つの連続した迂回路に置き換えます。

// splice は pts[from:to] を detour に置き換えた新しいスライスを返します。
// from == to の場合は削除せずにその位置へ挿入します。
func splice(pts []geometry.Point, from, to int, detour ...geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(pts)-(to-from)+len(detour))
	out = append(out, pts[:from]...)
	out = append(out, detour...)
	return append(out, pts[to:]...)
}

// normalizeAngle は角度を [0, 2π) に正規化します。
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// angularDistance は円周上の2角の差（0〜π）です。
func angularDistance(a, b float64) float64 {
	d := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// nearestByAngle は候補の中から center から見た角度が target に最も近い頂点の添字を返します。
// 候補が無ければ -1 です。同じ距離なら先に見つかった方を採用するのだ。
func nearestByAngle(pts []geometry.Point, center geometry.Point, target float64, candidate func(i int) bool) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, p := range pts {
		if candidate != nil && !candidate(i) {
			continue
		}
		a := math.Atan2(p.Y-center.Y, p.X-center.X)
		if diff := angularDistance(a, target); diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// zoneRange は辺に沿った座標列 positions のうち center から half 未満にある連続区間 [from, to) を返します。
// 該当サンプルが無い場合は center を挟む位置を from == to として返し、しっぽが消えないようにするのだ。
func zoneRange(positions []float64, center, half float64) (int, int) {
	from, to := -1, -1
	for i, p := range positions {
		if math.Abs(p-center) < half {
			if from < 0 {
				from = i
			}
			to = i + 1
		}
	}
	if from >= 0 {
		return from, to
	}
	// center を越えた最初のサンプルの手前に挿入する
	for i := 1; i < len(positions); i++ {
		lo, hi := positions[i-1], positions[i]
		if (lo-center)*(hi-center) <= 0 {
			return i, i
		}
	}
	return len(positions), len(positions)
}
