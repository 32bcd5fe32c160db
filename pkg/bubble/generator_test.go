package bubble

import (
	"math"
	"testing"

	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tailedStyle(shape Shape, placement Placement, offset, length float64) Style {
	s := NewStyle(shape)
	s.Tail = Tail{Placement: placement, Offset: offset, Length: length}
	return s
}

func countPoint(pts []geometry.Point, target geometry.Point) int {
	n := 0
	for _, p := range pts {
		if math.Abs(p.X-target.X) < 1e-9 && math.Abs(p.Y-target.Y) < 1e-9 {
			n++
		}
	}
	return n
}

func TestGenerate_RectangleScenario(t *testing.T) {
	res := GenerateBubblePath(200, 100, tailedStyle(ShapeRectangle, PlacementBottom, 50, 50), nil)

	want := "M 8 0 L 192 0 A 8 8 0 0 1 200 8 L 200 92 A 8 8 0 0 1 192 100 " +
		"L 120 100 L 110 150 L 80 100 L 8 100 A 8 8 0 0 1 0 92 L 0 8 A 8 8 0 0 1 8 0 Z"
	assert.Equal(t, want, res.PathData())
	assert.Empty(t, res.Decorations)

	// 切り欠きは x=100 を中心に、先端は y=150
	notchStart, tip, notchEnd := res.Path.Cmds[5], res.Path.Cmds[6], res.Path.Cmds[7]
	assert.InDelta(t, 100, (notchStart.Data[0]+notchEnd.Data[0])/2, 1e-9)
	assert.Equal(t, 100.0, notchStart.Data[1])
	assert.Equal(t, 150.0, tip.Data[1])
}

func TestGenerate_Closure(t *testing.T) {
	placements := []Placement{PlacementTop, PlacementBottom, PlacementLeft, PlacementRight}
	sizes := [][2]float64{{200, 100}, {80, 160}, {30, 30}, {1, 1}}

	for _, shape := range Shapes() {
		for _, placement := range placements {
			for _, size := range sizes {
				for _, hidden := range []bool{false, true} {
					style := tailedStyle(shape, placement, 30, 40)
					style.Tail.Hidden = hidden
					res := GenerateBubblePath(size[0], size[1], style, geometry.NewRandomSource(7))

					require.True(t, res.Path.IsClosed(), "%s %s %v", shape, placement, size)
					require.Equal(t, 1, res.Path.SubpathCount(), "しっぽは別のサブパスにならない: %s", shape)
				}
			}
		}
	}
}

func TestGenerate_TailIsSingleDetour(t *testing.T) {
	placements := []Placement{PlacementTop, PlacementBottom, PlacementLeft, PlacementRight}

	for _, shape := range Shapes() {
		if shape == ShapeThought {
			continue
		}
		for _, placement := range placements {
			t.Run(string(shape)+"/"+string(placement), func(t *testing.T) {
				style := tailedStyle(shape, placement, 35, 60)
				tail := computeTail(200, 140, style.Tail)

				res := GenerateBubblePath(200, 140, style, geometry.NewRandomSource(3))
				assert.Equal(t, 1, countPoint(res.Path.Vertices(), tail.tip))

				style.Tail.Hidden = true
				hidden := GenerateBubblePath(200, 140, style, geometry.NewRandomSource(3))
				assert.Zero(t, countPoint(hidden.Path.Vertices(), tail.tip))
			})
		}
	}
}

func TestGenerate_TailOffsetClamp(t *testing.T) {
	tests := []struct {
		raw, effective float64
	}{
		{0, 10},
		{-25, 10},
		{5, 10},
		{95, 90},
		{250, 90},
	}

	for _, shape := range []Shape{ShapeRectangle, ShapeCircle, ShapeCloud, ShapeStar, ShapeWobbly, ShapeThought} {
		for _, tt := range tests {
			got := GenerateBubblePath(180, 120, tailedStyle(shape, PlacementTop, tt.raw, 30), nil)
			want := GenerateBubblePath(180, 120, tailedStyle(shape, PlacementTop, tt.effective, 30), nil)
			assert.Equal(t, want.PathData(), got.PathData(), "%s offset=%v", shape, tt.raw)
			assert.Equal(t, want.Decorations, got.Decorations)
		}
	}
}

func TestGenerate_Thought(t *testing.T) {
	style := tailedStyle(ShapeThought, PlacementBottom, 50, 50)
	res := GenerateBubblePath(200, 100, style, nil)

	require.Len(t, res.Decorations, 3)
	radii := []float64{res.Decorations[0].Radius, res.Decorations[1].Radius, res.Decorations[2].Radius}
	assert.Equal(t, []float64{8, 5, 3}, radii)

	// 付け根 (100,100) から先端 (110,150) への 0.15 / 0.5 / 1.0 の位置
	assert.InDelta(t, 101.5, res.Decorations[0].CX, 1e-9)
	assert.InDelta(t, 107.5, res.Decorations[0].CY, 1e-9)
	assert.InDelta(t, 105, res.Decorations[1].CX, 1e-9)
	assert.InDelta(t, 125, res.Decorations[1].CY, 1e-9)
	assert.InDelta(t, 110, res.Decorations[2].CX, 1e-9)
	assert.InDelta(t, 150, res.Decorations[2].CY, 1e-9)
	assert.Equal(t, "#ffffff", res.Decorations[0].Fill)
	assert.Equal(t, "#000000", res.Decorations[0].Stroke)

	t.Run("輪郭にはしっぽを含めない", func(t *testing.T) {
		plain := NewStyle(ShapeCloud)
		plain.Tail.Hidden = true
		cloud := GenerateBubblePath(200, 100, plain, nil)
		assert.Equal(t, cloud.PathData(), res.PathData())
	})

	t.Run("しっぽを隠すと泡も出ない", func(t *testing.T) {
		style.Tail.Hidden = true
		hidden := GenerateBubblePath(200, 100, style, nil)
		assert.Empty(t, hidden.Decorations)
	})
}

func TestGenerate_Circle(t *testing.T) {
	t.Run("しっぽ無しは2つの半円弧", func(t *testing.T) {
		style := NewStyle(ShapeCircle)
		style.Tail.Hidden = true
		res := GenerateBubblePath(200, 100, style, nil)
		assert.Equal(t, "M 200 50 A 100 50 0 1 1 0 50 A 100 50 0 1 1 200 50 Z", res.PathData())
	})

	t.Run("しっぽは楕円に直接切り込む", func(t *testing.T) {
		res := GenerateBubblePath(200, 100, tailedStyle(ShapeCircle, PlacementBottom, 50, 50), nil)
		require.Len(t, res.Path.Cmds, 4)
		assert.Equal(t, geometry.ArcTo, res.Path.Cmds[1].Op)

		spread := 0.2 + 20.0/200
		start, _ := res.Path.Start()
		assert.InDelta(t, 100+100*math.Cos(math.Pi/2+spread), start.X, 1e-9)
		assert.InDelta(t, 50+50*math.Sin(math.Pi/2+spread), start.Y, 1e-9)

		tip := res.Path.Cmds[2]
		assert.Equal(t, geometry.LineTo, tip.Op)
		assert.Equal(t, [2]float64{110, 150}, [2]float64{tip.Data[0], tip.Data[1]})
	})
}

func TestGenerate_StarReplacesNearestSpike(t *testing.T) {
	res := GenerateBubblePath(200, 200, tailedStyle(ShapeStar, PlacementBottom, 50, 50), nil)
	pts := res.Path.Vertices()
	require.Len(t, pts, starSpikes*2)

	// 先端 (110, 250) に最も近い外側の頂点は真下（i=8）
	assert.Equal(t, geometry.Point{X: 110, Y: 250}, pts[8])
	assert.InDelta(t, 200, pts[0].X, 1e-9)
	assert.InDelta(t, 100, pts[0].Y, 1e-9)
}

func TestGenerate_ShoutJitter(t *testing.T) {
	style := NewStyle(ShapeShout)
	style.Tail.Hidden = true

	t.Run("揺らぎが 0.5 なら半径はそのまま", func(t *testing.T) {
		res := GenerateBubblePath(120, 120, style, &geometry.FixedSource{Values: []float64{0.5}})
		pts := res.Path.Vertices()
		require.Len(t, pts, shoutSpikes*2)
		for i, p := range pts {
			r := math.Hypot(p.X-60, p.Y-60)
			want := 40.0
			if i%2 == 0 {
				want = 60
			}
			assert.InDelta(t, want, r, 1e-9)
		}
	})

	t.Run("半径の揺らぎは ±10 に収まる", func(t *testing.T) {
		res := GenerateBubblePath(120, 120, style, geometry.NewRandomSource(99))
		for i, p := range res.Path.Vertices() {
			r := math.Hypot(p.X-60, p.Y-60)
			nominal := 40.0
			if i%2 == 0 {
				nominal = 60
			}
			assert.LessOrEqual(t, math.Abs(r-nominal), shoutVariance+1e-9)
		}
	})

	t.Run("同じシードなら同じ輪郭", func(t *testing.T) {
		a := GenerateBubblePath(120, 120, style, geometry.NewRandomSource(5))
		b := GenerateBubblePath(120, 120, style, geometry.NewRandomSource(5))
		assert.Equal(t, a.PathData(), b.PathData())
	})
}

func TestGenerate_Electric(t *testing.T) {
	t.Run("付け根の帯のサンプルは先端1点になる", func(t *testing.T) {
		style := tailedStyle(ShapeElectric, PlacementBottom, 50, 50)
		res := GenerateBubblePath(200, 100, style, &geometry.FixedSource{})
		// 15 + 8 + 15 + 8 サンプルのうち下辺の3点が先端1点に置き換わる
		assert.Len(t, res.Path.Vertices(), 44)

		style.Tail.Hidden = true
		plain := GenerateBubblePath(200, 100, style, &geometry.FixedSource{})
		assert.Len(t, plain.Path.Vertices(), 46)
	})

	t.Run("揺らぎは ±5px に収まる", func(t *testing.T) {
		style := NewStyle(ShapeElectric)
		style.Tail.Hidden = true
		res := GenerateBubblePath(200, 100, style, geometry.NewRandomSource(11))
		b := res.Path.Bounds()
		assert.GreaterOrEqual(t, b.X, -electricAmplitude)
		assert.GreaterOrEqual(t, b.Y, -electricAmplitude)
		assert.LessOrEqual(t, b.Right(), 200+electricAmplitude)
		assert.LessOrEqual(t, b.Bottom(), 100+electricAmplitude)
	})

	t.Run("小さな箱でもしっぽが消えない", func(t *testing.T) {
		style := tailedStyle(ShapeElectric, PlacementBottom, 30, 20)
		tail := computeTail(20, 20, style.Tail)
		res := GenerateBubblePath(20, 20, style, &geometry.FixedSource{})
		assert.Equal(t, 1, countPoint(res.Path.Vertices(), tail.tip))
	})

	t.Run("巨大な箱でもサンプル数は有界", func(t *testing.T) {
		style := NewStyle(ShapeElectric)
		res := GenerateBubblePath(100000, 100000, style, &geometry.FixedSource{})
		assert.LessOrEqual(t, len(res.Path.Vertices()), 4*(maxSideSamples+1))
	})
}

func TestGenerate_WobblyIsDeterministic(t *testing.T) {
	style := tailedStyle(ShapeWobbly, PlacementRight, 70, 30)
	a := GenerateBubblePath(160, 90, style, geometry.NewRandomSource(1))
	b := GenerateBubblePath(160, 90, style, geometry.NewRandomSource(2))
	assert.Equal(t, a.PathData(), b.PathData())
}

func TestGenerate_Degenerate(t *testing.T) {
	t.Run("未知の形状は空のパス", func(t *testing.T) {
		res := GenerateBubblePath(100, 100, NewStyle(ParseShape("hexagon")), nil)
		assert.True(t, res.Path.IsEmpty())
		assert.Empty(t, res.Decorations)
		assert.Equal(t, "", res.PathData())
	})

	t.Run("面積ゼロや負のサイズでも NaN を出さない", func(t *testing.T) {
		for _, shape := range Shapes() {
			for _, size := range [][2]float64{{0, 0}, {-10, 5}, {math.NaN(), 10}, {math.Inf(1), 3}} {
				res := GenerateBubblePath(size[0], size[1], tailedStyle(shape, PlacementLeft, 50, 10), geometry.NewRandomSource(1))
				for _, c := range res.Path.Cmds {
					for _, v := range c.Data {
						require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s %v", shape, size)
					}
				}
			}
		}
	})

	t.Run("負の長さは 0 として扱う", func(t *testing.T) {
		tail := computeTail(100, 100, Tail{Placement: PlacementRight, Offset: 50, Length: -30})
		assert.Equal(t, 100.0, tail.tip.X)
	})

	t.Run("NaN や無限大の長さは 0 として扱う", func(t *testing.T) {
		for _, length := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			tail := computeTail(100, 100, Tail{Placement: PlacementBottom, Offset: 50, Length: length})
			assert.Equal(t, geometry.Point{X: 60, Y: 100}, tail.tip, "length=%v", length)

			for _, shape := range Shapes() {
				res := GenerateBubblePath(200, 100, tailedStyle(shape, PlacementBottom, 50, length), geometry.NewRandomSource(1))
				require.False(t, res.Path.IsEmpty(), "%s", shape)
				for _, c := range res.Path.Cmds {
					for _, v := range c.Data {
						require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s length=%v", shape, length)
					}
				}
				for _, d := range res.Decorations {
					require.False(t, math.IsNaN(d.CX) || math.IsNaN(d.CY), "%s length=%v", shape, length)
				}
			}
		}
	})
}

func TestGenerate_RectangleNotchAvoidsCorners(t *testing.T) {
	// 付け根 x=6 は角丸 r=8 と半幅 12 を避けて中心 x=20 まで寄せられる
	res := GenerateBubblePath(60, 100, tailedStyle(ShapeRectangle, PlacementTop, 10, 30), nil)
	require.GreaterOrEqual(t, len(res.Path.Cmds), 4)

	notchStart, tip, notchEnd := res.Path.Cmds[1], res.Path.Cmds[2], res.Path.Cmds[3]
	assert.Equal(t, geometry.LineTo, notchStart.Op)
	assert.GreaterOrEqual(t, notchStart.Data[0], 8.0)
	assert.Equal(t, []float64{8, 0}, notchStart.Data[:2])
	assert.Equal(t, []float64{-4, -30}, tip.Data[:2])
	assert.Equal(t, []float64{32, 0}, notchEnd.Data[:2])
}

func TestGenerate_CloudTailLobes(t *testing.T) {
	res := GenerateBubblePath(200, 100, tailedStyle(ShapeCloud, PlacementBottom, 50, 50), nil)
	require.Len(t, res.Path.Cmds, 7)

	// 下辺の山は付け根 (100,100) の左右 20px、辺の外側 20px を制御点にして先端を通る
	toTip, fromTip := res.Path.Cmds[3], res.Path.Cmds[4]
	assert.Equal(t, geometry.QuadTo, toTip.Op)
	assert.Equal(t, []float64{120, 120, 110, 150}, toTip.Data[:4])
	assert.Equal(t, geometry.QuadTo, fromTip.Op)
	assert.Equal(t, []float64{80, 120, 20, 80}, fromTip.Data[:4])
}

func TestGenerate_WobblyFollowsSine(t *testing.T) {
	style := NewStyle(ShapeWobbly)
	style.Tail.Hidden = true
	res := GenerateBubblePath(200, 100, style, nil)
	pts := res.Path.Vertices()
	require.Len(t, pts, 21+11+21+11)

	// 上辺の2点目は x=10、y は 3·sin(0.2·10) だけずれる
	assert.InDelta(t, 10, pts[1].X, 1e-9)
	assert.InDelta(t, 3*math.Sin(2), pts[1].Y, 1e-9)
	// 右辺の2点目は y=10 に応じて x がずれる
	assert.InDelta(t, 200+3*math.Sin(2), pts[22].X, 1e-9)
	assert.InDelta(t, 10, pts[22].Y, 1e-9)
}

func TestComputeTail(t *testing.T) {
	tests := []struct {
		name      string
		tail      Tail
		base, tip geometry.Point
		baseWidth float64
	}{
		{"上辺・前半は負方向に倒す", Tail{PlacementTop, 25, 30, false}, geometry.Point{X: 50, Y: 0}, geometry.Point{X: 40, Y: -30}, 40},
		{"左辺", Tail{PlacementLeft, 50, 20, false}, geometry.Point{X: 0, Y: 50}, geometry.Point{X: -20, Y: 60}, 40},
		{"右辺・付け根幅は高さの 40%", Tail{PlacementRight, 80, 10, false}, geometry.Point{X: 200, Y: 80}, geometry.Point{X: 210, Y: 90}, 40},
		{"未指定の辺は下", Tail{"", 50, 50, false}, geometry.Point{X: 100, Y: 100}, geometry.Point{X: 110, Y: 150}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeTail(200, 100, tt.tail)
			assert.Equal(t, tt.base, got.base)
			assert.Equal(t, tt.tip, got.tip)
			assert.Equal(t, tt.baseWidth, got.baseWidth)
		})
	}

	narrow := computeTail(50, 300, Tail{Placement: PlacementBottom, Offset: 50, Length: 10})
	assert.Equal(t, 20.0, narrow.baseWidth)
}
