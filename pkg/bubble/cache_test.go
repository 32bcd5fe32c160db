package bubble

import (
	"testing"
	"time"

	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGenerator は呼び出し回数を数える PathGenerator なのだ。
type countingGenerator struct {
	calls int
	gen   *Generator
}

func (c *countingGenerator) Generate(width, height float64, style Style) Result {
	c.calls++
	return c.gen.Generate(width, height, style)
}

func TestCachedGenerator(t *testing.T) {
	inner := &countingGenerator{gen: NewGenerator(geometry.NewRandomSource(1))}
	cached := NewCachedGenerator(inner, time.Minute, time.Minute)
	style := NewStyle(ShapeShout)

	first := cached.Generate(150, 150, style)
	second := cached.Generate(150, 150, style)

	t.Run("同じキーは再計算しない", func(t *testing.T) {
		assert.Equal(t, 1, inner.calls)
		assert.Equal(t, 1, cached.Len())
		// 揺らぎを含む叫びでもキャッシュ中は同じ輪郭になる
		assert.Equal(t, first.PathData(), second.PathData())
	})

	t.Run("サイズやスタイルが違えば別のキー", func(t *testing.T) {
		cached.Generate(151, 150, style)
		other := style
		other.Tail.Offset = 70
		cached.Generate(150, 150, other)
		assert.Equal(t, 3, inner.calls)
	})

	t.Run("返した結果を書き換えてもキャッシュは壊れない", func(t *testing.T) {
		got := cached.Generate(150, 150, style)
		require.NotEmpty(t, got.Path.Cmds)
		got.Path.Cmds[0].Data[0] = -999

		again := cached.Generate(150, 150, style)
		assert.Equal(t, first.PathData(), again.PathData())
	})

	t.Run("Flush で空になる", func(t *testing.T) {
		cached.Flush()
		assert.Zero(t, cached.Len())
	})
}

func TestCachedGenerator_ThoughtDecorationsAreCopied(t *testing.T) {
	cached := NewCachedGenerator(NewGenerator(nil), time.Minute, time.Minute)
	style := NewStyle(ShapeThought)

	got := cached.Generate(200, 100, style)
	require.Len(t, got.Decorations, 3)
	got.Decorations[0].Radius = 100

	again := cached.Generate(200, 100, style)
	assert.Equal(t, 8.0, again.Decorations[0].Radius)
}

func TestStickerPath(t *testing.T) {
	tests := []struct {
		shape    StickerShape
		vertices int
	}{
		{StickerStar, 16},
		{StickerSharp, 8},
		{StickerCloud, 9},
		{StickerNone, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			p := StickerPath(tt.shape)
			assert.Len(t, p.Vertices(), tt.vertices)
			if tt.vertices > 0 {
				assert.True(t, p.IsClosed())
				b := p.Bounds()
				assert.GreaterOrEqual(t, b.X, 0.0)
				assert.LessOrEqual(t, b.Right(), StickerViewBox.Width)
			}
		})
	}
}

func TestParsing(t *testing.T) {
	assert.Equal(t, ShapeStar, ParseShape(" Star "))
	assert.False(t, ParseShape("sharp").IsKnown())
	assert.Equal(t, PlacementLeft, ParsePlacement("LEFT"))
	assert.Equal(t, PlacementBottom, ParsePlacement("diagonal"))
}
