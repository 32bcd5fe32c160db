package pipeline

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
)

// countingGenerator は呼び出し回数を数える PathGenerator なのだ。
type countingGenerator struct {
	inner bubble.PathGenerator
	calls atomic.Int32
}

func (c *countingGenerator) Generate(width, height float64, style bubble.Style) bubble.Result {
	c.calls.Add(1)
	return c.inner.Generate(width, height, style)
}

func newTestPage(t *testing.T) *domain.Page {
	t.Helper()
	page := domain.NewPage("p", 800, 1200)
	page.ApplyLayout(layout.GenerateTemplateLayout("2-horiz", 800, 1200, 20))
	page.Add(&domain.Bubble{
		Placement: domain.Placement{ID: "b1", X: 100, Y: 100, Width: 200, Height: 100},
		Text:      "やあ",
		Style:     bubble.NewStyle(bubble.ShapeRectangle),
	})
	thought := bubble.NewStyle(bubble.ShapeThought)
	page.Add(&domain.Bubble{
		Placement: domain.Placement{ID: "b2", X: 300, Y: 700, Width: 200, Height: 100},
		Style:     thought,
	})
	page.Add(&domain.Sticker{Placement: domain.Placement{ID: "s1", Width: 200, Height: 150}, Shape: bubble.StickerStar, Text: "ドン"})
	return page
}

func TestPageRenderer_Render(t *testing.T) {
	gen := &countingGenerator{inner: bubble.NewGenerator(geometry.NewRandomSource(1))}
	r := NewPageRenderer(gen, 2)

	out, err := r.Render(context.Background(), newTestPage(t))
	require.NoError(t, err)
	require.Len(t, out, 5)

	wantIDs := []string{"p-frame-1", "p-frame-2", "b1", "b2", "s1"}
	for i, rendered := range out {
		assert.Equal(t, wantIDs[i], rendered.ID)
		assert.Equal(t, i, rendered.ZIndex)
		assert.NotEmpty(t, rendered.Path, rendered.ID)
	}
	assert.EqualValues(t, 2, gen.calls.Load())

	t.Run("コマは輪郭パス", func(t *testing.T) {
		assert.Equal(t, domain.KindFrame, out[0].Kind)
		assert.Equal(t, "M 20 20 L 780 20 L 780 595 L 20 595 Z", out[0].Path)
		require.NotNil(t, out[0].Extent)
		assert.Equal(t, out[0].Bounds, *out[0].Extent)
	})

	t.Run("吹き出しはページ座標に移動する", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out[2].Path, "M 108 100 "), out[2].Path)
		// 下向きのしっぽの先端 (210, 250) まで外接矩形に含まれる
		require.NotNil(t, out[2].Extent)
		ext := *out[2].Extent
		assert.InDelta(t, 100, ext.X, 1e-9)
		assert.InDelta(t, 100, ext.Y, 1e-9)
		assert.InDelta(t, 200, ext.Width, 1e-9)
		assert.InDelta(t, 150, ext.Height, 1e-9)
		assert.Equal(t, "やあ", out[2].Text)
	})

	t.Run("思考の点もページ座標", func(t *testing.T) {
		require.Len(t, out[3].Decorations, 3)
		last := out[3].Decorations[2]
		assert.InDelta(t, 300+110, last.CX, 1e-9)
		assert.InDelta(t, 700+150, last.CY, 1e-9)
	})

	t.Run("ステッカーは固定の座標系", func(t *testing.T) {
		require.NotNil(t, out[4].ViewBox)
		assert.Equal(t, bubble.StickerViewBox, *out[4].ViewBox)
		assert.Equal(t, "ドン", out[4].Text)
	})
}

func TestPageRenderer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPageRenderer(nil, 0).Render(ctx, newTestPage(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPageRenderer_WithCache(t *testing.T) {
	cached := bubble.NewCachedGenerator(bubble.NewGenerator(geometry.NewRandomSource(1)), time.Minute, time.Minute)
	r := NewPageRenderer(cached, 4)
	page := newTestPage(t)

	first, err := r.Render(context.Background(), page)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), page)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, cached.Len())
}

func TestFramePath_Circle(t *testing.T) {
	region := layout.Region{Rect: geometry.Rect{X: 10, Y: 10, Width: 100, Height: 50}, Kind: layout.KindCircle}
	assert.Equal(t, "M 10 35 A 50 25 0 1 1 110 35 A 50 25 0 1 1 10 35 Z", framePath(region).String())
}
