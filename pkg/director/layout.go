package director

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const (
	// DefaultMarginRatio はコマの端から吹き出しまでの余白（コマの辺に対する比率）です。
	DefaultMarginRatio = 0.1
	// cascadeRatio は同じ角に再び置くときに吹き出しの大きさに対してずらす割合です。
	cascadeRatio = 0.5
)

// BubblePlacement は吹き出しの位置としっぽの向きです。
type BubblePlacement struct {
	Rect geometry.Rect
	Tail bubble.Placement
}

// LayoutManager は吹き出しの座標や配置ルールを管理します。
type LayoutManager struct {
	MarginRatio float64
}

func NewLayoutManager() *LayoutManager {
	return &LayoutManager{
		MarginRatio: DefaultMarginRatio,
	}
}

// PlaceBubble はパネルのインデックスに基づき、右から左へ流れるような交互の配置を返します。
// 偶数は左下でしっぽが上、奇数は右上でしっぽが下なのだ。
// 吹き出しが余白の内側に収まらない場合は縮めます。
func (l *LayoutManager) PlaceBubble(frame geometry.Rect, index int, width, height float64) BubblePlacement {
	mx := frame.Width * l.MarginRatio
	my := frame.Height * l.MarginRatio
	width = math.Max(0, math.Min(width, frame.Width-2*mx))
	height = math.Max(0, math.Min(height, frame.Height-2*my))

	if index%2 == 0 {
		return BubblePlacement{
			Rect: geometry.Rect{X: frame.X + mx, Y: frame.Bottom() - my - height, Width: width, Height: height},
			Tail: bubble.PlacementTop,
		}
	}
	return BubblePlacement{
		Rect: geometry.Rect{X: frame.Right() - mx - width, Y: frame.Y + my, Width: width, Height: height},
		Tail: bubble.PlacementBottom,
	}
}

// PlaceInRound は round 周目にコマへ戻ってきた吹き出しの配置を返します。
// 同じコマでは周ごとに角を入れ替え、同じ角に戻る2周目以降はコマの中央へずらすのだ。
// ずらした位置は余白の内側に収めるので、小さなコマでは重なりが残ることがあります。
func (l *LayoutManager) PlaceInRound(frame geometry.Rect, index, round int, width, height float64) BubblePlacement {
	placed := l.PlaceBubble(frame, index+round, width, height)
	steps := round / 2
	if steps == 0 {
		return placed
	}

	mx := frame.Width * l.MarginRatio
	my := frame.Height * l.MarginRatio
	dx := float64(steps) * cascadeRatio * placed.Rect.Width
	dy := float64(steps) * cascadeRatio * placed.Rect.Height

	r := placed.Rect
	if placed.Tail == bubble.PlacementTop {
		// 左下から右上へ
		r.X += dx
		r.Y -= dy
	} else {
		// 右上から左下へ
		r.X -= dx
		r.Y += dy
	}
	r.X = geometry.Clamp(r.X, frame.X+mx, frame.Right()-mx-r.Width)
	r.Y = geometry.Clamp(r.Y, frame.Y+my, frame.Bottom()-my-r.Height)
	placed.Rect = r
	return placed
}
