package director

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

// 吹き出しの既定サイズ（px）なのだ。
const (
	DefaultBubbleWidth  = 200.0
	DefaultBubbleHeight = 100.0
)

// ErrNoFrames はコマのないページにセリフを置こうとした場合のエラーです。
var ErrNoFrames = errors.New("ページにコマがありません")

// Line は1つのセリフです。Text にはメタタグを含められます。
type Line struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Director はセリフを吹き出しとしてコマに割り付けます。
type Director struct {
	layout       *LayoutManager
	style        *StyleManager
	BubbleWidth  float64
	BubbleHeight float64
}

// NewDirector は既定の配置ルールで Director を作ります。
func NewDirector() *Director {
	return &Director{
		layout:       NewLayoutManager(),
		style:        NewStyleManager(),
		BubbleWidth:  DefaultBubbleWidth,
		BubbleHeight: DefaultBubbleHeight,
	}
}

// Dialogue はセリフを読み順にコマへ1つずつ割り付け、吹き出しをページに追加します。
// セリフがコマより多い場合は先頭のコマに戻り、前の吹き出しと重ならない位置に配置するのだ。
func (d *Director) Dialogue(page *domain.Page, lines []Line) ([]*domain.Bubble, error) {
	frames := page.Frames()
	if len(frames) == 0 {
		return nil, fmt.Errorf("セリフの割り付けに失敗しました (page=%s): %w", page.ID, ErrNoFrames)
	}

	bubbles := make([]*domain.Bubble, 0, len(lines))
	for i, line := range lines {
		k, round := i%len(frames), i/len(frames)
		frame := frames[k]
		placed := d.layout.PlaceInRound(frame.Rect(), k, round, d.BubbleWidth, d.BubbleHeight)

		style := bubble.NewStyle(d.style.DetermineBubbleShape(line.Text))
		style.Tail.Placement = placed.Tail

		b := &domain.Bubble{
			Placement: domain.Placement{
				ID:     fmt.Sprintf("%s-bubble-%d", page.ID, i+1),
				X:      placed.Rect.X,
				Y:      placed.Rect.Y,
				Width:  placed.Rect.Width,
				Height: placed.Rect.Height,
			},
			Text:      d.style.StripTags(line.Text),
			SpeakerID: d.style.ResolveSpeakerID(line.Speaker),
			FontSize:  domain.DefaultFontSize,
			Style:     style,
		}
		page.Add(b)
		bubbles = append(bubbles, b)

		slog.Debug("吹き出しを配置しました", "id", b.ID, "frame", frame.ID, "round", round, "shape", style.Shape, "tail", style.Tail.Placement)
	}
	return bubbles, nil
}
