package domain

import (
	"fmt"
	"sort"

	"github.com/shouni/go-comic-kit/pkg/layout"
)

// Page は1枚の原稿です。Elements は追加順で保持し、描画順は ZIndex で決めます。
type Page struct {
	ID         string    `json:"id"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Background string    `json:"background"`
	Elements   []Element `json:"-"`
}

// NewPage は白背景のページを作ります。
func NewPage(id string, width, height float64) *Page {
	return &Page{ID: id, Width: width, Height: height, Background: DefaultFrameBackground}
}

// NextZIndex は既存の要素より手前に置くための ZIndex を返すのだ。
func (p *Page) NextZIndex() int {
	next := 0
	for _, e := range p.Elements {
		if z := e.Base().ZIndex + 1; z > next {
			next = z
		}
	}
	return next
}

// Add は要素を最前面に追加します。
func (p *Page) Add(e Element) {
	e.Base().ZIndex = p.NextZIndex()
	p.Elements = append(p.Elements, e)
}

// ApplyLayout はレイアウト結果のコマを Frame として順に追加し、追加した枠を返します。
// テンプレートがページサイズを上書きした場合はそれに従うのだ。
func (p *Page) ApplyLayout(res layout.Result) []*Frame {
	if res.Width > 0 && res.Height > 0 {
		p.Width, p.Height = res.Width, res.Height
	}

	frames := make([]*Frame, 0, len(res.Regions))
	for _, region := range res.Regions {
		f := NewFrame(fmt.Sprintf("%s-frame-%d", p.ID, len(p.Frames())+1), region)
		p.Add(f)
		frames = append(frames, f)
	}
	return frames
}

// Frames はコマ枠だけを追加順で返します。
func (p *Page) Frames() []*Frame {
	var out []*Frame
	for _, e := range p.Elements {
		if f, ok := e.(*Frame); ok {
			out = append(out, f)
		}
	}
	return out
}

// Bubbles は吹き出しだけを追加順で返します。
func (p *Page) Bubbles() []*Bubble {
	var out []*Bubble
	for _, e := range p.Elements {
		if b, ok := e.(*Bubble); ok {
			out = append(out, b)
		}
	}
	return out
}

// SortedElements は奥から手前への描画順で返します。同じ ZIndex は追加順なのだ。
func (p *Page) SortedElements() []Element {
	out := make([]Element, len(p.Elements))
	copy(out, p.Elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Base().ZIndex < out[j].Base().ZIndex
	})
	return out
}

// Project は複数ページをまとめた作品です。
type Project struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Pages        []*Page `json:"pages"`
	ActivePageID string  `json:"active_page_id"`
}

// NewProject は1ページ目をアクティブにしたプロジェクトを作ります。
func NewProject(id, title string, first *Page) *Project {
	p := &Project{ID: id, Title: title}
	if first != nil {
		p.Pages = []*Page{first}
		p.ActivePageID = first.ID
	}
	return p
}

// ActivePage はアクティブなページを返します。見つからない場合は nil なのだ。
func (p *Project) ActivePage() *Page {
	for _, page := range p.Pages {
		if page.ID == p.ActivePageID {
			return page
		}
	}
	return nil
}
