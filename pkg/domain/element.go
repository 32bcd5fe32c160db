package domain

import (
	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
)

// ElementKind はページ上の要素の種類です。
type ElementKind string

const (
	KindFrame   ElementKind = "frame"
	KindBubble  ElementKind = "bubble"
	KindText    ElementKind = "text"
	KindImage   ElementKind = "image"
	KindSticker ElementKind = "sticker"
)

// コマ枠の既定値なのだ。
const (
	DefaultBorderWidth     = 4.0
	DefaultBorderColor     = "#000000"
	DefaultFrameBackground = "#ffffff"
	DefaultFontSize        = 16.0
	DefaultFontFamily      = "sans-serif"
	DefaultTextColor       = "#000000"
)

// Placement は全要素に共通する位置・大きさ・重なり順です。
type Placement struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"` // 度
	ZIndex   int     `json:"z_index"`
}

// Rect は外接矩形を返します。
func (p Placement) Rect() geometry.Rect {
	return geometry.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Element はページに置ける要素です。各要素は自分の種類に必要な属性だけを持つのだ。
type Element interface {
	Kind() ElementKind
	Base() *Placement
}

// Frame はコマ枠です。
type Frame struct {
	Placement
	Shape       layout.Kind      `json:"shape"`
	Vertices    []geometry.Point `json:"vertices,omitempty"`
	BorderWidth float64          `json:"border_width"`
	BorderColor string           `json:"border_color"`
	Background  string           `json:"background"`
}

// NewFrame はレイアウトのコマから既定の枠線を持つ Frame を作ります。
func NewFrame(id string, region layout.Region) *Frame {
	region = region.Clone()
	return &Frame{
		Placement: Placement{
			ID:     id,
			X:      region.X,
			Y:      region.Y,
			Width:  region.Width,
			Height: region.Height,
		},
		Shape:       region.Kind,
		Vertices:    region.Vertices,
		BorderWidth: DefaultBorderWidth,
		BorderColor: DefaultBorderColor,
		Background:  DefaultFrameBackground,
	}
}

func (f *Frame) Kind() ElementKind { return KindFrame }
func (f *Frame) Base() *Placement  { return &f.Placement }

// Region はページ座標のレイアウト領域に戻します。
func (f *Frame) Region() layout.Region {
	r := layout.Region{Rect: f.Rect(), Kind: f.Shape, Vertices: f.Vertices}
	return r.Clone()
}

// Bubble は吹き出しです。
type Bubble struct {
	Placement
	Text      string       `json:"text"`
	SpeakerID string       `json:"speaker_id,omitempty"`
	FontSize  float64      `json:"font_size"`
	Style     bubble.Style `json:"style"`
}

func (b *Bubble) Kind() ElementKind { return KindBubble }
func (b *Bubble) Base() *Placement  { return &b.Placement }

// Text は枠のない文字要素です。
type Text struct {
	Placement
	Content    string  `json:"content"`
	FontSize   float64 `json:"font_size"`
	FontFamily string  `json:"font_family"`
	Color      string  `json:"color"`
}

func (t *Text) Kind() ElementKind { return KindText }
func (t *Text) Base() *Placement  { return &t.Placement }

// Image は画像要素です。Src はデータ URL でも外部 URL でもよいのだ。
type Image struct {
	Placement
	Src string `json:"src"`
	Fit string `json:"fit,omitempty"`
}

func (i *Image) Kind() ElementKind { return KindImage }
func (i *Image) Base() *Placement  { return &i.Placement }

// Sticker は効果音などの固定輪郭の装飾です。
type Sticker struct {
	Placement
	Shape bubble.StickerShape `json:"shape"`
	Text  string              `json:"text,omitempty"`
	Paint bubble.Paint        `json:"paint"`
}

func (s *Sticker) Kind() ElementKind { return KindSticker }
func (s *Sticker) Base() *Placement  { return &s.Placement }
