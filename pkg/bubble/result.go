package bubble

import "github.com/shouni/go-comic-kit/pkg/geometry"

// Decoration は輪郭とは別に描く円（考え事のしっぽの泡）です。
type Decoration struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	Radius      float64 `json:"radius"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Result は吹き出しの輪郭と装飾です。座標は吹き出しの左上を原点とするローカル座標なのだ。
type Result struct {
	Path        geometry.Path `json:"-"`
	Decorations []Decoration  `json:"decorations,omitempty"`
}

// PathData は SVG の d 属性用の文字列を返します。
func (r Result) PathData() string {
	return r.Path.String()
}

// Clone は呼び出し側が変更しても元に影響しないコピーを返します。
func (r Result) Clone() Result {
	out := Result{Path: r.Path.Clone()}
	if r.Decorations != nil {
		out.Decorations = make([]Decoration, len(r.Decorations))
		copy(out.Decorations, r.Decorations)
	}
	return out
}
