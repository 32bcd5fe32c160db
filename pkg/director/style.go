package director

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/bubble"
)

// tagShapes はセリフのメタタグと吹き出しの形状の対応なのだ。先に書いたものが優先されます。
var tagShapes = []struct {
	tag   string
	shape bubble.Shape
}{
	{"[shout]", bubble.ShapeShout},
	{"[thought]", bubble.ShapeThought},
	{"[electric]", bubble.ShapeElectric},
	{"[whisper]", bubble.ShapeWobbly},
	{"[star]", bubble.ShapeStar},
	{"[cloud]", bubble.ShapeCloud},
	{"[box]", bubble.ShapeRectangle},
}

var tagPattern = regexp.MustCompile(`(?i)\[(shout|thought|electric|whisper|star|cloud|box)\]`)

// StyleManager は話者の識別や吹き出しの種類（叫び等）を管理します。
type StyleManager struct{}

func NewStyleManager() *StyleManager {
	return &StyleManager{}
}

// ResolveSpeakerID は話者名から CSS 安全なハッシュ ID を生成します。
func (s *StyleManager) ResolveSpeakerID(name string) string {
	if strings.TrimSpace(name) == "" {
		return "speaker-narration"
	}
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return "speaker-" + hex.EncodeToString(h.Sum(nil))[:10]
}

// DetermineBubbleShape はセリフに含まれるメタタグから吹き出しの形状を判定します。
func (s *StyleManager) DetermineBubbleShape(text string) bubble.Shape {
	lower := strings.ToLower(text)
	for _, ts := range tagShapes {
		if strings.Contains(lower, ts.tag) {
			return ts.shape
		}
	}
	return bubble.ShapeCircle
}

// StripTags はメタタグを取り除いた表示用のセリフを返します。
func (s *StyleManager) StripTags(text string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}
