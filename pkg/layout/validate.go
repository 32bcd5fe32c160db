package layout

import (
	"errors"
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// containEpsilon は浮動小数点の誤差として許容するはみ出し量です。
const containEpsilon = 1e-6

var (
	// ErrOutOfBounds はコマが余白の内側に収まっていない場合のエラーです。
	ErrOutOfBounds = errors.New("コマがページの配置可能領域からはみ出しています")
	// ErrOverlap は2つのコマの輪郭が重なっている場合のエラーです。
	ErrOverlap = errors.New("コマ同士が重なっています")
)

// Validate は全てのコマが余白の内側に収まり、互いの輪郭が tolerance を超えて重ならないことを確認します。
func Validate(regions []Region, pageWidth, pageHeight, margin, tolerance float64) error {
	bounds := newArea(pageWidth, pageHeight, margin).Bounds()
	contours := make([]geometry.Polygon, len(regions))

	var errs []error
	for i, r := range regions {
		contours[i] = r.Contour()
		if r.Width < 0 || r.Height < 0 || !r.Rect.Corners().Within(bounds, containEpsilon) {
			errs = append(errs, fmt.Errorf("%w: index=%d", ErrOutOfBounds, i))
		}
	}
	for i := 0; i < len(contours); i++ {
		for j := i + 1; j < len(contours); j++ {
			if contours[i].Overlaps(contours[j], tolerance) {
				errs = append(errs, fmt.Errorf("%w: index=%d と index=%d", ErrOverlap, i, j))
			}
		}
	}
	return errors.Join(errs...)
}
