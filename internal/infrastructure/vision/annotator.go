//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// Annotator рисует рамки повреждений через OpenCV.
type Annotator struct {
	Thickness int
}

// NewAnnotator создаёт аннотатор с толщиной рамки по умолчанию.
func NewAnnotator() *Annotator {
	return &Annotator{Thickness: 3}
}

// severityColor — цвет рамки по уровню серьёзности.
func severityColor(s entity.Severity) color.RGBA {
	switch s {
	case entity.SeveritySevere:
		return color.RGBA{R: 255, A: 255}
	case entity.SeverityModerate:
		return color.RGBA{R: 255, G: 165, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, A: 255}
	}
}

// Annotate возвращает JPEG с подсветкой повреждений и подписями классов.
func (a *Annotator) Annotate(imageData []byte, detections []entity.Detection) ([]byte, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, errors.New("failed to decode image")
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	for _, det := range detections {
		clr := severityColor(det.Severity)
		rect := image.Rect(det.BBox.X1, det.BBox.Y1, det.BBox.X2, det.BBox.Y2)
		gocv.Rectangle(&mat, rect, clr, a.Thickness)

		label := fmt.Sprintf("%s (%.1f%%)", det.Class, det.Confidence*100)
		gocv.PutText(&mat, label, image.Pt(det.BBox.X1+5, det.BBox.Y1-8), gocv.FontHersheySimplex, 0.6, clr, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var _ port.Annotator = (*Annotator)(nil)
