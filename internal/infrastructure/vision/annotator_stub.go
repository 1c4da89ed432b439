//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"damage-scan/internal/domain/entity"
	"damage-scan/internal/domain/port"
)

// Annotator — заглушка без OpenCV.
type Annotator struct {
	Thickness int
}

// NewAnnotator создаёт аннотатор-заглушку (без OpenCV).
func NewAnnotator() *Annotator {
	return &Annotator{Thickness: 3}
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (a *Annotator) Annotate(imageData []byte, detections []entity.Detection) ([]byte, error) {
	_ = imageData
	_ = detections
	return nil, errors.New("gocv build tag is not enabled")
}

var _ port.Annotator = (*Annotator)(nil)
