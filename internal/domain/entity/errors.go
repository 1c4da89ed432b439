package entity

import (
	"errors"
	"fmt"
)

// ErrDetectionUnavailable — внешний детектор недоступен.
// Фатально для запроса: частичный отчёт в этом случае не строится.
var ErrDetectionUnavailable = errors.New("detection service unavailable")

// UnknownClassError — метка детектора отсутствует в таблице из 23 классов.
type UnknownClassError struct {
	Label string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown damage class %q", e.Label)
}

// CostLookupError — в матрице стоимостей нет записи для пары (класс, серьёзность).
type CostLookupError struct {
	Class    string
	Severity Severity
}

func (e *CostLookupError) Error() string {
	return fmt.Sprintf("no repair cost for class %q severity %q", e.Class, e.Severity)
}

// InvalidBoundingBoxError — вырожденный прямоугольник.
type InvalidBoundingBoxError struct {
	Box BBox
}

func (e *InvalidBoundingBoxError) Error() string {
	return fmt.Sprintf("invalid bounding box (%d,%d,%d,%d)", e.Box.X1, e.Box.Y1, e.Box.X2, e.Box.Y2)
}
