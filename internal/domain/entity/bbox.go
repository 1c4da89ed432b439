package entity

// BBox — прямоугольник повреждения в пикселях исходного изображения.
// Инвариант: X1 < X2, Y1 < Y2.
type BBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Validate проверяет, что прямоугольник не вырожден.
func (b BBox) Validate() error {
	if b.X1 >= b.X2 || b.Y1 >= b.Y2 {
		return &InvalidBoundingBoxError{Box: b}
	}
	return nil
}

// Area возвращает площадь прямоугольника.
func (b BBox) Area() int {
	w := b.X2 - b.X1
	h := b.Y2 - b.Y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Center возвращает координаты центра.
func (b BBox) Center() (x, y int) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// IoU считает пересечение-над-объединением с другим прямоугольником.
// Результат всегда в [0,1]; для совпадающих прямоугольников равен 1.
func (b BBox) IoU(o BBox) float64 {
	ix1 := maxInt(b.X1, o.X1)
	iy1 := maxInt(b.Y1, o.Y1)
	ix2 := minInt(b.X2, o.X2)
	iy2 := minInt(b.Y2, o.Y2)

	if ix1 >= ix2 || iy1 >= iy2 {
		return 0
	}

	inter := (ix2 - ix1) * (iy2 - iy1)
	union := b.Area() + o.Area() - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
