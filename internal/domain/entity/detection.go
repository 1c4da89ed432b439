package entity

// BoxEncoding — нативная кодировка рамки у детектора.
type BoxEncoding string

const (
	// EncodingCenter: X,Y — центр рамки, W,H — ширина и высота (Roboflow).
	EncodingCenter BoxEncoding = "center"
	// EncodingCorners: X,Y — левый верхний угол (x1,y1), W,H — правый нижний (x2,y2).
	EncodingCorners BoxEncoding = "corners"
)

// RawBox — координаты рамки до канонизации.
type RawBox struct {
	Encoding BoxEncoding
	X, Y     float64
	W, H     float64
}

// RawDetection — один сырой результат детектора до нормализации.
type RawDetection struct {
	Label      string
	Confidence float64
	Box        RawBox
}

// DetectionSet — итог вызова внешнего детектора по одному изображению.
type DetectionSet struct {
	ImageWidth  int
	ImageHeight int
	Raw         []RawDetection
}

// Detection — нормализованное повреждение с производными полями.
type Detection struct {
	Class         string   `json:"class"`
	Category      Category `json:"-"`
	Confidence    float64  `json:"confidence"`
	BBox          BBox     `json:"bbox"`
	Severity      Severity `json:"severity"`
	EstimatedCost int      `json:"estimated_cost"`
}
