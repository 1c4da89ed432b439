package entity

// CostKey — составной ключ матрицы стоимостей.
type CostKey struct {
	Class    string
	Severity Severity
}

// CostMatrix — статическая таблица (класс × серьёзность) → стоимость ремонта в USD.
// Заполняется один раз при старте и дальше только читается.
type CostMatrix map[CostKey]int

// Lookup возвращает стоимость для пары (класс, серьёзность).
func (m CostMatrix) Lookup(class string, severity Severity) (int, error) {
	cost, ok := m[CostKey{Class: class, Severity: severity}]
	if !ok {
		return 0, &CostLookupError{Class: class, Severity: severity}
	}
	return cost, nil
}

// repairCosts — стоимости по уровням {minor, moderate, severe} для каждого класса.
var repairCosts = map[string][3]int{
	// Вмятины
	"bonnet-dent":            {150, 400, 800},
	"doorouter-dent":         {100, 350, 700},
	"fender-dent":            {120, 380, 750},
	"front-bumper-dent":      {100, 300, 600},
	"pillar-dent":            {200, 500, 1000},
	"quaterpanel-dent":       {150, 400, 800},
	"rear-bumper-dent":       {100, 300, 600},
	"roof-dent":              {200, 600, 1200},
	"medium-Bodypanel-Dent":  {150, 400, 900},
	"Major-Rear-Bumper-Dent": {300, 700, 1500},
	"RunningBoard-Dent":      {80, 250, 500},

	// Царапины
	"doorouter-scratch":    {50, 150, 400},
	"front-bumper-scratch": {50, 150, 350},
	"rear-bumper-scratch":  {50, 150, 350},

	// Лакокрасочное покрытие
	"doorouter-paint-trace": {60, 180, 450},
	"paint-chip":            {40, 120, 300},
	"paint-trace":           {50, 150, 400},

	// Стёкла и оптика
	"Front-Windscreen-Damage": {200, 500, 1000},
	"Rear-windscreen-Damage":  {200, 500, 1000},
	"Headlight-Damage":        {150, 400, 800},
	"Taillight-Damage":        {100, 300, 600},
	"Signlight-Damage":        {80, 200, 400},
	"Sidemirror-Damage":       {100, 300, 600},
}

// DefaultCostMatrix собирает матрицу 23×3 из справочника стоимостей.
func DefaultCostMatrix() CostMatrix {
	m := make(CostMatrix, len(repairCosts)*len(Severities))
	for class, costs := range repairCosts {
		for i, sev := range Severities {
			m[CostKey{Class: class, Severity: sev}] = costs[i]
		}
	}
	return m
}
