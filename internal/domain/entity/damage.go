package entity

// Severity — уровень серьёзности повреждения.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Severities — все уровни в порядке возрастания.
var Severities = []Severity{SeverityMinor, SeverityModerate, SeveritySevere}

// Category — категория класса повреждения.
type Category string

const (
	CategoryDent       Category = "dent"
	CategoryScratch    Category = "scratch"
	CategoryPaint      Category = "paint"
	CategoryGlassLight Category = "glass_light"
)

// DamageClass описывает один из 23 известных классов повреждений.
type DamageClass struct {
	Name     string   // точное имя класса у детектора (регистрозависимое)
	Category Category // категория для стратегий серьёзности
	Critical bool     // критичные классы оцениваются строже по площади
}

// damageClasses — фиксированная таблица из 23 классов.
// Имена совпадают с метками модели один в один, включая регистр.
var damageClasses = []DamageClass{
	{Name: "bonnet-dent", Category: CategoryDent},
	{Name: "doorouter-dent", Category: CategoryDent},
	{Name: "fender-dent", Category: CategoryDent},
	{Name: "front-bumper-dent", Category: CategoryDent},
	{Name: "pillar-dent", Category: CategoryDent},
	{Name: "quaterpanel-dent", Category: CategoryDent},
	{Name: "rear-bumper-dent", Category: CategoryDent},
	{Name: "roof-dent", Category: CategoryDent},
	{Name: "medium-Bodypanel-Dent", Category: CategoryDent},
	{Name: "Major-Rear-Bumper-Dent", Category: CategoryDent, Critical: true},
	{Name: "RunningBoard-Dent", Category: CategoryDent},
	{Name: "doorouter-scratch", Category: CategoryScratch},
	{Name: "front-bumper-scratch", Category: CategoryScratch},
	{Name: "rear-bumper-scratch", Category: CategoryScratch},
	{Name: "doorouter-paint-trace", Category: CategoryPaint},
	{Name: "paint-chip", Category: CategoryPaint},
	{Name: "paint-trace", Category: CategoryPaint},
	{Name: "Front-Windscreen-Damage", Category: CategoryGlassLight, Critical: true},
	{Name: "Rear-windscreen-Damage", Category: CategoryGlassLight, Critical: true},
	{Name: "Headlight-Damage", Category: CategoryGlassLight},
	{Name: "Taillight-Damage", Category: CategoryGlassLight},
	{Name: "Signlight-Damage", Category: CategoryGlassLight},
	{Name: "Sidemirror-Damage", Category: CategoryGlassLight},
}

var damageClassByName = func() map[string]DamageClass {
	m := make(map[string]DamageClass, len(damageClasses))
	for _, c := range damageClasses {
		m[c.Name] = c
	}
	return m
}()

// ClassByName ищет класс по точному имени метки.
func ClassByName(name string) (DamageClass, bool) {
	c, ok := damageClassByName[name]
	return c, ok
}

// Classes возвращает копию таблицы классов.
func Classes() []DamageClass {
	out := make([]DamageClass, len(damageClasses))
	copy(out, damageClasses)
	return out
}
