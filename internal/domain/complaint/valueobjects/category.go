package valueobjects

import "fmt"

type Category string

const (
	CategorySanitation Category = "Sanitation & Waste"
	CategoryRoads      Category = "Roads & Potholes"
	CategoryWater      Category = "Water Supply"
	CategoryElectric   Category = "Electricity"
	CategoryTransport  Category = "Public Transport"
	CategoryOther      Category = "Other"
)

var validCategories = map[Category]bool{
	CategorySanitation: true,
	CategoryRoads:      true,
	CategoryWater:      true,
	CategoryElectric:   true,
	CategoryTransport:  true,
	CategoryOther:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// CategoryOrOther returns the category if valid, otherwise the Other fallback.
func CategoryOrOther(s string) Category {
	c := Category(s)
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// AllCategories lists every known category in display order.
func AllCategories() []Category {
	return []Category{
		CategorySanitation,
		CategoryRoads,
		CategoryWater,
		CategoryElectric,
		CategoryTransport,
		CategoryOther,
	}
}
