package entity

// Category is the closed set of event categories.
type Category string

const (
	CategoryMusic      Category = "MUSIC"
	CategorySports     Category = "SPORTS"
	CategoryArt        Category = "ART"
	CategoryFood       Category = "FOOD"
	CategoryTechnology Category = "TECHNOLOGY"
	CategoryEducation  Category = "EDUCATION"
	CategoryNature     Category = "NATURE"
	CategoryParty      Category = "PARTY"
	CategoryGames      Category = "GAMES"
	CategoryOther      Category = "OTHER"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryMusic,
		CategorySports,
		CategoryArt,
		CategoryFood,
		CategoryTechnology,
		CategoryEducation,
		CategoryNature,
		CategoryParty,
		CategoryGames,
		CategoryOther,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is an exact key of the enumeration.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic, CategorySports, CategoryArt, CategoryFood, CategoryTechnology,
		CategoryEducation, CategoryNature, CategoryParty, CategoryGames, CategoryOther:
		return true
	default:
		return false
	}
}
