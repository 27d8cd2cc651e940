package route

import "fmt"

// Category is the kind of destination a walker is looking for.
type Category string

const (
	CategoryBar         Category = "bar"
	CategoryCulture     Category = "culture"
	CategoryFood        Category = "food"
	CategoryRomantic    Category = "romantic"
	CategoryInvestigate Category = "investigate"
)

// searchQueries maps each category to the free-text term sent to the
// provider's search endpoints.
var searchQueries = map[Category]string{
	CategoryBar:         "Bar",
	CategoryCulture:     "Theater",
	CategoryFood:        "Grocery",
	CategoryRomantic:    "Cinema",
	CategoryInvestigate: "Landmark",
}

// IsValid returns true if the category is a recognized destination category.
func (c Category) IsValid() bool {
	_, exists := searchQueries[c]
	return exists
}

// SearchQuery returns the provider search term for the category, or an
// empty string when the category has no mapped term.
func (c Category) SearchQuery() string {
	return searchQueries[c]
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string to a Category, returning an error if invalid.
func ParseCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid destination category: %s", s)
	}
	return category, nil
}
