// Package category holds the read-only Category entity used to resolve a
// todo's category label to a display color.
package category

// Category is a named, colored label. Categories are fetched from the remote
// resource and never mutated locally.
type Category struct {
	ID    string
	Name  string
	Color string
}

// ColorOf returns the color of the category named name. The lookup is exact
// and case-sensitive; ok is false when no category has that name.
func ColorOf(categories []Category, name string) (color string, ok bool) {
	if name == "" {
		return "", false
	}
	for i := range categories {
		if categories[i].Name == name {
			return categories[i].Color, true
		}
	}
	return "", false
}
