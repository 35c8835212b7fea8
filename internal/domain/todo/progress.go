package todo

import "math"

// UncategorizedLabel is the bucket name used for todos without a category.
const UncategorizedLabel = "Uncategorized"

// Stats summarizes a todo collection.
type Stats struct {
	Total           int
	Active          int
	Completed       int
	PercentComplete int
	ByCategory      map[string]int
}

// Summarize counts todos by completion and category. PercentComplete is
// rounded to the nearest integer and is 0 for an empty collection.
func Summarize(todos []Todo) Stats {
	s := Stats{
		Total:      len(todos),
		ByCategory: make(map[string]int),
	}
	for i := range todos {
		if todos[i].Completed {
			s.Completed++
		} else {
			s.Active++
		}
		key := todos[i].Category
		if key == "" {
			key = UncategorizedLabel
		}
		s.ByCategory[key]++
	}
	s.PercentComplete = CalculateProgress(s.Completed, s.Total)
	return s
}

// CalculateProgress returns completed/total as a rounded percentage.
// Returns 0 if total is zero.
func CalculateProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
