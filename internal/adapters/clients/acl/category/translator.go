package category

import (
	categorydomain "github.com/jsamuelsen11/todosync/internal/domain/category"
)

// ToDomainCategoryList converts the remote category collection.
func ToDomainCategoryList(dtos []CategoryDTO) []categorydomain.Category {
	categories := make([]categorydomain.Category, len(dtos))
	for i, dto := range dtos {
		categories[i] = categorydomain.Category{
			ID:    dto.ID.String(),
			Name:  dto.Name,
			Color: dto.Color,
		}
	}
	return categories
}
