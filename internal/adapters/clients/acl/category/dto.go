// Package category implements the Anti-Corruption Layer translators for the
// remote category resource.
package category

import "github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/wire"

// CategoryDTO matches a category record as served by the remote resource.
type CategoryDTO struct {
	ID    wire.ID `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
}
