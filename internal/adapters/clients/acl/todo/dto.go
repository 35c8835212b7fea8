// Package todo implements the Anti-Corruption Layer translators for the
// remote todo resource.
package todo

import "github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/wire"

// TodoDTO matches a todo record as served by the remote resource. Optional
// fields may be absent or null.
type TodoDTO struct {
	ID          wire.ID `json:"id"`
	Text        string  `json:"text"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
}

// CreateTodoRequestDTO is the POST body. ID carries the client's candidate
// id; the server may replace it.
type CreateTodoRequestDTO struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// SetCompletedRequestDTO is the PATCH body of a toggle.
type SetCompletedRequestDTO struct {
	Completed bool `json:"completed"`
}

// SetDescriptionRequestDTO is the PATCH body of a description update.
type SetDescriptionRequestDTO struct {
	Description string `json:"description"`
}
