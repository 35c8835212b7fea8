package todo

import (
	tododomain "github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// ToDomainTodo converts a remote TodoDTO to a domain Todo.
func ToDomainTodo(dto *TodoDTO) tododomain.Todo {
	return tododomain.Todo{
		ID:          dto.ID.String(),
		Text:        dto.Text,
		Description: dto.Description,
		Category:    dto.Category,
		Completed:   dto.Completed,
	}
}

// ToDomainTodoList converts a remote collection, preserving server order.
func ToDomainTodoList(dtos []TodoDTO) []tododomain.Todo {
	todos := make([]tododomain.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToCreateTodoRequest converts a draft into the POST body.
func ToCreateTodoRequest(t *tododomain.Todo) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		ID:          t.ID,
		Text:        t.Text,
		Category:    t.Category,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// ToCreatedTodo converts the POST response. A response without an id keeps
// the draft's id, so the result always has one.
func ToCreatedTodo(dto *TodoDTO, draft *tododomain.Todo) tododomain.Todo {
	created := ToDomainTodo(dto)
	if created.ID == "" {
		created.ID = draft.ID
	}
	return created
}
