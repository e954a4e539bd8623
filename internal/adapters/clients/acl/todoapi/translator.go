package todoapi

import (
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// ToDomainTodo converts a downstream todo.
func ToDomainTodo(dto *TodoDTO) todo.Todo {
	return todo.Todo{
		ID:        dto.ID,
		Text:      dto.Title,
		Completed: dto.Done,
	}
}

// ToDomainTodoList converts a list response. The result is never nil.
func ToDomainTodoList(dto TodoListResponseDTO) []todo.Todo {
	todos := make([]todo.Todo, len(dto.Items))
	for i := range dto.Items {
		todos[i] = ToDomainTodo(&dto.Items[i])
	}
	return todos
}

func ToCreateTodoRequest(dto todo.CreateTodoDTO) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		Title: dto.Text,
		Done:  dto.Completed,
	}
}

// ToUpdateTodoRequest keeps partial-update semantics: only fields set on
// dto are sent.
func ToUpdateTodoRequest(dto todo.UpdateTodoDTO) UpdateTodoRequestDTO {
	return UpdateTodoRequestDTO{
		Title: dto.Text,
		Done:  dto.Completed,
	}
}
