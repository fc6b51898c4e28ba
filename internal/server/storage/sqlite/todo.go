package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage"
)

var todoSortColumns = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"title":     "title",
	"completed": "completed",
}

const todoColumns = "id, user_id, title, completed"

// CreateTodo persists a new todo and fills in the generated ID
func (s *Storage) CreateTodo(ctx context.Context, todo *models.Todo) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (user_id, title, completed) VALUES (?, ?, ?)`,
		todo.UserID, todo.Title, todo.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	todo.ID = id

	return nil
}

// GetTodoByID retrieves a todo by ID
func (s *Storage) GetTodoByID(ctx context.Context, id int64) (*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`

	todo := &models.Todo{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// ListTodos returns a page of todos and the total count
func (s *Storage) ListTodos(ctx context.Context, opts storage.ListOptions) ([]*models.Todo, int64, error) {
	return s.listTodos(ctx, `SELECT COUNT(*) FROM todos`,
		`SELECT `+todoColumns+` FROM todos `, nil, opts)
}

// ListTodosByUser returns a page of todos owned by the given user,
// optionally filtered by completion state
func (s *Storage) ListTodosByUser(ctx context.Context, userID int64, completed *bool, opts storage.ListOptions) ([]*models.Todo, int64, error) {
	countQuery := `SELECT COUNT(*) FROM todos WHERE user_id = ?`
	selectQuery := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ? `
	args := []any{userID}

	if completed != nil {
		countQuery += ` AND completed = ?`
		selectQuery = `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ? AND completed = ? `
		args = append(args, *completed)
	}

	return s.listTodos(ctx, countQuery, selectQuery, args, opts)
}

// UpdateTodo replaces the stored fields of an existing todo
func (s *Storage) UpdateTodo(ctx context.Context, todo *models.Todo) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET user_id = ?, title = ?, completed = ? WHERE id = ?`,
		todo.UserID, todo.Title, todo.Completed, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

// DeleteTodo removes a todo by ID
func (s *Storage) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return s.checkAffected(result, storage.ErrNotFound)
}

func (s *Storage) listTodos(ctx context.Context, countQuery, selectQuery string, args []any, opts storage.ListOptions) ([]*models.Todo, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count todos: %w", err)
	}

	query := selectQuery + orderClause(todoSortColumns, opts.SortBy, opts.SortDir) + ` LIMIT ? OFFSET ?`
	queryArgs := append(append([]any{}, args...), opts.Size, opts.Offset())

	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed); err != nil {
			return nil, 0, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, total, nil
}
