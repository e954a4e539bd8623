package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/clients/acl/todoapi"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

// ServiceName identifies the downstream in traces, metrics and health.
const ServiceName = "todo-api"

const todosPath = "/api/v1/todos"

var (
	_ ports.TodoRepository = (*TodoClient)(nil)
	_ ports.HealthChecker  = (*TodoClient)(nil)
)

// TodoClient is the remote repository driver: it stores todos in the
// downstream todo API. Circuit breaking, rate limiting, retries and tracing
// come from the underlying httpclient.Client.
type TodoClient struct {
	client *httpclient.Client
	req    *Requester
}

func NewTodoClient(client *httpclient.Client) *TodoClient {
	return &TodoClient{
		client: client,
		req:    NewRequester(client),
	}
}

func (c *TodoClient) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	path := todosPath
	if filter.Completed != nil {
		path += "?" + url.Values{"done": {strconv.FormatBool(*filter.Completed)}}.Encode()
	}

	var dto todoapi.TodoListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return todoapi.ToDomainTodoList(dto), nil
}

func (c *TodoClient) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var dto todoapi.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, todoPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, notFoundAs(err, id)
	}
	t := todoapi.ToDomainTodo(&dto)
	return &t, nil
}

func (c *TodoClient) Create(ctx context.Context, in todo.CreateTodoDTO) (*todo.Todo, error) {
	var dto todoapi.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, todosPath, http.StatusCreated, todoapi.ToCreateTodoRequest(in), &dto); err != nil {
		return nil, err
	}
	t := todoapi.ToDomainTodo(&dto)
	return &t, nil
}

func (c *TodoClient) Update(ctx context.Context, in todo.UpdateTodoDTO) (*todo.Todo, error) {
	var dto todoapi.TodoDTO
	if err := c.req.Do(ctx, http.MethodPatch, todoPath(in.ID), http.StatusOK, todoapi.ToUpdateTodoRequest(in), &dto); err != nil {
		return nil, notFoundAs(err, in.ID)
	}
	t := todoapi.ToDomainTodo(&dto)
	return &t, nil
}

// Delete fetches the todo first because the downstream answers DELETE with
// 204 and no body.
func (c *TodoClient) Delete(ctx context.Context, id int64) (*todo.Todo, error) {
	existing, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.req.Do(ctx, http.MethodDelete, todoPath(id), http.StatusNoContent, nil, nil); err != nil {
		return nil, notFoundAs(err, id)
	}
	return existing, nil
}

// Name implements ports.HealthChecker.
func (c *TodoClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the downstream circuit breaker state. It does not
// make a network call.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

func todoPath(id int64) string {
	return fmt.Sprintf("%s/%d", todosPath, id)
}

// notFoundAs replaces a downstream 404 with our own not-found error so the
// message matches every other store.
func notFoundAs(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return todo.NotFound(id)
	}
	return err
}
