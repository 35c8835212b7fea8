package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/category"
	categorydomain "github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// Compile-time interface check.
var _ ports.CategoryClient = (*CategoryClient)(nil)

// CategoryClient is the outbound adapter for the read-only category
// collection of the remote resource.
type CategoryClient struct {
	req *Requester
}

// NewCategoryClient creates a CategoryClient sharing the given
// [httpclient.Client] with the todo adapter.
func NewCategoryClient(client *httpclient.Client, logger *slog.Logger) *CategoryClient {
	return &CategoryClient{req: NewRequester(client, logger)}
}

// ListCategories fetches every category from GET /categories.
func (c *CategoryClient) ListCategories(ctx context.Context) ([]categorydomain.Category, error) {
	var dtos []category.CategoryDTO
	if err := c.req.Do(ctx, http.MethodGet, "/categories", nil, &dtos); err != nil {
		return nil, err
	}
	return category.ToDomainCategoryList(dtos), nil
}
