package club

import "context"

type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	ListByCategory(ctx context.Context, category string) ([]Summary, error)
	Get(ctx context.Context, id uint) (*Club, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (Stats, error)
	Search(ctx context.Context, query string) ([]Summary, error)
}
