package kb

import "context"

// Repository defines the interface for knowledge base article reads.
type Repository interface {
	List(ctx context.Context) ([]*Article, error)
	GetByID(ctx context.Context, id uint) (*Article, error)
}
