package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
)

type counterRepository struct {
	db *database.DB
}

func NewCounterRepository(db *database.DB) user.CounterRepository {
	return &counterRepository{db: db}
}

// NextSequence implements user.CounterRepository. The upsert-increment is
// a single statement, so concurrent callers serialize on the row lock and
// each receive a distinct value.
func (c *counterRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO counters (name, seq)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`

	var seq int64
	if err := q.QueryRow(ctx, query, name).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}

	return seq, nil
}
