package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Totarae/shortener-ops/internal/database"
	"github.com/Totarae/shortener-ops/internal/model"
	"github.com/Totarae/shortener-ops/internal/storage"
)

// URLRepository хранит пары в PostgreSQL.
type URLRepository struct {
	DB *database.DB
}

// NewURLRepository создаёт новый экземпляр URLRepository.
func NewURLRepository(db *database.DB) *URLRepository {
	return &URLRepository{DB: db}
}

// SaveMapping сохраняет пару. Повторный short перезаписывает long,
// как и в памяти узла.
func (r *URLRepository) SaveMapping(ctx context.Context, m model.Mapping) error {
	query := `INSERT INTO mappings (short, long) VALUES ($1, $2)
              ON CONFLICT (short) DO UPDATE SET long = EXCLUDED.long`

	if _, err := r.DB.Pool.Exec(ctx, query, m.Short, m.Long); err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetMapping извлекает пару по короткому токену.
func (r *URLRepository) GetMapping(ctx context.Context, short string) (*model.URLObject, error) {
	query := `SELECT id, short, long, created FROM mappings WHERE short = $1`
	obj := &model.URLObject{}
	err := r.DB.Pool.QueryRow(ctx, query, short).Scan(&obj.ID, &obj.Short, &obj.Long, &obj.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return obj, nil
}

// Ping проверяет доступность базы данных.
func (r *URLRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}
