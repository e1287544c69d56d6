package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/config"
	"github.com/Totarae/shortener-ops/internal/model"
	"github.com/Totarae/shortener-ops/internal/storage"
)

//go:generate mockgen -source=mappings.go -destination=mocks/repository_mock.go -package=mocks

// ErrEmptyParam не передан short или long.
var ErrEmptyParam = errors.New("short and long must not be empty")

// Repository хранилище узла в режиме database.
type Repository interface {
	SaveMapping(ctx context.Context, m model.Mapping) error
	GetMapping(ctx context.Context, short string) (*model.URLObject, error)
	Ping(ctx context.Context) error
}

// MappingService логика узла: запись и чтение пар в зависимости от режима хранения.
type MappingService struct {
	Repo   Repository
	Store  storage.Storage
	Logger *zap.Logger
	Mode   string
}

func NewMappingService(repo Repository, store storage.Storage, logger *zap.Logger, mode string) *MappingService {
	return &MappingService{
		Repo:   repo,
		Store:  store,
		Logger: logger,
		Mode:   mode,
	}
}

func (s *MappingService) Set(ctx context.Context, short, long string) error {
	if short == "" || long == "" {
		return ErrEmptyParam
	}

	if s.Mode == config.StorageDatabase {
		return s.Repo.SaveMapping(ctx, model.Mapping{Short: short, Long: long})
	}
	return s.Store.Save(short, long)
}

// Resolve возвращает storage.ErrNotFound для неизвестного токена.
func (s *MappingService) Resolve(ctx context.Context, short string) (string, error) {
	if short == "" {
		return "", ErrEmptyParam
	}

	if s.Mode == config.StorageDatabase {
		obj, err := s.Repo.GetMapping(ctx, short)
		if err != nil {
			return "", err
		}
		return obj.Long, nil
	}

	long, ok := s.Store.Get(short)
	if !ok {
		return "", storage.ErrNotFound
	}
	return long, nil
}

func (s *MappingService) Ping(ctx context.Context) error {
	if s.Mode != config.StorageDatabase {
		return nil // Ping актуален только для database
	}
	return s.Repo.Ping(ctx)
}
