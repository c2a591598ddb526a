package favorite

import (
	"context"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	carrepo "github.com/markbaxman/WightCars-sub000/repository/car"
	favoriterepo "github.com/markbaxman/WightCars-sub000/repository/favorite"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

type FavoriteApp interface {
	Toggle(ctx context.Context, userID, carID uint64) (*model.ToggleFavoriteResponse, error)
	ListFavorites(ctx context.Context, userID uint64, page, limit int) (*model.FavoriteListResponse, error)
}

type FavoriteAppImpl struct {
	favoriteRepo favoriterepo.FavoriteRepository
	carRepo      carrepo.CarRepository
}

func NewFavoriteApp(favoriteRepo favoriterepo.FavoriteRepository, carRepo carrepo.CarRepository) FavoriteApp {
	return &FavoriteAppImpl{
		favoriteRepo: favoriteRepo,
		carRepo:      carRepo,
	}
}

// Toggle tries the delete first: a removed row means the car was saved
// and is now unsaved. Otherwise the insert runs under the unique key, so
// two concurrent saves collapse into one row.
func (s *FavoriteAppImpl) Toggle(ctx context.Context, userID, carID uint64) (*model.ToggleFavoriteResponse, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[Toggle] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	deleted, err := s.favoriteRepo.Delete(ctx, userID, carID)
	if err != nil {
		logger.Error("[Toggle] err favoriteRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if deleted {
		return &model.ToggleFavoriteResponse{Saved: false}, nil
	}

	if err := s.favoriteRepo.Insert(ctx, userID, carID); err != nil {
		logger.Error("[Toggle] err favoriteRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ToggleFavoriteResponse{Saved: true}, nil
}

func (s *FavoriteAppImpl) ListFavorites(ctx context.Context, userID uint64, page, limit int) (*model.FavoriteListResponse, error) {
	page, limit = clampWindow(page, limit)

	items, total, err := s.favoriteRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		logger.Error("[ListFavorites] err favoriteRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.FavoriteListResponse{
		Cars:       items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func clampWindow(page, limit int) (int, int) {
	if limit <= 0 {
		limit = constant.DefaultPageSize
	}
	if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return page, limit
}
