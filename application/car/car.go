package car

import (
	"context"
	"strings"
	"time"

	"github.com/markbaxman/WightCars-sub000/cmd/config"
	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	carrepo "github.com/markbaxman/WightCars-sub000/repository/car"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

type CarApp interface {
	List(ctx context.Context, filter *model.CarFilter) (*model.CarListResponse, error)
	GetCar(ctx context.Context, id uint64) (*model.CarDetail, error)
	CreateCar(ctx context.Context, userID uint64, req *model.CarCreateRequest) (*model.CarEntity, error)
	UpdateCar(ctx context.Context, userID, id uint64, req *model.CarUpdateRequest) (*model.CarEntity, error)
	UpdateStatus(ctx context.Context, userID, id uint64, status string) error
	DeleteCar(ctx context.Context, userID, id uint64) error
	MyCars(ctx context.Context, userID uint64) ([]model.CarEntity, error)
}

type CarAppImpl struct {
	config  *config.Config
	carRepo carrepo.CarRepository
}

func NewCarApp(config *config.Config, carRepo carrepo.CarRepository) CarApp {
	return &CarAppImpl{
		config:  config,
		carRepo: carRepo,
	}
}

func (s *CarAppImpl) List(ctx context.Context, filter *model.CarFilter) (*model.CarListResponse, error) {
	page, limit := clampWindow(filter.Page, filter.Limit)
	filter.Page, filter.Limit = page, limit

	items, total, err := s.carRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err carRepo.List", zap.String("error", err.Error()))
		if s.config.Fallback.Enabled {
			logger.Warn("[List] serving fallback dataset")
			items, total = fallbackList(filter)
			return &model.CarListResponse{
				Cars:       items,
				Pagination: model.NewPagination(page, limit, total),
			}, nil
		}
		return nil, errors.SetCustomError(constant.ErrStoreUnavailable)
	}

	return &model.CarListResponse{
		Cars:       items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func (s *CarAppImpl) GetCar(ctx context.Context, id uint64) (*model.CarDetail, error) {
	// The increment runs first so a found row always counts the view;
	// the returned detail then carries the post-increment total.
	found, err := s.carRepo.IncrementViews(ctx, id)
	if err != nil {
		logger.Error("[GetCar] err carRepo.IncrementViews", zap.String("error", err.Error()))
		return s.fallbackOrUnavailable(id)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	detail, err := s.carRepo.GetDetail(ctx, id)
	if err != nil {
		logger.Error("[GetCar] err carRepo.GetDetail", zap.String("error", err.Error()))
		return s.fallbackOrUnavailable(id)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return detail, nil
}

func (s *CarAppImpl) fallbackOrUnavailable(id uint64) (*model.CarDetail, error) {
	if s.config.Fallback.Enabled {
		logger.Warn("[GetCar] serving fallback dataset")
		if detail := fallbackDetail(id); detail != nil {
			return detail, nil
		}
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return nil, errors.SetCustomError(constant.ErrStoreUnavailable)
}

func (s *CarAppImpl) CreateCar(ctx context.Context, userID uint64, req *model.CarCreateRequest) (*model.CarEntity, error) {
	fields := validateListing(req.Title, req.Make, req.Model, req.Location, req.Year, req.Price)
	if req.FeaturedImage != "" && !containsImage(req.Images, req.FeaturedImage) {
		fields = append(fields, errors.FieldError{Field: "featured_image", Message: "must be one of images"})
	}
	if len(fields) > 0 {
		return nil, errors.SetValidationError(fields...)
	}

	entity := &model.CarEntity{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Make:             req.Make,
		Model:            req.Model,
		Year:             req.Year,
		Mileage:          req.Mileage,
		Price:            req.Price,
		FuelType:         req.FuelType,
		Transmission:     req.Transmission,
		BodyType:         req.BodyType,
		Location:         req.Location,
		Status:           constant.CarStatusActive,
		ModerationStatus: constant.ModerationPending,
		Features:         req.Features,
		Images:           req.Images,
		FeaturedImage:    req.FeaturedImage,
	}

	entity, err := s.carRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[CreateCar] err carRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return entity, nil
}

func (s *CarAppImpl) UpdateCar(ctx context.Context, userID, id uint64, req *model.CarUpdateRequest) (*model.CarEntity, error) {
	if req.Empty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if entity.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	if fields := validatePatch(entity, req); len(fields) > 0 {
		return nil, errors.SetValidationError(fields...)
	}

	if err := s.carRepo.Update(ctx, id, req); err != nil {
		logger.Error("[UpdateCar] err carRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity, err = s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCar] err carRepo.GetByID reload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *CarAppImpl) UpdateStatus(ctx context.Context, userID, id uint64, status string) error {
	if !constant.ValidCarStatus(status) {
		return errors.SetValidationError(errors.FieldError{Field: "status", Message: "must be one of active, sold, withdrawn, pending"})
	}

	entity, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateStatus] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if entity.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.carRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("[UpdateStatus] err carRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CarAppImpl) DeleteCar(ctx context.Context, userID, id uint64) error {
	entity, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if entity.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCar] err carRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CarAppImpl) MyCars(ctx context.Context, userID uint64) ([]model.CarEntity, error) {
	items, err := s.carRepo.ListByOwner(ctx, userID)
	if err != nil {
		logger.Error("[MyCars] err carRepo.ListByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// validateListing checks the domain rules shared by create and patch:
// non-blank identity fields, year within [1900, next year], price at
// least one penny.
func validateListing(title, mk, mdl, location string, year int, price int64) []errors.FieldError {
	fields := make([]errors.FieldError, 0, 4)

	if strings.TrimSpace(title) == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "must not be blank"})
	}
	if strings.TrimSpace(mk) == "" {
		fields = append(fields, errors.FieldError{Field: "make", Message: "must not be blank"})
	}
	if strings.TrimSpace(mdl) == "" {
		fields = append(fields, errors.FieldError{Field: "model", Message: "must not be blank"})
	}
	if strings.TrimSpace(location) == "" {
		fields = append(fields, errors.FieldError{Field: "location", Message: "must not be blank"})
	}
	if maxYear := time.Now().Year() + 1; year < constant.MinCarYear || year > maxYear {
		fields = append(fields, errors.FieldError{Field: "year", Message: "out of range"})
	}
	if price < 1 {
		fields = append(fields, errors.FieldError{Field: "price", Message: "must be at least 1 penny"})
	}

	return fields
}

func validatePatch(entity *model.CarEntity, req *model.CarUpdateRequest) []errors.FieldError {
	title := entity.Title
	if req.Title != nil {
		title = *req.Title
	}
	mk := entity.Make
	if req.Make != nil {
		mk = *req.Make
	}
	mdl := entity.Model
	if req.Model != nil {
		mdl = *req.Model
	}
	location := entity.Location
	if req.Location != nil {
		location = *req.Location
	}
	year := entity.Year
	if req.Year != nil {
		year = *req.Year
	}
	price := entity.Price
	if req.Price != nil {
		price = *req.Price
	}

	fields := validateListing(title, mk, mdl, location, year, price)

	if req.Mileage != nil && *req.Mileage < 0 {
		fields = append(fields, errors.FieldError{Field: "mileage", Message: "must not be negative"})
	}

	// Membership is checked against the images as they will be after the
	// patch is applied.
	images := entity.Images
	if req.Images != nil {
		images = *req.Images
	}
	featured := entity.FeaturedImage
	if req.FeaturedImage != nil {
		featured = *req.FeaturedImage
	}
	if featured != "" && !containsImage(images, featured) {
		fields = append(fields, errors.FieldError{Field: "featured_image", Message: "must be one of images"})
	}

	return fields
}

func containsImage(images model.StringList, image string) bool {
	for _, img := range images {
		if img == image {
			return true
		}
	}
	return false
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
