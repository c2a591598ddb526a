package report

import (
	"context"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	carrepo "github.com/markbaxman/WightCars-sub000/repository/car"
	reportrepo "github.com/markbaxman/WightCars-sub000/repository/report"
	userrepo "github.com/markbaxman/WightCars-sub000/repository/user"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

type ReportApp interface {
	CreateReport(ctx context.Context, reporterID uint64, req *model.CreateReportRequest) (*model.CreateReportResponse, error)
}

type ReportAppImpl struct {
	reportRepo reportrepo.ReportRepository
	carRepo    carrepo.CarRepository
	userRepo   userrepo.UserRepository
}

func NewReportApp(reportRepo reportrepo.ReportRepository, carRepo carrepo.CarRepository, userRepo userrepo.UserRepository) ReportApp {
	return &ReportAppImpl{
		reportRepo: reportRepo,
		carRepo:    carRepo,
		userRepo:   userRepo,
	}
}

func (s *ReportAppImpl) CreateReport(ctx context.Context, reporterID uint64, req *model.CreateReportRequest) (*model.CreateReportResponse, error) {
	if !constant.ValidReportTarget(req.TargetType) {
		return nil, errors.SetValidationError(errors.FieldError{Field: "target_type", Message: "must be car or user"})
	}

	exists, err := s.targetExists(ctx, req.TargetType, req.TargetID)
	if err != nil {
		logger.Error("[CreateReport] err target lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.ReportEntity{
		ReporterID: reporterID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		Details:    req.Details,
		Status:     constant.ReportStatusOpen,
	}

	entity, err = s.reportRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[CreateReport] err reportRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateReportResponse{
		ReportID: entity.ID,
		Status:   entity.Status,
	}, nil
}

func (s *ReportAppImpl) targetExists(ctx context.Context, targetType string, targetID uint64) (bool, error) {
	switch targetType {
	case constant.ReportTargetCar:
		car, err := s.carRepo.GetByID(ctx, targetID)
		if err != nil {
			return false, err
		}
		return car != nil, nil
	default:
		user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: targetID})
		if err != nil {
			return false, err
		}
		return user != nil, nil
	}
}
