package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	adminlogrepo "github.com/markbaxman/WightCars-sub000/repository/adminlog"
	carrepo "github.com/markbaxman/WightCars-sub000/repository/car"
	reportrepo "github.com/markbaxman/WightCars-sub000/repository/report"
	settingrepo "github.com/markbaxman/WightCars-sub000/repository/setting"
	statsrepo "github.com/markbaxman/WightCars-sub000/repository/stats"
	txrepo "github.com/markbaxman/WightCars-sub000/repository/tx"
	userrepo "github.com/markbaxman/WightCars-sub000/repository/user"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AdminApp interface {
	Dashboard(ctx context.Context, adminID uint64) (*model.DashboardResponse, error)
	Growth(ctx context.Context, adminID uint64, days int) (*model.GrowthResponse, error)
	ModerateCar(ctx context.Context, adminID, carID uint64, status, ip string) error
	FeatureCar(ctx context.Context, adminID, carID uint64, featured bool, ip string) error
	DeleteCar(ctx context.Context, adminID, carID uint64, ip string) error
	SuspendUser(ctx context.Context, adminID, userID uint64, suspended bool, ip string) error
	ResolveReport(ctx context.Context, adminID, reportID uint64, status, ip string) error
	ListUsers(ctx context.Context, adminID uint64, search string, page, limit int) (*model.AdminUserListResponse, error)
	ListCarsByModeration(ctx context.Context, adminID uint64, status string, page, limit int) (*model.CarListResponse, error)
	ListReports(ctx context.Context, adminID uint64, status string, page, limit int) (*model.ReportListResponse, error)
	ListLogs(ctx context.Context, adminID uint64, page, limit int) (*model.AdminLogListResponse, error)
	ListSettings(ctx context.Context, adminID uint64) ([]model.SettingEntity, error)
	UpdateSetting(ctx context.Context, adminID uint64, key, value, ip string) error
}

type adminAppImpl struct {
	txRepo       txrepo.TxRepository
	userRepo     userrepo.UserRepository
	carRepo      carrepo.CarRepository
	reportRepo   reportrepo.ReportRepository
	adminlogRepo adminlogrepo.AdminLogRepository
	statsRepo    statsrepo.StatsRepository
	settingRepo  settingrepo.SettingRepository
}

func NewAdminApp(txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, carRepo carrepo.CarRepository, reportRepo reportrepo.ReportRepository, adminlogRepo adminlogrepo.AdminLogRepository, statsRepo statsrepo.StatsRepository, settingRepo settingrepo.SettingRepository) AdminApp {
	return &adminAppImpl{
		txRepo:       txRepo,
		userRepo:     userRepo,
		carRepo:      carRepo,
		reportRepo:   reportRepo,
		adminlogRepo: adminlogRepo,
		statsRepo:    statsRepo,
		settingRepo:  settingRepo,
	}
}

// Dashboard fans the sections out concurrently. A failed section logs
// and stays zeroed; the dashboard itself never fails.
func (s *adminAppImpl) Dashboard(ctx context.Context, adminID uint64) (*model.DashboardResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	resp := &model.DashboardResponse{
		TopMakes:        []model.MakeCount{},
		PriceHistogram:  []model.PriceBucket{},
		UsersByLocation: []model.LocationCount{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.statsRepo.Overview(gctx)
		if err != nil {
			logger.Error("[Dashboard] err statsRepo.Overview", zap.String("error", err.Error()))
			return nil
		}
		resp.Stats = *stats
		return nil
	})
	g.Go(func() error {
		makes, err := s.statsRepo.TopMakes(gctx, constant.DefaultTopMakes)
		if err != nil {
			logger.Error("[Dashboard] err statsRepo.TopMakes", zap.String("error", err.Error()))
			return nil
		}
		resp.TopMakes = makes
		return nil
	})
	g.Go(func() error {
		row, err := s.statsRepo.PriceHistogram(gctx)
		if err != nil {
			logger.Error("[Dashboard] err statsRepo.PriceHistogram", zap.String("error", err.Error()))
			return nil
		}
		resp.PriceHistogram = histogramBuckets(row)
		return nil
	})
	g.Go(func() error {
		locations, err := s.statsRepo.UsersByLocation(gctx, constant.DefaultTopRegions)
		if err != nil {
			logger.Error("[Dashboard] err statsRepo.UsersByLocation", zap.String("error", err.Error()))
			return nil
		}
		resp.UsersByLocation = locations
		return nil
	})
	_ = g.Wait()

	return resp, nil
}

func (s *adminAppImpl) Growth(ctx context.Context, adminID uint64, days int) (*model.GrowthResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = constant.DefaultGrowthDays
	}
	if days > constant.MaxGrowthDays {
		days = constant.MaxGrowthDays
	}

	resp := &model.GrowthResponse{
		Days:  days,
		Users: []model.DateCount{},
		Cars:  []model.DateCount{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.statsRepo.UserGrowth(gctx, days)
		if err != nil {
			logger.Error("[Growth] err statsRepo.UserGrowth", zap.String("error", err.Error()))
			return nil
		}
		resp.Users = users
		return nil
	})
	g.Go(func() error {
		cars, err := s.statsRepo.CarGrowth(gctx, days)
		if err != nil {
			logger.Error("[Growth] err statsRepo.CarGrowth", zap.String("error", err.Error()))
			return nil
		}
		resp.Cars = cars
		return nil
	})
	_ = g.Wait()

	return resp, nil
}

func (s *adminAppImpl) ModerateCar(ctx context.Context, adminID, carID uint64, status, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	if !constant.ValidModerationStatus(status) {
		return errors.SetValidationError(errors.FieldError{Field: "status", Message: "must be one of pending, approved, rejected, flagged"})
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[ModerateCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ModerateCar] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.carRepo.SetModerationTx(ctx, tx, carID, status); err != nil {
		logger.Error("[ModerateCar] err carRepo.SetModerationTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionModerateCar,
		TargetType: constant.TargetTypeCar,
		TargetID:   carID,
		Details:    fmt.Sprintf("moderation_status=%s (%s)", status, car.Title),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[ModerateCar] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ModerateCar] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) FeatureCar(ctx context.Context, adminID, carID uint64, featured bool, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[FeatureCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[FeatureCar] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.carRepo.SetFeaturedTx(ctx, tx, carID, featured); err != nil {
		logger.Error("[FeatureCar] err carRepo.SetFeaturedTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionFeatureCar,
		TargetType: constant.TargetTypeCar,
		TargetID:   carID,
		Details:    fmt.Sprintf("featured=%t (%s)", featured, car.Title),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[FeatureCar] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[FeatureCar] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) DeleteCar(ctx context.Context, adminID, carID uint64, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[DeleteCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteCar] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	deleted, err := s.carRepo.DeleteTx(ctx, tx, carID)
	if err != nil {
		logger.Error("[DeleteCar] err carRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionDeleteCar,
		TargetType: constant.TargetTypeCar,
		TargetID:   carID,
		Details:    fmt.Sprintf("deleted listing (%s)", car.Title),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[DeleteCar] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteCar] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) SuspendUser(ctx context.Context, adminID, userID uint64, suspended bool, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	target, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[SuspendUser] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if target == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if target.IsAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SuspendUser] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.userRepo.SetSuspendedTx(ctx, tx, userID, suspended); err != nil {
		logger.Error("[SuspendUser] err userRepo.SetSuspendedTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionSuspendUser,
		TargetType: constant.TargetTypeUser,
		TargetID:   userID,
		Details:    fmt.Sprintf("suspended=%t (%s)", suspended, target.Email),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[SuspendUser] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SuspendUser] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) ResolveReport(ctx context.Context, adminID, reportID uint64, status, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	if !constant.ValidReportResolution(status) {
		return errors.SetValidationError(errors.FieldError{Field: "status", Message: "must be resolved or dismissed"})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResolveReport] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	rep, err := s.reportRepo.GetByIDTx(ctx, tx, reportID)
	if err != nil {
		logger.Error("[ResolveReport] err reportRepo.GetByIDTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rep == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if rep.Status != constant.ReportStatusOpen {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.reportRepo.ResolveTx(ctx, tx, reportID, adminID, status); err != nil {
		logger.Error("[ResolveReport] err reportRepo.ResolveTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionResolveReport,
		TargetType: constant.TargetTypeReport,
		TargetID:   reportID,
		Details:    fmt.Sprintf("status=%s (%s %d)", status, rep.TargetType, rep.TargetID),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[ResolveReport] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResolveReport] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) ListUsers(ctx context.Context, adminID uint64, search string, page, limit int) (*model.AdminUserListResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	page, limit = clampWindow(page, limit)

	items, total, err := s.userRepo.List(ctx, search, page, limit)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminUserListResponse{
		Users:      items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

// ListCarsByModeration defaults to the pending queue.
func (s *adminAppImpl) ListCarsByModeration(ctx context.Context, adminID uint64, status string, page, limit int) (*model.CarListResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if status == "" {
		status = constant.ModerationPending
	}
	if !constant.ValidModerationStatus(status) {
		return nil, errors.SetValidationError(errors.FieldError{Field: "status", Message: "must be one of pending, approved, rejected, flagged"})
	}

	page, limit = clampWindow(page, limit)

	items, total, err := s.carRepo.ListByModeration(ctx, status, page, limit)
	if err != nil {
		logger.Error("[ListCarsByModeration] err carRepo.ListByModeration", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CarListResponse{
		Cars:       items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

// ListReports defaults to the open queue.
func (s *adminAppImpl) ListReports(ctx context.Context, adminID uint64, status string, page, limit int) (*model.ReportListResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if status == "" {
		status = constant.ReportStatusOpen
	}
	if status != constant.ReportStatusOpen && !constant.ValidReportResolution(status) {
		return nil, errors.SetValidationError(errors.FieldError{Field: "status", Message: "must be open, resolved or dismissed"})
	}

	page, limit = clampWindow(page, limit)

	items, total, err := s.reportRepo.List(ctx, status, page, limit)
	if err != nil {
		logger.Error("[ListReports] err reportRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ReportListResponse{
		Reports:    items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func (s *adminAppImpl) ListLogs(ctx context.Context, adminID uint64, page, limit int) (*model.AdminLogListResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	page, limit = clampWindow(page, limit)

	items, total, err := s.adminlogRepo.List(ctx, page, limit)
	if err != nil {
		logger.Error("[ListLogs] err adminlogRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminLogListResponse{
		Logs:       items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func (s *adminAppImpl) ListSettings(ctx context.Context, adminID uint64) ([]model.SettingEntity, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	items, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[ListSettings] err settingRepo.GetAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *adminAppImpl) UpdateSetting(ctx context.Context, adminID uint64, key, value, ip string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errors.SetValidationError(errors.FieldError{Field: "key", Message: "must not be blank"})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateSetting] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.settingRepo.UpsertTx(ctx, tx, key, value); err != nil {
		logger.Error("[UpdateSetting] err settingRepo.UpsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminlogRepo.InsertTx(ctx, tx, &model.AdminLogEntity{
		AdminID:    adminID,
		Action:     constant.AdminActionUpdateSetting,
		TargetType: constant.TargetTypeSetting,
		TargetID:   0,
		Details:    fmt.Sprintf("%s=%s", key, value),
		IPAddress:  ip,
	}); err != nil {
		logger.Error("[UpdateSetting] err adminlogRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateSetting] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *adminAppImpl) requireAdmin(ctx context.Context, adminID uint64) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: adminID})
	if err != nil {
		logger.Error("[requireAdmin] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || !user.IsAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

// histogramBuckets renders the single-row conditional sums as the fixed
// ordered bucket list.
func histogramBuckets(row *model.PriceHistogramRow) []model.PriceBucket {
	return []model.PriceBucket{
		{Label: "under £5k", Count: row.Under5k},
		{Label: "£5k-£10k", Count: row.To10k},
		{Label: "£10k-£20k", Count: row.To20k},
		{Label: "£20k-£50k", Count: row.To50k},
		{Label: "£50k+", Count: row.Over50k},
	}
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
