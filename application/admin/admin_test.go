package admin_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	appadmin "github.com/markbaxman/WightCars-sub000/application/admin"
	"github.com/markbaxman/WightCars-sub000/constant"
	adminlogmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/adminlog"
	carmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/car"
	reportmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/report"
	settingmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/setting"
	statsmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/stats"
	txmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/tx"
	usermocks "github.com/markbaxman/WightCars-sub000/mocks/repository/user"
	"github.com/markbaxman/WightCars-sub000/model"
	cerr "github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	userRepo     *usermocks.UserRepository
	carRepo      *carmocks.CarRepository
	reportRepo   *reportmocks.ReportRepository
	adminlogRepo *adminlogmocks.AdminLogRepository
	statsRepo    *statsmocks.StatsRepository
	settingRepo  *settingmocks.SettingRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:       txmocks.NewTxRepository(t),
		userRepo:     usermocks.NewUserRepository(t),
		carRepo:      carmocks.NewCarRepository(t),
		reportRepo:   reportmocks.NewReportRepository(t),
		adminlogRepo: adminlogmocks.NewAdminLogRepository(t),
		statsRepo:    statsmocks.NewStatsRepository(t),
		settingRepo:  settingmocks.NewSettingRepository(t),
	}
}

func newApp(f fields) appadmin.AdminApp {
	return appadmin.NewAdminApp(f.txRepo, f.userRepo, f.carRepo, f.reportRepo, f.adminlogRepo, f.statsRepo, f.settingRepo)
}

func expectAdmin(f fields, adminID uint64) {
	f.userRepo.
		On("Get", mock.Anything, &model.UserFilter{ID: adminID}).
		Return(&model.UserEntity{ID: adminID, IsAdmin: true}, nil).
		Once()
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestAdminApp_Dashboard(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		mockCall func(f fields)
		want     *model.DashboardResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: all sections populated",
			fields:  newFields(t),
			adminID: 9,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.statsRepo.
					On("Overview", mock.Anything).
					Return(&model.DashboardStats{TotalUsers: 120, ActiveCars: 80, OpenReports: 3}, nil).
					Once()

				f.statsRepo.
					On("TopMakes", mock.Anything, 10).
					Return([]model.MakeCount{{Make: "Ford", Count: 24, AvgPrice: 910000}}, nil).
					Once()

				f.statsRepo.
					On("PriceHistogram", mock.Anything).
					Return(&model.PriceHistogramRow{Under5k: 12, To10k: 30, To20k: 25, To50k: 10, Over50k: 3}, nil).
					Once()

				f.statsRepo.
					On("UsersByLocation", mock.Anything, 10).
					Return([]model.LocationCount{{Location: "Newport", Count: 41}}, nil).
					Once()
			},
			want: &model.DashboardResponse{
				Stats:    model.DashboardStats{TotalUsers: 120, ActiveCars: 80, OpenReports: 3},
				TopMakes: []model.MakeCount{{Make: "Ford", Count: 24, AvgPrice: 910000}},
				PriceHistogram: []model.PriceBucket{
					{Label: "under £5k", Count: 12},
					{Label: "£5k-£10k", Count: 30},
					{Label: "£10k-£20k", Count: 25},
					{Label: "£20k-£50k", Count: 10},
					{Label: "£50k+", Count: 3},
				},
				UsersByLocation: []model.LocationCount{{Location: "Newport", Count: 41}},
			},
			wantErr: false,
		},
		{
			name:    "success: failed section stays zeroed",
			fields:  newFields(t),
			adminID: 9,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.statsRepo.
					On("Overview", mock.Anything).
					Return(nil, errors.New("db error")).
					Once()

				f.statsRepo.
					On("TopMakes", mock.Anything, 10).
					Return([]model.MakeCount{{Make: "Ford", Count: 24, AvgPrice: 910000}}, nil).
					Once()

				f.statsRepo.
					On("PriceHistogram", mock.Anything).
					Return(&model.PriceHistogramRow{}, nil).
					Once()

				f.statsRepo.
					On("UsersByLocation", mock.Anything, 10).
					Return([]model.LocationCount{}, nil).
					Once()
			},
			want: &model.DashboardResponse{
				Stats:    model.DashboardStats{},
				TopMakes: []model.MakeCount{{Make: "Ford", Count: 24, AvgPrice: 910000}},
				PriceHistogram: []model.PriceBucket{
					{Label: "under £5k"},
					{Label: "£5k-£10k"},
					{Label: "£10k-£20k"},
					{Label: "£20k-£50k"},
					{Label: "£50k+"},
				},
				UsersByLocation: []model.LocationCount{},
			},
			wantErr: false,
		},
		{
			name:    "error: caller is not an admin",
			fields:  newFields(t),
			adminID: 7,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(&model.UserEntity{ID: 7}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			got, err := app.Dashboard(context.Background(), tt.adminID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dashboard() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Dashboard() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAdminApp_Growth(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		days     int
		mockCall func(f fields)
		want     *model.GrowthResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: explicit window",
			fields:  newFields(t),
			adminID: 9,
			days:    7,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.statsRepo.
					On("UserGrowth", mock.Anything, 7).
					Return([]model.DateCount{{Date: "2026-08-20", Count: 4}}, nil).
					Once()

				f.statsRepo.
					On("CarGrowth", mock.Anything, 7).
					Return([]model.DateCount{{Date: "2026-08-20", Count: 2}}, nil).
					Once()
			},
			want: &model.GrowthResponse{
				Days:  7,
				Users: []model.DateCount{{Date: "2026-08-20", Count: 4}},
				Cars:  []model.DateCount{{Date: "2026-08-20", Count: 2}},
			},
			wantErr: false,
		},
		{
			name:    "success: zero window defaults to 30 days",
			fields:  newFields(t),
			adminID: 9,
			days:    0,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.statsRepo.
					On("UserGrowth", mock.Anything, 30).
					Return([]model.DateCount{}, nil).
					Once()

				f.statsRepo.
					On("CarGrowth", mock.Anything, 30).
					Return([]model.DateCount{}, nil).
					Once()
			},
			want: &model.GrowthResponse{
				Days:  30,
				Users: []model.DateCount{},
				Cars:  []model.DateCount{},
			},
			wantErr: false,
		},
		{
			name:    "success: oversized window capped at a year",
			fields:  newFields(t),
			adminID: 9,
			days:    9999,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.statsRepo.
					On("UserGrowth", mock.Anything, 365).
					Return([]model.DateCount{}, nil).
					Once()

				f.statsRepo.
					On("CarGrowth", mock.Anything, 365).
					Return([]model.DateCount{}, nil).
					Once()
			},
			want: &model.GrowthResponse{
				Days:  365,
				Users: []model.DateCount{},
				Cars:  []model.DateCount{},
			},
			wantErr: false,
		},
		{
			name:    "error: caller is not an admin",
			fields:  newFields(t),
			adminID: 7,
			days:    30,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			got, err := app.Growth(context.Background(), tt.adminID, tt.days)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Growth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Growth() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAdminApp_ModerateCar(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		carID    uint64
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: approval writes the audit row in one tx",
			fields:  newFields(t),
			adminID: 9,
			carID:   10,
			status:  constant.ModerationApproved,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, Title: "2017 Mini Cooper S"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.carRepo.
					On("SetModerationTx", mock.Anything, tx, uint64(10), constant.ModerationApproved).
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionModerateCar,
						TargetType: constant.TargetTypeCar,
						TargetID:   10,
						Details:    "moderation_status=approved (2017 Mini Cooper S)",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:    "error: unknown moderation status",
			fields:  newFields(t),
			adminID: 9,
			carID:   10,
			status:  "vetoed",
			mockCall: func(f fields) {
				expectAdmin(f, 9)
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: car not found",
			fields:  newFields(t),
			adminID: 9,
			carID:   999,
			status:  constant.ModerationRejected,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: audit insert rolls the tx back",
			fields:  newFields(t),
			adminID: 9,
			carID:   10,
			status:  constant.ModerationFlagged,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, Title: "2017 Mini Cooper S"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.carRepo.
					On("SetModerationTx", mock.Anything, tx, uint64(10), constant.ModerationFlagged).
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, mock.AnythingOfType("*model.AdminLogEntity")).
					Return(errors.New("insert failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: caller is not an admin",
			fields:  newFields(t),
			adminID: 7,
			carID:   10,
			status:  constant.ModerationApproved,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(&model.UserEntity{ID: 7}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.ModerateCar(context.Background(), tt.adminID, tt.carID, tt.status, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ModerateCar() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_FeatureCar(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		carID    uint64
		featured bool
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: feature a listing",
			fields:   newFields(t),
			adminID:  9,
			carID:    10,
			featured: true,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, Title: "2017 Mini Cooper S"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.carRepo.
					On("SetFeaturedTx", mock.Anything, tx, uint64(10), true).
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionFeatureCar,
						TargetType: constant.TargetTypeCar,
						TargetID:   10,
						Details:    "featured=true (2017 Mini Cooper S)",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:     "error: car not found",
			fields:   newFields(t),
			adminID:  9,
			carID:    999,
			featured: true,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.FeatureCar(context.Background(), tt.adminID, tt.carID, tt.featured, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FeatureCar() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_DeleteCar(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		carID    uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: delete with audit row",
			fields:  newFields(t),
			adminID: 9,
			carID:   10,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, Title: "2017 Mini Cooper S"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.carRepo.
					On("DeleteTx", mock.Anything, tx, uint64(10)).
					Return(true, nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionDeleteCar,
						TargetType: constant.TargetTypeCar,
						TargetID:   10,
						Details:    "deleted listing (2017 Mini Cooper S)",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:    "error: row vanished between read and delete",
			fields:  newFields(t),
			adminID: 9,
			carID:   10,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, Title: "2017 Mini Cooper S"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.carRepo.
					On("DeleteTx", mock.Anything, tx, uint64(10)).
					Return(false, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.DeleteCar(context.Background(), tt.adminID, tt.carID, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteCar() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_SuspendUser(t *testing.T) {
	tests := []struct {
		name      string
		fields    fields
		adminID   uint64
		userID    uint64
		suspended bool
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "success: suspend a user",
			fields:    newFields(t),
			adminID:   9,
			userID:    3,
			suspended: true,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 3}).
					Return(&model.UserEntity{ID: 3, Email: "dave.h@example.net"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.userRepo.
					On("SetSuspendedTx", mock.Anything, tx, uint64(3), true).
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionSuspendUser,
						TargetType: constant.TargetTypeUser,
						TargetID:   3,
						Details:    "suspended=true (dave.h@example.net)",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:      "error: cannot suspend another admin",
			fields:    newFields(t),
			adminID:   9,
			userID:    2,
			suspended: true,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 2}).
					Return(&model.UserEntity{ID: 2, IsAdmin: true}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:      "error: target not found",
			fields:    newFields(t),
			adminID:   9,
			userID:    999,
			suspended: true,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 999}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.SuspendUser(context.Background(), tt.adminID, tt.userID, tt.suspended, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("SuspendUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_ResolveReport(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		adminID  uint64
		reportID uint64
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: resolve an open report",
			fields:   newFields(t),
			adminID:  9,
			reportID: 21,
			status:   constant.ReportStatusResolved,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.reportRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(21)).
					Return(&model.ReportEntity{
						ID:         21,
						TargetType: constant.ReportTargetCar,
						TargetID:   10,
						Status:     constant.ReportStatusOpen,
					}, nil).
					Once()

				f.reportRepo.
					On("ResolveTx", mock.Anything, tx, uint64(21), uint64(9), constant.ReportStatusResolved).
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionResolveReport,
						TargetType: constant.TargetTypeReport,
						TargetID:   21,
						Details:    "status=resolved (car 10)",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:     "error: report already settled",
			fields:   newFields(t),
			adminID:  9,
			reportID: 21,
			status:   constant.ReportStatusDismissed,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.reportRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(21)).
					Return(&model.ReportEntity{ID: 21, Status: constant.ReportStatusResolved}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:     "error: unknown resolution status",
			fields:   newFields(t),
			adminID:  9,
			reportID: 21,
			status:   "escalated",
			mockCall: func(f fields) {
				expectAdmin(f, 9)
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:     "error: report not found",
			fields:   newFields(t),
			adminID:  9,
			reportID: 999,
			status:   constant.ReportStatusResolved,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.reportRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.ResolveReport(context.Background(), tt.adminID, tt.reportID, tt.status, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveReport() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_ListUsers(t *testing.T) {
	f := newFields(t)
	expectAdmin(f, 9)

	f.userRepo.
		On("List", mock.Anything, "dave", 1, 50).
		Return([]model.AdminUserListItem{
			{ID: 3, Name: "Dave Herriott", Email: "dave.h@example.net", CarCount: 2},
		}, int64(1), nil).
		Once()

	app := newApp(f)

	got, err := app.ListUsers(context.Background(), 9, "dave", 0, 500)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}

	want := &model.AdminUserListResponse{
		Users: []model.AdminUserListItem{
			{ID: 3, Name: "Dave Herriott", Email: "dave.h@example.net", CarCount: 2},
		},
		Pagination: model.Pagination{Page: 1, Limit: 50, Total: 1, Pages: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListUsers() = %+v, want %+v", got, want)
	}
}

func TestAdminApp_ListCarsByModeration(t *testing.T) {
	tests := []struct {
		name       string
		fields     fields
		status     string
		mockCall   func(f fields)
		wantStatus string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:   "success: defaults to the pending queue",
			fields: newFields(t),
			status: "",
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("ListByModeration", mock.Anything, constant.ModerationPending, 1, 20).
					Return([]model.CarListItem{{ID: 10, Title: "2017 Mini Cooper S"}}, int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "success: explicit flagged queue",
			fields: newFields(t),
			status: constant.ModerationFlagged,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.carRepo.
					On("ListByModeration", mock.Anything, constant.ModerationFlagged, 1, 20).
					Return([]model.CarListItem{}, int64(0), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: unknown moderation status",
			fields: newFields(t),
			status: "vetoed",
			mockCall: func(f fields) {
				expectAdmin(f, 9)
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			_, err := app.ListCarsByModeration(context.Background(), 9, tt.status, 1, 20)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListCarsByModeration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_ListReports(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: defaults to the open queue",
			fields: newFields(t),
			status: "",
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.reportRepo.
					On("List", mock.Anything, constant.ReportStatusOpen, 1, 20).
					Return([]model.ReportListItem{{ID: 21, Reason: "scam", Status: constant.ReportStatusOpen}}, int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "success: explicit resolved queue",
			fields: newFields(t),
			status: constant.ReportStatusResolved,
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				f.reportRepo.
					On("List", mock.Anything, constant.ReportStatusResolved, 1, 20).
					Return([]model.ReportListItem{}, int64(0), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: unknown report status",
			fields: newFields(t),
			status: "pending",
			mockCall: func(f fields) {
				expectAdmin(f, 9)
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			_, err := app.ListReports(context.Background(), 9, tt.status, 1, 20)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListReports() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_ListLogs(t *testing.T) {
	f := newFields(t)
	expectAdmin(f, 9)

	f.adminlogRepo.
		On("List", mock.Anything, 1, 20).
		Return([]model.AdminLogEntity{
			{ID: 1, AdminID: 9, Action: constant.AdminActionModerateCar, TargetType: constant.TargetTypeCar, TargetID: 10},
		}, int64(1), nil).
		Once()

	app := newApp(f)

	got, err := app.ListLogs(context.Background(), 9, 0, 0)
	if err != nil {
		t.Fatalf("ListLogs() error = %v", err)
	}
	if len(got.Logs) != 1 || got.Logs[0].Action != constant.AdminActionModerateCar {
		t.Fatalf("ListLogs() = %+v, want one car.moderate row", got)
	}
}

func TestAdminApp_ListSettings(t *testing.T) {
	f := newFields(t)
	expectAdmin(f, 9)

	f.settingRepo.
		On("GetAll", mock.Anything).
		Return([]model.SettingEntity{
			{Key: "featured_limit", Value: "6"},
			{Key: "maintenance_mode", Value: "off"},
		}, nil).
		Once()

	app := newApp(f)

	got, err := app.ListSettings(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListSettings() error = %v", err)
	}
	if len(got) != 2 || got[0].Key != "featured_limit" {
		t.Fatalf("ListSettings() = %+v, want two rows", got)
	}
}

func TestAdminApp_UpdateSetting(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		key      string
		value    string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: upsert with audit row",
			fields: newFields(t),
			key:    "featured_limit",
			value:  "8",
			mockCall: func(f fields) {
				expectAdmin(f, 9)

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.settingRepo.
					On("UpsertTx", mock.Anything, tx, "featured_limit", "8").
					Return(nil).
					Once()

				f.adminlogRepo.
					On("InsertTx", mock.Anything, tx, &model.AdminLogEntity{
						AdminID:    9,
						Action:     constant.AdminActionUpdateSetting,
						TargetType: constant.TargetTypeSetting,
						TargetID:   0,
						Details:    "featured_limit=8",
						IPAddress:  "203.0.113.9",
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: blank key",
			fields: newFields(t),
			key:    "   ",
			value:  "8",
			mockCall: func(f fields) {
				expectAdmin(f, 9)
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields)

			err := app.UpdateSetting(context.Background(), 9, tt.key, tt.value, "203.0.113.9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateSetting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
