package favorite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appfavorite "github.com/markbaxman/WightCars-sub000/application/favorite"
	"github.com/markbaxman/WightCars-sub000/constant"
	carmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/car"
	favoritemocks "github.com/markbaxman/WightCars-sub000/mocks/repository/favorite"
	"github.com/markbaxman/WightCars-sub000/model"
	cerr "github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteApp_Toggle(t *testing.T) {
	type fields struct {
		favoriteRepo *favoritemocks.FavoriteRepository
		carRepo      *carmocks.CarRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		carID  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ToggleFavoriteResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first toggle saves",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				carID:  10,
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				f.favoriteRepo.
					On("Delete", mock.Anything, uint64(7), uint64(10)).
					Return(false, nil).
					Once()

				f.favoriteRepo.
					On("Insert", mock.Anything, uint64(7), uint64(10)).
					Return(nil).
					Once()
			},
			want:    &model.ToggleFavoriteResponse{Saved: true},
			wantErr: false,
		},
		{
			name: "success: toggle on a saved car unsaves",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				carID:  10,
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				f.favoriteRepo.
					On("Delete", mock.Anything, uint64(7), uint64(10)).
					Return(true, nil).
					Once()
			},
			want:    &model.ToggleFavoriteResponse{Saved: false},
			wantErr: false,
		},
		{
			name: "error: car not found",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				carID:  999,
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository Delete returns error",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				carID:  10,
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				f.favoriteRepo.
					On("Delete", mock.Anything, uint64(7), uint64(10)).
					Return(false, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appfavorite.NewFavoriteApp(tt.fields.favoriteRepo, tt.fields.carRepo)

			got, err := app.Toggle(tt.args.ctx, tt.args.userID, tt.args.carID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Toggle() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Toggle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Two toggles in a row must land back where they started.
func TestFavoriteApp_ToggleTwice(t *testing.T) {
	favoriteRepo := favoritemocks.NewFavoriteRepository(t)
	carRepo := carmocks.NewCarRepository(t)

	carRepo.
		On("GetByID", mock.Anything, uint64(10)).
		Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
		Times(2)

	favoriteRepo.
		On("Delete", mock.Anything, uint64(7), uint64(10)).
		Return(false, nil).
		Once()
	favoriteRepo.
		On("Insert", mock.Anything, uint64(7), uint64(10)).
		Return(nil).
		Once()
	favoriteRepo.
		On("Delete", mock.Anything, uint64(7), uint64(10)).
		Return(true, nil).
		Once()

	app := appfavorite.NewFavoriteApp(favoriteRepo, carRepo)

	first, err := app.Toggle(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("first Toggle() error = %v", err)
	}
	if !first.Saved {
		t.Fatalf("first Toggle() saved = %t, want true", first.Saved)
	}

	second, err := app.Toggle(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("second Toggle() error = %v", err)
	}
	if second.Saved {
		t.Fatalf("second Toggle() saved = %t, want false", second.Saved)
	}
}

func TestFavoriteApp_ListFavorites(t *testing.T) {
	type fields struct {
		favoriteRepo *favoritemocks.FavoriteRepository
		carRepo      *carmocks.CarRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		page   int
		limit  int
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.FavoriteListResponse
		wantErr  bool
	}{
		{
			name: "success: saved cars with pagination",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				page:   1,
				limit:  10,
			},
			mockCall: func(f fields) {
				items := []model.CarListItem{
					{ID: 10, Title: "2017 Mini Cooper S", Price: 1295000},
				}
				f.favoriteRepo.
					On("ListByUser", mock.Anything, uint64(7), 1, 10).
					Return(items, int64(1), nil).
					Once()
			},
			want: &model.FavoriteListResponse{
				Cars: []model.CarListItem{
					{ID: 10, Title: "2017 Mini Cooper S", Price: 1295000},
				},
				Pagination: model.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
			},
			wantErr: false,
		},
		{
			name: "success: oversized limit capped",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				page:   0,
				limit:  500,
			},
			mockCall: func(f fields) {
				f.favoriteRepo.
					On("ListByUser", mock.Anything, uint64(7), 1, 50).
					Return([]model.CarListItem{}, int64(0), nil).
					Once()
			},
			want: &model.FavoriteListResponse{
				Cars:       []model.CarListItem{},
				Pagination: model.Pagination{Page: 1, Limit: 50, Total: 0, Pages: 0},
			},
			wantErr: false,
		},
		{
			name: "error: repository ListByUser returns error",
			fields: fields{
				favoriteRepo: favoritemocks.NewFavoriteRepository(t),
				carRepo:      carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				page:   1,
				limit:  10,
			},
			mockCall: func(f fields) {
				f.favoriteRepo.
					On("ListByUser", mock.Anything, uint64(7), 1, 10).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appfavorite.NewFavoriteApp(tt.fields.favoriteRepo, tt.fields.carRepo)

			got, err := app.ListFavorites(tt.args.ctx, tt.args.userID, tt.args.page, tt.args.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListFavorites() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListFavorites() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
