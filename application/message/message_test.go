package message_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appmessage "github.com/markbaxman/WightCars-sub000/application/message"
	"github.com/markbaxman/WightCars-sub000/constant"
	carmocks "github.com/markbaxman/WightCars-sub000/mocks/repository/car"
	messagemocks "github.com/markbaxman/WightCars-sub000/mocks/repository/message"
	"github.com/markbaxman/WightCars-sub000/model"
	cerr "github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestMessageApp_SendMessage(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		carRepo     *carmocks.CarRepository
	}
	type args struct {
		ctx      context.Context
		senderID uint64
		carID    uint64
		req      *model.SendMessageRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.SendMessageResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: message addressed to the listing owner",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				senderID: 7,
				carID:    10,
				req:      &model.SendMessageRequest{Content: "Is the Mini still available?"},
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				f.messageRepo.
					On("Insert", mock.Anything, &model.MessageEntity{
						CarID:       10,
						SenderID:    7,
						RecipientID: 3,
						Content:     "Is the Mini still available?",
					}).
					Return(&model.MessageEntity{
						ID:          55,
						CarID:       10,
						SenderID:    7,
						RecipientID: 3,
						Content:     "Is the Mini still available?",
					}, nil).
					Once()
			},
			want: &model.SendMessageResponse{
				MessageID:   55,
				RecipientID: 3,
			},
			wantErr: false,
		},
		{
			name: "error: owner cannot message own listing",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				senderID: 3,
				carID:    10,
				req:      &model.SendMessageRequest{Content: "Nice car, me"},
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: car not found",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				senderID: 7,
				carID:    999,
				req:      &model.SendMessageRequest{Content: "Hello"},
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
			name: "error: repository Insert returns error",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				senderID: 7,
				carID:    10,
				req:      &model.SendMessageRequest{Content: "Hello"},
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				f.messageRepo.
					On("Insert", mock.Anything, mock.AnythingOfType("*model.MessageEntity")).
					Return(nil, errors.New("insert failed")).
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.carRepo)

			got, err := app.SendMessage(tt.args.ctx, tt.args.senderID, tt.args.carID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SendMessage() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("SendMessage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMessageApp_Inbox(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		carRepo     *carmocks.CarRepository
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
		want     *model.InboxResponse
		wantErr  bool
	}{
		{
			name: "success: received messages with pagination",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 3,
				page:   1,
				limit:  10,
			},
			mockCall: func(f fields) {
				items := []model.MessageListItem{
					{ID: 55, CarID: 10, SenderID: 7, Content: "Is the Mini still available?"},
				}
				f.messageRepo.
					On("ListInbox", mock.Anything, uint64(3), 1, 10).
					Return(items, int64(1), nil).
					Once()
			},
			want: &model.InboxResponse{
				Messages: []model.MessageListItem{
					{ID: 55, CarID: 10, SenderID: 7, Content: "Is the Mini still available?"},
				},
				Pagination: model.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
			},
			wantErr: false,
		},
		{
			name: "success: window defaults applied when zero",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 3,
				page:   0,
				limit:  0,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("ListInbox", mock.Anything, uint64(3), 1, 20).
					Return([]model.MessageListItem{}, int64(0), nil).
					Once()
			},
			want: &model.InboxResponse{
				Messages:   []model.MessageListItem{},
				Pagination: model.Pagination{Page: 1, Limit: 20, Total: 0, Pages: 0},
			},
			wantErr: false,
		},
		{
			name: "error: repository ListInbox returns error",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 3,
				page:   1,
				limit:  10,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("ListInbox", mock.Anything, uint64(3), 1, 10).
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.carRepo)

			got, err := app.Inbox(tt.args.ctx, tt.args.userID, tt.args.page, tt.args.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Inbox() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Inbox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMessageApp_Thread(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		carRepo     *carmocks.CarRepository
	}
	type args struct {
		ctx    context.Context
		carID  uint64
		userID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     []model.MessageListItem
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: both directions of the conversation",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				carID:  10,
				userID: 7,
			},
			mockCall: func(f fields) {
				f.carRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.CarEntity{ID: 10, UserID: 3}, nil).
					Once()

				items := []model.MessageListItem{
					{ID: 55, CarID: 10, SenderID: 7, Content: "Is the Mini still available?"},
					{ID: 56, CarID: 10, SenderID: 3, Content: "It is, viewings this weekend."},
				}
				f.messageRepo.
					On("ListThread", mock.Anything, uint64(10), uint64(7)).
					Return(items, nil).
					Once()
			},
			want: []model.MessageListItem{
				{ID: 55, CarID: 10, SenderID: 7, Content: "Is the Mini still available?"},
				{ID: 56, CarID: 10, SenderID: 3, Content: "It is, viewings this weekend."},
			},
			wantErr: false,
		},
		{
			name: "error: car not found",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				carID:  999,
				userID: 7,
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
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.carRepo)

			got, err := app.Thread(tt.args.ctx, tt.args.carID, tt.args.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Thread() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("Thread() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMessageApp_MarkRead(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		carRepo     *carmocks.CarRepository
	}
	type args struct {
		ctx       context.Context
		userID    uint64
		messageID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: recipient marks message read",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    3,
				messageID: 55,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("GetByID", mock.Anything, uint64(55)).
					Return(&model.MessageEntity{ID: 55, RecipientID: 3, IsRead: false}, nil).
					Once()

				f.messageRepo.
					On("MarkRead", mock.Anything, uint64(55)).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: marking an already-read message is a no-op",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    3,
				messageID: 55,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("GetByID", mock.Anything, uint64(55)).
					Return(&model.MessageEntity{ID: 55, RecipientID: 3, IsRead: true}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: sender cannot mark recipient's copy",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    7,
				messageID: 55,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("GetByID", mock.Anything, uint64(55)).
					Return(&model.MessageEntity{ID: 55, RecipientID: 3, IsRead: false}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: message not found",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				userID:    3,
				messageID: 999,
			},
			mockCall: func(f fields) {
				f.messageRepo.
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.carRepo)

			err := app.MarkRead(tt.args.ctx, tt.args.userID, tt.args.messageID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkRead() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestMessageApp_UnreadCount(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		carRepo     *carmocks.CarRepository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		mockCall func(f fields)
		want     *model.UnreadCountResponse
		wantErr  bool
	}{
		{
			name: "success: unread total",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			userID: 3,
			mockCall: func(f fields) {
				f.messageRepo.
					On("UnreadCount", mock.Anything, uint64(3)).
					Return(int64(4), nil).
					Once()
			},
			want:    &model.UnreadCountResponse{Unread: 4},
			wantErr: false,
		},
		{
			name: "error: repository UnreadCount returns error",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				carRepo:     carmocks.NewCarRepository(t),
			},
			userID: 3,
			mockCall: func(f fields) {
				f.messageRepo.
					On("UnreadCount", mock.Anything, uint64(3)).
					Return(int64(0), errors.New("db error")).
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.carRepo)

			got, err := app.UnreadCount(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnreadCount() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UnreadCount() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
