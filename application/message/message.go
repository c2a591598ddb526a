package message

import (
	"context"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	carrepo "github.com/markbaxman/WightCars-sub000/repository/car"
	messagerepo "github.com/markbaxman/WightCars-sub000/repository/message"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	"github.com/markbaxman/WightCars-sub000/utils/logger"
	"go.uber.org/zap"
)

type MessageApp interface {
	SendMessage(ctx context.Context, senderID, carID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error)
	Inbox(ctx context.Context, userID uint64, page, limit int) (*model.InboxResponse, error)
	Thread(ctx context.Context, carID, userID uint64) ([]model.MessageListItem, error)
	MarkRead(ctx context.Context, userID, messageID uint64) error
	UnreadCount(ctx context.Context, userID uint64) (*model.UnreadCountResponse, error)
}

type MessageAppImpl struct {
	messageRepo messagerepo.MessageRepository
	carRepo     carrepo.CarRepository
}

func NewMessageApp(messageRepo messagerepo.MessageRepository, carRepo carrepo.CarRepository) MessageApp {
	return &MessageAppImpl{
		messageRepo: messageRepo,
		carRepo:     carRepo,
	}
}

// SendMessage always addresses the listing owner; the sender only picks
// the car.
func (s *MessageAppImpl) SendMessage(ctx context.Context, senderID, carID uint64, req *model.SendMessageRequest) (*model.SendMessageResponse, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[SendMessage] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if car.UserID == senderID {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.MessageEntity{
		CarID:       carID,
		SenderID:    senderID,
		RecipientID: car.UserID,
		Content:     req.Content,
	}

	entity, err = s.messageRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[SendMessage] err messageRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SendMessageResponse{
		MessageID:   entity.ID,
		RecipientID: entity.RecipientID,
	}, nil
}

func (s *MessageAppImpl) Inbox(ctx context.Context, userID uint64, page, limit int) (*model.InboxResponse, error) {
	page, limit = clampWindow(page, limit)

	items, total, err := s.messageRepo.ListInbox(ctx, userID, page, limit)
	if err != nil {
		logger.Error("[Inbox] err messageRepo.ListInbox", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.InboxResponse{
		Messages:   items,
		Pagination: model.NewPagination(page, limit, total),
	}, nil
}

func (s *MessageAppImpl) Thread(ctx context.Context, carID, userID uint64) ([]model.MessageListItem, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[Thread] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.messageRepo.ListThread(ctx, carID, userID)
	if err != nil {
		logger.Error("[Thread] err messageRepo.ListThread", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// MarkRead is recipient-only; anyone else gets not-found rather than a
// hint the message exists. Re-marking a read message is a no-op.
func (s *MessageAppImpl) MarkRead(ctx context.Context, userID, messageID uint64) error {
	msg, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		logger.Error("[MarkRead] err messageRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if msg == nil || msg.RecipientID != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if msg.IsRead {
		return nil
	}

	if err := s.messageRepo.MarkRead(ctx, messageID); err != nil {
		logger.Error("[MarkRead] err messageRepo.MarkRead", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *MessageAppImpl) UnreadCount(ctx context.Context, userID uint64) (*model.UnreadCountResponse, error) {
	unread, err := s.messageRepo.UnreadCount(ctx, userID)
	if err != nil {
		logger.Error("[UnreadCount] err messageRepo.UnreadCount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.UnreadCountResponse{Unread: unread}, nil
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
