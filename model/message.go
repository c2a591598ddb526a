package model

import "time"

// MessageEntity represents the messages table entity. The recipient is
// always the listing owner; that invariant is enforced when the message is
// created, not by a database constraint.
type MessageEntity struct {
	ID          uint64    `db:"id" json:"id"`
	CarID       uint64    `db:"car_id" json:"car_id"`
	SenderID    uint64    `db:"sender_id" json:"sender_id"`
	RecipientID uint64    `db:"recipient_id" json:"recipient_id"`
	Content     string    `db:"content" json:"content"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MessageListItem is a message joined with display fields for the inbox
// and thread views.
type MessageListItem struct {
	ID          uint64    `db:"id" json:"id"`
	CarID       uint64    `db:"car_id" json:"car_id"`
	CarTitle    string    `db:"car_title" json:"car_title"`
	SenderID    uint64    `db:"sender_id" json:"sender_id"`
	SenderName  string    `db:"sender_name" json:"sender_name"`
	RecipientID uint64    `db:"recipient_id" json:"recipient_id"`
	Content     string    `db:"content" json:"content"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type SendMessageResponse struct {
	MessageID   uint64 `json:"message_id"`
	RecipientID uint64 `json:"recipient_id"`
}

type InboxResponse struct {
	Messages   []MessageListItem `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
