package dto

import "time"

type CreateBookingRequest struct {
	ItemID uint      `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *uint  `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type ItemRequestDescription struct {
	Description string `json:"description"`
}
