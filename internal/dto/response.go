package dto

import (
	"time"

	"gearshare/internal/models"
	"gearshare/internal/service"
)

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Item   *BookingItem         `json:"item,omitempty"`
	Booker *BookingUser         `json:"booker,omitempty"`
}

type BookingItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BookingUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ShortBookingResponse annotates item views with just enough of a booking
// to render "last used / next booked".
type ShortBookingResponse struct {
	ID       uint      `json:"id"`
	BookerID uint      `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *uint  `json:"requestId,omitempty"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *ShortBookingResponse `json:"lastBooking"`
	NextBooking *ShortBookingResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

type RequestResponse struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.StartDate,
		End:    b.EndDate,
		Status: b.Status,
	}
	if b.Item != nil {
		resp.Item = &BookingItem{ID: b.Item.ID, Name: b.Item.Name, Description: b.Item.Description}
	}
	if b.Booker != nil {
		resp.Booker = &BookingUser{ID: b.Booker.ID, Name: b.Booker.Name}
	}
	return resp
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.IsAvailable(),
		RequestID:   i.RequestID,
	}
}

func ToCommentResponse(c service.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:         c.Comment.ID,
		Text:       c.Comment.Text,
		AuthorName: c.AuthorName,
		Created:    c.Comment.Created,
	}
}

func ToItemDetailResponse(d *service.ItemDetails) ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: ToItemResponse(&d.Item),
		LastBooking:  toShortBooking(d.LastBooking),
		NextBooking:  toShortBooking(d.NextBooking),
		Comments:     make([]CommentResponse, 0, len(d.Comments)),
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(c))
	}
	return resp
}

func ToRequestResponse(d *service.RequestDetails) RequestResponse {
	resp := RequestResponse{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.Created,
		Items:       make([]ItemResponse, 0, len(d.Items)),
	}
	for i := range d.Items {
		resp.Items = append(resp.Items, ToItemResponse(&d.Items[i]))
	}
	return resp
}

func toShortBooking(b *models.Booking) *ShortBookingResponse {
	if b == nil {
		return nil
	}
	return &ShortBookingResponse{ID: b.ID, BookerID: b.BookerID, Start: b.StartDate, End: b.EndDate}
}
