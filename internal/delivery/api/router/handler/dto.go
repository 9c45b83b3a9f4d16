package handler

import (
	"time"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
)

// AccountResponse is the public view of an account; the password hash never leaves the service.
type AccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PhoneNumber    string    `json:"phone_number"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsStaff        bool      `json:"is_staff"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newAccountResponse(a *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Email:          a.Email,
		DisplayName:    a.DisplayName,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		PhoneNumber:    a.PhoneNumber,
		ProfilePicture: a.ProfilePicture,
		IsActive:       a.IsActive,
		IsStaff:        a.IsStaff,
		Role:           a.Role().String(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func newAccountResponses(accounts []*entity.Account) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, newAccountResponse(a))
	}

	return out
}

// LoginResponse carries the access token issued on login.
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"` // seconds
	Account     *AccountResponse `json:"account"`
}

// BookingResponse is the public view of a booking.
type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	AccountID        uuid.UUID `json:"account_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	PickupDate       string    `json:"pickup_date"`
	WasteType        string    `json:"waste_type"`
	Amount           int64     `json:"amount"`
	OrderStatus      string    `json:"order_status"`
	DeliveryStatus   bool      `json:"delivery_status"`
	PaymentStatus    bool      `json:"payment_status"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newBookingResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		AccountID:        b.AccountID,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Phone:            b.Phone,
		Address:          b.Address,
		PickupDate:       b.PickupDate.Format(time.DateOnly),
		WasteType:        b.WasteType.String(),
		Amount:           b.Amount,
		OrderStatus:      b.OrderStatus.String(),
		DeliveryStatus:   b.DeliveryStatus,
		PaymentStatus:    b.PaymentStatus,
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func newBookingResponses(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}

	return out
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           r.ID,
		AccountID:    r.AccountID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func newReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r))
	}

	return out
}

// PaymentResponse reports the outcome of a transaction verification.
type PaymentResponse struct {
	Success   bool             `json:"success"`
	Reference string           `json:"reference"`
	Status    string           `json:"status"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

func newPaymentResponse(result *usecase.PaymentResult) *PaymentResponse {
	resp := &PaymentResponse{
		Success:   result.Success,
		Reference: result.Reference,
		Status:    result.Status,
	}
	if result.Booking != nil {
		resp.Booking = newBookingResponse(result.Booking)
	}

	return resp
}
