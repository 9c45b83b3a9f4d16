package handler

import (
	"net/http"

	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/response"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves service reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// ReviewRequest represents the request body for writing a review
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func (req *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{Rating: req.Rating, Comment: req.Comment}
}

// Create stores a review written by the caller
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(review))
}

// ListMine returns the reviews written by the caller
func (h *ReviewHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	reviews, err := h.reviewUC.ListMine(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews))
}

// ListByUser returns the reviews written by any account
func (h *ReviewHandler) ListByUser(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	reviews, err := h.reviewUC.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponses(reviews))
}

// Update rewrites one of the caller's reviews
func (h *ReviewHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review))
}

// Delete removes one of the caller's reviews
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.delete(c, actor)
}

// DeleteAsStaff removes any review through the staff override
func (h *ReviewHandler) DeleteAsStaff(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.delete(c, actor.AsStaff())
}

func (h *ReviewHandler) delete(c echo.Context, actor usecase.Actor) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Review deleted successfully")
}
