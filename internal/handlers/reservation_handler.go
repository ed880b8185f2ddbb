package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/courtdesk/court-scheduler/internal/domain/schedule"
	"github.com/courtdesk/court-scheduler/internal/httperr"
	"github.com/courtdesk/court-scheduler/internal/models"
	ucReservation "github.com/courtdesk/court-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db     *gorm.DB
	create *ucReservation.Create
	update *ucReservation.Update
	cancel *ucReservation.Cancel
	join   *ucReservation.Join
}

func NewReservationHandler(
	db *gorm.DB,
	create *ucReservation.Create,
	update *ucReservation.Update,
	cancel *ucReservation.Cancel,
	join *ucReservation.Join,
) *ReservationHandler {
	return &ReservationHandler{
		db:     db,
		create: create,
		update: update,
		cancel: cancel,
		join:   join,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	TimeSlotID string `json:"timeSlotId"`
	CourtID    uint   `json:"courtId"`

	PlayerName  string `json:"playerName"`
	PlayerEmail string `json:"playerEmail"`
	PlayerPhone string `json:"playerPhone"`

	Players *int `json:"players"`

	IsOpenPlay     bool `json:"isOpenPlay"`
	OpenPlaySlots  *int `json:"openPlaySlots"`
	MaxOpenPlayers *int `json:"maxOpenPlayers"`

	PaymentStatus *string  `json:"paymentStatus"`
	AmountPaid    *float64 `json:"amountPaid"`

	Comments []string `json:"comments"`
}

type UpdateReservationRequest struct {
	PlayerName  *string `json:"playerName"`
	PlayerEmail *string `json:"playerEmail"`
	PlayerPhone *string `json:"playerPhone"`

	Players *int `json:"players"`

	OpenPlaySlots  *int `json:"openPlaySlots"`
	MaxOpenPlayers *int `json:"maxOpenPlayers"`

	PaymentStatus *string  `json:"paymentStatus"`
	AmountPaid    *float64 `json:"amountPaid"`

	Comments *[]string `json:"comments"`
}

type JoinRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ======================================================
// HELPERS
// ======================================================

var businessMessages = map[string]string{
	"not_open_play":  "This reservation is not open for joining.",
	"game_full":      "This open play game is full.",
	"already_joined": "This email has already joined the game.",
}

func writeReservationError(c *gin.Context, err error, fallbackCode string) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.WriteValidation(c, ve)
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Request rejected."
		}
		httperr.BadRequest(c, be.Code, msg)
		return
	}

	httperr.Internal(c, fallbackCode, "Unexpected error.")
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.create.Execute(c.Request.Context(), tenantID, ucReservation.CreateInput{
		TimeSlotID:     req.TimeSlotID,
		CourtID:        req.CourtID,
		PlayerName:     req.PlayerName,
		PlayerEmail:    req.PlayerEmail,
		PlayerPhone:    req.PlayerPhone,
		Players:        req.Players,
		IsOpenPlay:     req.IsOpenPlay,
		OpenPlaySlots:  req.OpenPlaySlots,
		MaxOpenPlayers: req.MaxOpenPlayers,
		PaymentStatus:  req.PaymentStatus,
		AmountPaid:     req.AmountPaid,
		Comments:       req.Comments,
		CreatedByID:    userIDFrom(c),
	})
	if err != nil {
		writeReservationError(c, err, "failed_to_create_reservation")
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.update.Execute(c.Request.Context(), tenantID, id, ucReservation.UpdateInput{
		PlayerName:     req.PlayerName,
		PlayerEmail:    req.PlayerEmail,
		PlayerPhone:    req.PlayerPhone,
		Players:        req.Players,
		OpenPlaySlots:  req.OpenPlaySlots,
		MaxOpenPlayers: req.MaxOpenPlayers,
		PaymentStatus:  req.PaymentStatus,
		AmountPaid:     req.AmountPaid,
		Comments:       req.Comments,
	})
	if err != nil {
		writeReservationError(c, err, "failed_to_update_reservation")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// JOIN OPEN PLAY
// ======================================================

func (h *ReservationHandler) Join(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res, err := h.join.Execute(c.Request.Context(), tenantID, id, ucReservation.JoinInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeReservationError(c, err, "failed_to_join_reservation")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	id, ok := reservationID(c)
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), tenantID, id, userIDFrom(c)); err != nil {
		writeReservationError(c, err, "failed_to_cancel_reservation")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	tenantID := tenantIDFrom(c)

	q := h.db.Where("tenant_id = ?", tenantID)

	if date := c.Query("date"); date != "" {
		q = q.Where(
			"time_slot_id IN (?)",
			h.db.Model(&models.TimeSlot{}).
				Select("slot_id").
				Where("tenant_id = ? AND date = ?", tenantID, date),
		)
	}

	var reservations []models.Reservation
	if err := q.
		Order("created_at DESC").
		Find(&reservations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reservations", "Failed to list reservations.")
		return
	}

	c.JSON(http.StatusOK, reservations)
}
