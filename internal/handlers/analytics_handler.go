package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardlet-server/internal/managers"
	"cardlet-server/internal/schemas"
	"cardlet-server/internal/utils"
)

type AnalyticsHdl interface {
	RecordView(ctx *gin.Context)
	RecordMessage(ctx *gin.Context)
	RecordAppointment(ctx *gin.Context)
	RecordLinkClick(ctx *gin.Context)
	GetVisitorStats(ctx *gin.Context)
	GetMessages(ctx *gin.Context)
	GetAppointments(ctx *gin.Context)
	GetLinkClicks(ctx *gin.Context)
}

type AnalyticsHandler struct {
	Stores      managers.StoreMgr
	MailManager managers.MailMgr
}

func NewAnalyticsHandler(storeManager *managers.StoreMgr, mailManager *managers.MailMgr) AnalyticsHdl {
	return &AnalyticsHandler{
		Stores:      *storeManager,
		MailManager: *mailManager,
	}
}

// RecordView records a view event for the card addressed by the slug. The
// visitor address is hashed before it is stored; the raw address is dropped.
func (handler *AnalyticsHandler) RecordView(ctx *gin.Context) {
	card, ok := handler.resolveActiveCard(ctx)
	if !ok {
		return
	}

	visitDate := time.Now().UTC().Format("2006-01-02")
	visitorHash := utils.HashVisitorAddress(ctx.ClientIP())
	handler.Stores.Analytics().RecordVisit(card.ID, visitDate, visitorHash)

	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: "View recorded"}, http.StatusOK)
}

// RecordMessage records a visitor message for the card addressed by the
// slug and notifies the owner by mail, best effort.
func (handler *AnalyticsHandler) RecordMessage(ctx *gin.Context) {
	card, ok := handler.resolveActiveCard(ctx)
	if !ok {
		return
	}

	messageRequest := &schemas.MessageRequest{}
	if err := utils.BindAndValidate(ctx, messageRequest); err != nil {
		return
	}

	handler.Stores.Analytics().RecordMessage(card.ID, messageRequest.SenderName, messageRequest.SenderEmail, messageRequest.MessageContent)

	if owner, found := handler.Stores.Users().FindByID(card.UserID); found {
		if err := handler.MailManager.SendMessageNotification(owner.Email, owner.Username, card.FullName, messageRequest.SenderName); err != nil {
			utils.LogMessageWithFields(ctx, "warn", "Failed to send message notification: "+err.Error())
		}
	}

	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: "Message recorded"}, http.StatusOK)
}

// RecordAppointment records an appointment request for the card addressed
// by the slug and notifies the owner by mail, best effort.
func (handler *AnalyticsHandler) RecordAppointment(ctx *gin.Context) {
	card, ok := handler.resolveActiveCard(ctx)
	if !ok {
		return
	}

	appointmentRequest := &schemas.AppointmentRequest{}
	if err := utils.BindAndValidate(ctx, appointmentRequest); err != nil {
		return
	}

	handler.Stores.Analytics().RecordAppointment(card.ID, appointmentRequest.RequesterName, appointmentRequest.RequesterEmail, appointmentRequest.ProposedTime)

	if owner, found := handler.Stores.Users().FindByID(card.UserID); found {
		if err := handler.MailManager.SendAppointmentNotification(owner.Email, owner.Username, card.FullName, appointmentRequest.RequesterName, appointmentRequest.ProposedTime); err != nil {
			utils.LogMessageWithFields(ctx, "warn", "Failed to send appointment notification: "+err.Error())
		}
	}

	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: "Appointment request recorded"}, http.StatusOK)
}

// RecordLinkClick records a link click event for the card addressed by the slug.
func (handler *AnalyticsHandler) RecordLinkClick(ctx *gin.Context) {
	card, ok := handler.resolveActiveCard(ctx)
	if !ok {
		return
	}

	linkClickRequest := &schemas.LinkClickRequest{}
	if err := utils.BindAndValidate(ctx, linkClickRequest); err != nil {
		return
	}

	handler.Stores.Analytics().RecordLinkClick(card.ID, linkClickRequest.LinkType, linkClickRequest.LinkURL)

	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: "Link click recorded"}, http.StatusOK)
}

// GetVisitorStats returns the per-day unique visitor counts of an owned card.
func (handler *AnalyticsHandler) GetVisitorStats(ctx *gin.Context) {
	card, ok := handler.resolveOwnedCard(ctx)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(ctx, handler.Stores.Analytics().VisitorStats(card.ID), http.StatusOK)
}

// GetMessages returns the messages of an owned card, newest first.
func (handler *AnalyticsHandler) GetMessages(ctx *gin.Context) {
	card, ok := handler.resolveOwnedCard(ctx)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(ctx, handler.Stores.Analytics().MessagesFor(card.ID), http.StatusOK)
}

// GetAppointments returns the appointment requests of an owned card, newest first.
func (handler *AnalyticsHandler) GetAppointments(ctx *gin.Context) {
	card, ok := handler.resolveOwnedCard(ctx)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(ctx, handler.Stores.Analytics().AppointmentsFor(card.ID), http.StatusOK)
}

// GetLinkClicks returns the link clicks of an owned card, newest first.
func (handler *AnalyticsHandler) GetLinkClicks(ctx *gin.Context) {
	card, ok := handler.resolveOwnedCard(ctx)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(ctx, handler.Stores.Analytics().LinkClicksFor(card.ID), http.StatusOK)
}

// resolveActiveCard resolves the slug path parameter to an active card and
// writes a 404 when there is none. Engagement recording never reveals
// whether an inactive card exists.
func (handler *AnalyticsHandler) resolveActiveCard(ctx *gin.Context) (schemas.Card, bool) {
	slug := ctx.Param(utils.CardSlugKey)

	card, found := handler.Stores.Cards().GetPublicBySlug(slug)
	if !found {
		utils.WriteAndLogError(ctx, schemas.CardNotFound, http.StatusNotFound, errors.New("no active card for slug"))
		return schemas.Card{}, false
	}
	return card, true
}

// resolveOwnedCard applies the ownership gate to the card id path parameter
// for the owner-facing analytics reads.
func (handler *AnalyticsHandler) resolveOwnedCard(ctx *gin.Context) (schemas.Card, bool) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return schemas.Card{}, false
	}

	cardId, err := parseCardId(ctx)
	if err != nil {
		return schemas.Card{}, false
	}

	card, err := handler.Stores.Cards().GetOwned(cardId, userId)
	if err != nil {
		writeCardError(ctx, err)
		return schemas.Card{}, false
	}
	return card, true
}
