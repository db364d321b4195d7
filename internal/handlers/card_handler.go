package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cardlet-server/internal/managers"
	"cardlet-server/internal/schemas"
	"cardlet-server/internal/stores"
	"cardlet-server/internal/utils"
)

type CardHdl interface {
	ListTemplates(ctx *gin.Context)
	CreateCard(ctx *gin.Context)
	ListCards(ctx *gin.Context)
	GetCard(ctx *gin.Context)
	UpdateCard(ctx *gin.Context)
	DeleteCard(ctx *gin.Context)
	GetPublicCard(ctx *gin.Context)
}

type CardHandler struct {
	Stores managers.StoreMgr
}

func NewCardHandler(storeManager *managers.StoreMgr) CardHdl {
	return &CardHandler{Stores: *storeManager}
}

// ListTemplates returns the seeded card templates.
func (handler *CardHandler) ListTemplates(ctx *gin.Context) {
	utils.WriteAndLogResponse(ctx, handler.Stores.Templates().All(), http.StatusOK)
}

// CreateCard creates a new card owned by the authenticated user. The
// template must exist and the slug must be free across all cards.
func (handler *CardHandler) CreateCard(ctx *gin.Context) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	createCardRequest := &schemas.CreateCardRequest{}
	if err := utils.BindAndValidate(ctx, createCardRequest); err != nil {
		return
	}

	isActive := true
	if createCardRequest.IsActive != nil {
		isActive = *createCardRequest.IsActive
	}

	card, err := handler.Stores.Cards().Create(schemas.Card{
		UserID:              userId,
		TemplateID:          createCardRequest.TemplateID,
		CardSlug:            createCardRequest.CardSlug,
		FullName:            createCardRequest.FullName,
		CompanyName:         createCardRequest.CompanyName,
		JobTitle:            createCardRequest.JobTitle,
		PhoneNumber:         createCardRequest.PhoneNumber,
		Email:               createCardRequest.Email,
		WebsiteURL:          createCardRequest.WebsiteURL,
		Address:             createCardRequest.Address,
		SocialMediaLinks:    createCardRequest.SocialMediaLinks,
		BusinessDescription: createCardRequest.BusinessDescription,
		CustomCSS:           createCardRequest.CustomCSS,
		IsActive:            isActive,
	})
	if err != nil {
		writeCardError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, card, http.StatusCreated)
}

// ListCards returns the authenticated user's cards in creation order.
func (handler *CardHandler) ListCards(ctx *gin.Context) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	utils.WriteAndLogResponse(ctx, handler.Stores.Cards().ListByUser(userId), http.StatusOK)
}

// GetCard returns one card after the ownership gate.
func (handler *CardHandler) GetCard(ctx *gin.Context) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	cardId, err := parseCardId(ctx)
	if err != nil {
		return
	}

	card, err := handler.Stores.Cards().GetOwned(cardId, userId)
	if err != nil {
		writeCardError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, card, http.StatusOK)
}

// UpdateCard applies a partial update to an owned card. Fields absent from
// the request body stay unchanged.
func (handler *CardHandler) UpdateCard(ctx *gin.Context) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	cardId, err := parseCardId(ctx)
	if err != nil {
		return
	}

	updateCardRequest := &schemas.UpdateCardRequest{}
	if err := utils.BindAndValidate(ctx, updateCardRequest); err != nil {
		return
	}

	card, err := handler.Stores.Cards().Update(cardId, userId, stores.CardPatch{
		TemplateID:          updateCardRequest.TemplateID,
		CardSlug:            updateCardRequest.CardSlug,
		FullName:            updateCardRequest.FullName,
		CompanyName:         updateCardRequest.CompanyName,
		JobTitle:            updateCardRequest.JobTitle,
		PhoneNumber:         updateCardRequest.PhoneNumber,
		Email:               updateCardRequest.Email,
		WebsiteURL:          updateCardRequest.WebsiteURL,
		Address:             updateCardRequest.Address,
		SocialMediaLinks:    updateCardRequest.SocialMediaLinks,
		BusinessDescription: updateCardRequest.BusinessDescription,
		CustomCSS:           updateCardRequest.CustomCSS,
		IsActive:            updateCardRequest.IsActive,
	})
	if err != nil {
		writeCardError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, card, http.StatusOK)
}

// DeleteCard removes an owned card permanently.
func (handler *CardHandler) DeleteCard(ctx *gin.Context) {
	userId, _, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	cardId, err := parseCardId(ctx)
	if err != nil {
		return
	}

	if err := handler.Stores.Cards().Delete(cardId, userId); err != nil {
		writeCardError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: "Card deleted successfully"}, http.StatusOK)
}

// GetPublicCard returns the public projection of an active card addressed
// by its slug. The owner id and custom CSS are redacted.
func (handler *CardHandler) GetPublicCard(ctx *gin.Context) {
	slug := ctx.Param(utils.CardSlugKey)

	card, found := handler.Stores.Cards().GetPublicBySlug(slug)
	if !found {
		utils.WriteAndLogError(ctx, schemas.CardNotFound, http.StatusNotFound, errors.New("no active card for slug"))
		return
	}

	publicCard := &schemas.PublicCardDTO{
		ID:                  card.ID,
		TemplateID:          card.TemplateID,
		CardSlug:            card.CardSlug,
		FullName:            card.FullName,
		CompanyName:         card.CompanyName,
		JobTitle:            card.JobTitle,
		PhoneNumber:         card.PhoneNumber,
		Email:               card.Email,
		WebsiteURL:          card.WebsiteURL,
		Address:             card.Address,
		SocialMediaLinks:    card.SocialMediaLinks,
		BusinessDescription: card.BusinessDescription,
	}
	utils.WriteAndLogResponse(ctx, publicCard, http.StatusOK)
}

// parseCardId reads the card id path parameter. Non-numeric ids cannot
// address any card, so they are reported as not found.
func parseCardId(ctx *gin.Context) (int64, error) {
	cardId, err := strconv.ParseInt(ctx.Param(utils.CardIdKey), 10, 64)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.CardNotFound, http.StatusNotFound, err)
		return 0, err
	}
	return cardId, nil
}

// writeCardError maps the card store's sentinel errors to API errors.
func writeCardError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		utils.WriteAndLogError(ctx, schemas.CardNotFound, http.StatusNotFound, err)
	case errors.Is(err, stores.ErrForbidden):
		utils.WriteAndLogError(ctx, schemas.AccessForbidden, http.StatusForbidden, err)
	case errors.Is(err, stores.ErrSlugTaken):
		utils.WriteAndLogError(ctx, schemas.SlugTaken, http.StatusConflict, err)
	case errors.Is(err, stores.ErrUnknownTemplate):
		utils.WriteAndLogError(ctx, schemas.InvalidTemplate, http.StatusBadRequest, err)
	default:
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
	}
}
