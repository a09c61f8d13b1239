package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/request"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/response"
)

// StoreHandler handles the store profile printed on documents
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// GetStore retrieves the store profile
func (h *StoreHandler) GetStore(c *gin.Context) {
	profile, err := h.storeService.Profile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store profile retrieved successfully", profile)
}

// UpdateStore updates the store profile
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var req request.UpdateStoreRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.storeService.UpdateProfile(c.Request.Context(), &service.UpdateStoreInput{
		Name:               req.Name,
		Address:            req.Address,
		Phone:              req.Phone,
		NTN:                req.NTN,
		ReceiptFooter:      req.ReceiptFooter,
		ConfirmationFooter: req.ConfirmationFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store profile updated successfully", profile)
}
