package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// RegisterAssetRoutes registers the asset read routes on rg.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := &assetHandler{assetService: assetService}
	rg.GET("/assets/:assetID/depreciation-state", h.getDepreciationState)
}

// getDepreciationState godoc
// @Summary Get the depreciable attributes of an asset
// @Tags assets
// @Produce json
// @Param assetID path int true "Asset ID"
// @Success 200 {object} dto.AssetDepreciationStateResponse
// @Failure 400 {object} map[string]string "Invalid asset ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Storage failure"
// @Security BearerAuth
// @Router /assets/{assetID}/depreciation-state [get]
func (h *assetHandler) getDepreciationState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, ok := parseAssetID(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.GetDepreciationState(c.Request.Context(), assetID)
	if err != nil {
		respondWithError(c, logger, err, "Asset lookup")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetDepreciationStateResponse(*asset))
}
