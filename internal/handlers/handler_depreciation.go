package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depreciationHandler handles HTTP requests for the depreciation ledger
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
	now                 func() time.Time
}

func newDepreciationHandler(ds portssvc.DepreciationSvcFacade) *depreciationHandler {
	return &depreciationHandler{depreciationService: ds, now: time.Now}
}

// RegisterDepreciationRoutes registers the depreciation routes on rg.
func RegisterDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	registerValidators()
	h := newDepreciationHandler(depreciationService)

	group := rg.Group("/depreciation")
	{
		group.POST("/generate", h.generate)
		group.GET("/history/:assetID", h.getHistory)
		group.GET("/verification", h.getVerification)
		group.GET("/summary", h.getSummary)
	}
}

// generate godoc
// @Summary Generate monthly depreciation
// @Description Depreciates every eligible asset for the given month in one transaction. Re-running a processed month is a no-op.
// @Tags depreciation
// @Accept json
// @Produce json
// @Param request body dto.GenerateDepreciationRequest true "Period to generate"
// @Success 200 {object} dto.GenerateDepreciationResponse
// @Failure 400 {object} map[string]interface{} "Invalid input, with per-field errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Depreciation for this period already generated"
// @Failure 500 {object} map[string]string "Storage failure"
// @Security BearerAuth
// @Router /depreciation/generate [post]
func (h *depreciationHandler) generate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind generate request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindErrorBody(err))
		return
	}

	period := domain.Period{Year: req.An, Month: req.Luna}
	logger = logger.With(slog.String("period", period.String()))
	requestedBy, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to generate depreciation", slog.String("requested_by", requestedBy))

	result, err := h.depreciationService.GenerateForPeriod(c.Request.Context(), req.An, req.Luna)
	if err != nil {
		respondWithError(c, logger, err, "Depreciation generation")
		return
	}

	c.JSON(http.StatusOK, dto.ToGenerateDepreciationResponse(result, period))
}

// getHistory godoc
// @Summary Get depreciation history of an asset
// @Description Lists the asset's depreciation records, newest period first
// @Tags depreciation
// @Produce json
// @Param assetID path int true "Asset ID"
// @Success 200 {object} dto.DepreciationHistoryResponse
// @Failure 400 {object} map[string]string "Invalid asset ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Storage failure"
// @Security BearerAuth
// @Router /depreciation/history/{assetID} [get]
func (h *depreciationHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, ok := parseAssetID(c, logger)
	if !ok {
		return
	}

	records, err := h.depreciationService.GetHistory(c.Request.Context(), assetID)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("asset_id", assetID)), err, "Depreciation history")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationHistoryResponse(assetID, records))
}

// getVerification godoc
// @Summary Verify which months were processed
// @Description Returns one entry per month of the year telling whether depreciation was generated and for how many assets
// @Tags depreciation
// @Produce json
// @Param an query int false "Year" default(current year)
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Storage failure"
// @Security BearerAuth
// @Router /depreciation/verification [get]
func (h *depreciationHandler) getVerification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year := h.now().Year()
	if raw, present := c.GetQuery("an"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid year query parameter", slog.String("an", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}

	months, err := h.depreciationService.GetVerification(c.Request.Context(), year)
	if err != nil {
		respondWithError(c, logger.With(slog.Int("year", year)), err, "Depreciation verification")
		return
	}

	c.JSON(http.StatusOK, dto.ToVerificationResponse(year, months))
}

// getSummary godoc
// @Summary Summarize depreciation per period
// @Description Total monthly charge and asset count per period, newest first, optionally for one year
// @Tags depreciation
// @Produce json
// @Param an query int false "Year filter"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Storage failure"
// @Security BearerAuth
// @Router /depreciation/summary [get]
func (h *depreciationHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var year *int
	if raw := c.Query("an"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid year query parameter", slog.String("an", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		if parsed != 0 {
			year = &parsed
		}
	}

	rows, err := h.depreciationService.GetSummary(c.Request.Context(), year)
	if err != nil {
		respondWithError(c, logger, err, "Depreciation summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(year, rows))
}

func parseAssetID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("assetID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid asset ID in path", slog.String("asset_id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return 0, false
	}
	return id, true
}
