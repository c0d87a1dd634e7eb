package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the revenue dashboard.
type ReportHandler struct {
	usecase usecase.IRevenueUseCase
	loc     *time.Location
	now     func() time.Time
}

func NewReportHandler(uc usecase.IRevenueUseCase, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{usecase: uc, loc: loc, now: time.Now}
}

// Monthly godoc
// @Summary      Monthly revenue summary
// @Description  Defaults to the current month in the store time zone.
// @Tags         reports
// @Produce      json
// @Param        year  query int false "Year"
// @Param        month query int false "Month (1-12)"
// @Success      200 {object} response.SummaryResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	today := h.now().In(h.loc)

	year, ok := intQuery(c, "year", today.Year())
	if !ok {
		writeError(c, errInvalidPayload)
		return
	}
	month, ok := intQuery(c, "month", int(today.Month()))
	if !ok {
		writeError(c, errInvalidPayload)
		return
	}

	summary, err := h.usecase.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, mapError(err, "NOT_FOUND"))
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

// Daily godoc
// @Summary      Daily revenue summary ("lucro hoje")
// @Tags         reports
// @Produce      json
// @Param        date query string false "YYYY-MM-DD, defaults to today"
// @Success      200 {object} response.SummaryResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
		if err != nil {
			writeError(c, errInvalidPayload)
			return
		}
		date = parsed
	}

	summary, err := h.usecase.DailySummary(c.Request.Context(), date)
	if err != nil {
		writeError(c, mapError(err, "NOT_FOUND"))
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
