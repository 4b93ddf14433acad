package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/api/metrics"
	"github.com/aitax/tax-system/internal/core/ports"
)

// GSTHandler serves the GST returns page.
type GSTHandler struct {
	gst ports.GSTService
}

func NewGSTHandler(gst ports.GSTService) *GSTHandler {
	return &GSTHandler{gst: gst}
}

type createGSTReturnRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// List returns all GST returns, newest period first.
//
// @Summary      List GST returns
// @Tags         gst
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.GSTReturn
// @Router       /v1/gst-returns [get]
func (h *GSTHandler) List(c echo.Context) error {
	returns, err := h.gst.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, returns)
}

// Get returns one GST return.
//
// @Summary      Get a GST return
// @Tags         gst
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Return ID"
// @Success      200  {object}  domain.GSTReturn
// @Failure      404  {object}  errorResponse
// @Router       /v1/gst-returns/{id} [get]
func (h *GSTHandler) Get(c echo.Context) error {
	r, err := h.gst.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Create derives a draft return from the transactions inside the period.
//
// @Summary      Create a draft GST return for a period
// @Tags         gst
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGSTReturnRequest  true  "Period to cover"
// @Success      201   {object}  domain.GSTReturn
// @Failure      400   {object}  errorResponse
// @Router       /v1/gst-returns [post]
func (h *GSTHandler) Create(c echo.Context) error {
	var req createGSTReturnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "start_date must be YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "end_date must be YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "end_date must not precede start_date"})
	}

	r, err := h.gst.CreateReturn(c.Request().Context(), ports.CreateGSTReturnInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	metrics.GSTReturnsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, r)
}

// Submit files a draft return with the IRD.
//
// @Summary      Submit a GST return
// @Tags         gst
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Return ID"
// @Success      200  {object}  domain.GSTReturn
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/gst-returns/{id}/submit [post]
func (h *GSTHandler) Submit(c echo.Context) error {
	r, err := h.gst.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.GSTReturnsTotal.WithLabelValues("submitted").Inc()
	return c.JSON(http.StatusOK, r)
}

// MarkPaid settles a submitted return.
//
// @Summary      Mark a GST return paid
// @Tags         gst
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Return ID"
// @Success      200  {object}  domain.GSTReturn
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/gst-returns/{id}/pay [post]
func (h *GSTHandler) MarkPaid(c echo.Context) error {
	r, err := h.gst.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.GSTReturnsTotal.WithLabelValues("paid").Inc()
	return c.JSON(http.StatusOK, r)
}
