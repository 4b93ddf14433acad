package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/ports"
)

// ContractHandler serves the contracts page.
type ContractHandler struct {
	contracts ports.ContractService
}

func NewContractHandler(contracts ports.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

type createContractRequest struct {
	Type      string  `json:"type"       validate:"required,oneof=employment rental"`
	Title     string  `json:"title"      validate:"required"`
	PartyA    string  `json:"party_a"    validate:"required"`
	PartyB    string  `json:"party_b"    validate:"required"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date,omitempty"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Terms     string  `json:"terms"  validate:"required"`
}

// List returns all agreements with their derived status.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Contract
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.contracts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contracts)
}

// Get returns one agreement.
//
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Contract ID"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	contract, err := h.contracts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// Create records a new employment or rental agreement.
//
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContractRequest  true  "Agreement details"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  errorResponse
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.CreateContractInput{
		Type:   req.Type,
		Title:  req.Title,
		PartyA: req.PartyA,
		PartyB: req.PartyB,
		Amount: req.Amount,
		Terms:  req.Terms,
	}
	var err error
	if input.StartDate, err = time.Parse(dateLayout, req.StartDate); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "start_date must be YYYY-MM-DD"})
	}
	if req.EndDate != "" {
		if input.EndDate, err = time.Parse(dateLayout, req.EndDate); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "end_date must be YYYY-MM-DD"})
		}
	}

	contract, err := h.contracts.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contract)
}
