package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
	"github.com/maiunguwa377/caseflow/internal/core/ports"
)

// CaseHandler handles HTTP requests for case operations. Authentication
// and role checks happen in middleware before these run.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// List handles GET /cases.
//
// @Summary      List all cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   caseResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	resp := make([]caseResponse, 0, len(cases))
	for _, cs := range cases {
		resp = append(resp, toCaseResponse(cs))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /cases.
//
// @Summary      Register a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caseRequest  true  "Case details"
// @Success      201   {object}  caseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input, err := h.bindCaseInput(c, claims)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, toCaseResponse(*created))
}

// Update handles PUT /cases/:id.
//
// @Summary      Update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Case id"
// @Param        body  body      caseRequest  true  "Case details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /cases/{id} [put]
func (h *CaseHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := parseCaseID(c)
	if err != nil {
		return err
	}

	input, err := h.bindCaseInput(c, claims)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, input); err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Case not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Case updated successfully."})
}

// Delete handles DELETE /cases/:id.
//
// @Summary      Delete a case
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Case id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := parseCaseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Case not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Case deleted successfully."})
}

// bindCaseInput binds and validates the shared create/update payload.
func (h *CaseHandler) bindCaseInput(c echo.Context, claims domain.Claims) (ports.CaseInput, error) {
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return ports.CaseInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CaseInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseRegistrationDate(req.RegistrationDate)
	if err != nil {
		return ports.CaseInput{}, echo.NewHTTPError(http.StatusBadRequest, "registration_date must match the format 2006-01-02")
	}

	return ports.CaseInput{
		CaseNumber:       req.CaseNumber,
		Parties:          req.Parties,
		RegistrationDate: date,
		Status:           req.Status,
		ActorID:          claims.UserID,
	}, nil
}

func parseCaseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid case id")
	}
	return id, nil
}
