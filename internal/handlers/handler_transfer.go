package handlers

import (
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler exposes the per-session transfer forms.
type transferHandler struct {
	forms portssvc.TransferFormSvc
}

// registerTransferRoutes registers the transfer form routes. :kind is one of
// internal-transfer, group-transfer, payment, deposit or withdrawal.
func registerTransferRoutes(rg *gin.RouterGroup, forms portssvc.TransferFormSvc) {
	h := &transferHandler{forms: forms}

	transfers := rg.Group("/transfers/:kind")
	{
		transfers.GET("", h.getForm)
		transfers.PUT("", h.stageForm)
		transfers.POST("", h.submitForm)
		transfers.POST("/confirm", h.confirmForm)
		transfers.DELETE("", h.cancelForm)
	}
}

func formKind(c *gin.Context) (domain.FormKind, bool) {
	kind, ok := domain.ParseFormKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown transfer form " + c.Param("kind")})
		return "", false
	}
	return kind, true
}

// getForm godoc
// @Summary Get a transfer form
// @Description Returns the form of the given kind with its source account list.
// @Tags transfers
// @Produce json
// @Param kind path string true "Form kind" Enums(internal-transfer, group-transfer, payment, deposit, withdrawal)
// @Success 200 {object} domain.FormSnapshot
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transfers/{kind} [get]
func (h *transferHandler) getForm(c *gin.Context) {
	kind, ok := formKind(c)
	if !ok {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	snap, err := h.forms.Snapshot(c.Request.Context(), sess, kind)
	if err != nil {
		respondError(c, err, "Failed to load transfer form")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// stageForm godoc
// @Summary Stage a transfer for confirmation
// @Description Validates the draft locally and holds it for confirmation. An invalid draft never reaches the banking service.
// @Tags transfers
// @Accept json
// @Produce json
// @Param kind path string true "Form kind"
// @Param draft body dto.TransferDraftRequest true "Form fields"
// @Success 200 {object} domain.FormSnapshot
// @Failure 400 {object} dto.FormErrorResponse
// @Failure 409 {object} dto.FormErrorResponse "A submission is in progress"
// @Security BearerAuth
// @Router /api/v1/transfers/{kind} [put]
func (h *transferHandler) stageForm(c *gin.Context) {
	kind, ok := formKind(c)
	if !ok {
		return
	}
	var req dto.TransferDraftRequest
	if !bindJSON(c, &req, "StageTransfer") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	snap, err := h.forms.Stage(c.Request.Context(), sess, req.ToDomain(kind))
	if err != nil {
		respondFormError(c, err, snap, "Failed to stage transfer")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// confirmForm godoc
// @Summary Confirm a staged transfer
// @Tags transfers
// @Produce json
// @Param kind path string true "Form kind"
// @Success 200 {object} domain.FormSnapshot
// @Failure 400 {object} dto.FormErrorResponse
// @Failure 409 {object} dto.FormErrorResponse
// @Failure 502 {object} dto.FormErrorResponse
// @Security BearerAuth
// @Router /api/v1/transfers/{kind}/confirm [post]
func (h *transferHandler) confirmForm(c *gin.Context) {
	kind, ok := formKind(c)
	if !ok {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	snap, err := h.forms.Confirm(c.Request.Context(), sess, kind)
	if err != nil {
		respondFormError(c, err, snap, "The transaction could not be completed")
		return
	}
	trackTransfer(c, snap)
	c.JSON(http.StatusOK, snap)
}

// submitForm godoc
// @Summary Submit a transfer
// @Description Validates and submits in one step. On success the fields are cleared and the account list re-read; on failure the fields are kept with the server's message.
// @Tags transfers
// @Accept json
// @Produce json
// @Param kind path string true "Form kind"
// @Param draft body dto.TransferDraftRequest true "Form fields"
// @Success 200 {object} domain.FormSnapshot
// @Failure 400 {object} dto.FormErrorResponse
// @Failure 409 {object} dto.FormErrorResponse
// @Failure 502 {object} dto.FormErrorResponse
// @Security BearerAuth
// @Router /api/v1/transfers/{kind} [post]
func (h *transferHandler) submitForm(c *gin.Context) {
	kind, ok := formKind(c)
	if !ok {
		return
	}
	var req dto.TransferDraftRequest
	if !bindJSON(c, &req, "SubmitTransfer") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	snap, err := h.forms.Submit(c.Request.Context(), sess, req.ToDomain(kind))
	if err != nil {
		respondFormError(c, err, snap, "The transaction could not be completed")
		return
	}
	trackTransfer(c, snap)
	c.JSON(http.StatusOK, snap)
}

// cancelForm godoc
// @Summary Cancel a transfer form
// @Tags transfers
// @Produce json
// @Param kind path string true "Form kind"
// @Success 200 {object} domain.FormSnapshot
// @Failure 409 {object} dto.FormErrorResponse
// @Security BearerAuth
// @Router /api/v1/transfers/{kind} [delete]
func (h *transferHandler) cancelForm(c *gin.Context) {
	kind, ok := formKind(c)
	if !ok {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	snap, err := h.forms.Cancel(c.Request.Context(), sess, kind)
	if err != nil {
		respondFormError(c, err, snap, "Failed to cancel transfer")
		return
	}
	c.JSON(http.StatusOK, snap)
}

func trackTransfer(c *gin.Context, snap *domain.FormSnapshot) {
	if snap == nil || snap.Receipt == nil {
		return
	}
	middleware.TrackEvent(c, "transfer_completed", map[string]any{
		"kind":      string(snap.Kind),
		"reference": snap.Receipt.Reference,
		"status":    snap.Receipt.Status,
	})
}
