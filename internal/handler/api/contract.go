package api

import (
	"errors"
	"net/http"

	"bakehouse/internal/domain/contract"
	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/infra"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contracts usecase.ContractUsecase
}

func NewContractHandler(contracts usecase.ContractUsecase) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// @Summary Create contract
// @Description Draft a contract for an order that requires one
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body request.CreateContractRequest true "Contract"
// @Success 201 {object} response.ContractResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /staff/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ct, err := h.contracts.Create(c.Request.Context(), tenant, usecase.CreateContractInput{
		OrderID: req.OrderID,
		Title:   req.Title,
		Body:    req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotContractable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order type does not take a contract"})
		case errors.Is(err, contract.ErrEmptyBody):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(ct))
}

// @Summary Update contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body request.UpdateContractRequest true "Changes"
// @Success 200 {object} response.ContractResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/contracts/{id} [patch]
func (h *ContractHandler) Update(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ct, err := h.contracts.Update(c.Request.Context(), tenant, id, req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrNotEditable):
			c.JSON(http.StatusConflict, gin.H{"error": "Signed contracts cannot be edited"})
		case errors.Is(err, contract.ErrEmptyBody):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// @Summary Send contract
// @Description Issue the contract to the customer with a signing link
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.ContractResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/contracts/{id}/send [post]
func (h *ContractHandler) Send(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ct, err := h.contracts.Send(c.Request.Context(), tenant, id)
	if err != nil {
		if errors.Is(err, contract.ErrNotEditable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Contract cannot be sent from its current status"})
			return
		}
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// @Summary Get contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.ContractResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ct, err := h.contracts.Get(c.Request.Context(), tenant, id)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// @Summary Get contract for order
// @Tags contracts
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.ContractResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /staff/orders/{id}/contract [get]
func (h *ContractHandler) GetByOrder(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ct, err := h.contracts.GetByOrder(c.Request.Context(), tenant, orderID)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// @Summary Delete contract
// @Tags contracts
// @Param id path string true "Contract ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /staff/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.contracts.Delete(c.Request.Context(), tenant, id); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Signed contracts cannot be deleted"})
			return
		}
		respondRepoErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ViewByToken serves the customer-facing contract page. The token is the
// authorization; there is no tenant header on this route.
//
// @Summary View contract by signing token
// @Tags contracts
// @Produce json
// @Param token path string true "Signing token"
// @Success 200 {object} response.ContractResponse
// @Failure 404 {object} map[string]string
// @Router /contracts/{token} [get]
func (h *ContractHandler) ViewByToken(c *gin.Context) {
	token, ok := pathUUID(c, "token")
	if !ok {
		return
	}

	ct, err := h.contracts.GetByToken(c.Request.Context(), token)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// @Summary Sign contract
// @Description Customer signs; the signer IP is recorded with the signature
// @Tags contracts
// @Accept json
// @Produce json
// @Param token path string true "Signing token"
// @Param request body request.SignContractRequest true "Signature"
// @Success 200 {object} response.ContractResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /contracts/{token}/sign [post]
func (h *ContractHandler) Sign(c *gin.Context) {
	token, ok := pathUUID(c, "token")
	if !ok {
		return
	}
	var req request.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ct, err := h.contracts.SignByToken(c.Request.Context(), token, usecase.SignContractInput{
		SignerName: req.SignerName,
		Agreed:     req.Agreed,
		SignerIP:   c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrAlreadySigned):
			c.JSON(http.StatusConflict, gin.H{"error": "Contract is already signed"})
		case errors.Is(err, contract.ErrNotSent):
			c.JSON(http.StatusConflict, gin.H{"error": "Contract is not open for signing"})
		case errors.Is(err, contract.ErrMissingSigner), errors.Is(err, contract.ErrNotAgreed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			respondRepoErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}
