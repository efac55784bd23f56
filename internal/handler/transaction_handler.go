package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cardbank/transaction-service/internal/command"
	"github.com/cardbank/transaction-service/internal/middleware"
	"github.com/cardbank/transaction-service/internal/models"
)

// TransactionCommander defines the write-side operations used by
// TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(ctx context.Context, cmd command.CreateTransactionCommand) (*command.CreateTransactionResult, error)
	PayInstallment(ctx context.Context, cmd command.PayInstallmentCommand) error
}

// TransactionQuerier defines the read-side operations used by
// TransactionHandler.
type TransactionQuerier interface {
	GetTransaction(ctx context.Context, id string) (*models.TransactionView, error)
	ListInstallments(ctx context.Context, transactionID string) ([]models.InstallmentView, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type InstallmentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateTransactionRequest carries the positive amount magnitude; the stored
// sign is decided by the operation type. Installments is only meaningful for
// PURCHASE_INSTALLMENTS and may be empty.
type CreateTransactionRequest struct {
	AccountID       string               `json:"accountId" validate:"required"`
	OperationTypeID int                  `json:"operationTypeId" validate:"required"`
	Amount          decimal.Decimal      `json:"amount"`
	Installments    []InstallmentRequest `json:"installments"`
}

type CreateTransactionResponse struct {
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

type PayInstallmentRequest struct {
	TransactionID     string          `json:"transactionId" validate:"required"`
	InstallmentNumber int             `json:"installmentNumber" validate:"required,gte=1"`
	AccountID         string          `json:"accountId" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
}

type PayInstallmentResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type ListInstallmentsResponse struct {
	Installments []models.InstallmentView `json:"installments"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	installments := make([]decimal.Decimal, len(req.Installments))
	for i, inst := range req.Installments {
		installments[i] = inst.Amount
	}

	result, err := h.commands.CreateTransaction(c.Request.Context(), command.CreateTransactionCommand{
		AccountID:       req.AccountID,
		OperationTypeID: req.OperationTypeID,
		Amount:          req.Amount,
		Installments:    installments,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, CreateTransactionResponse{
		TransactionID: result.TransactionID,
		Message:       result.Message,
	})
}

func (h *TransactionHandler) PayInstallment(c *gin.Context) {
	var req PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	err := h.commands.PayInstallment(c.Request.Context(), command.PayInstallmentCommand{
		TransactionID:     req.TransactionID,
		InstallmentNumber: req.InstallmentNumber,
		AccountID:         req.AccountID,
		Amount:            req.Amount,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to pay installment")
		return
	}

	c.JSON(http.StatusOK, PayInstallmentResponse{
		Message: "Installment payment successful",
		Success: true,
	})
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	view, err := h.queries.GetTransaction(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *TransactionHandler) ListInstallments(c *gin.Context) {
	views, err := h.queries.ListInstallments(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list installments")
		return
	}
	if views == nil {
		views = []models.InstallmentView{}
	}
	c.JSON(http.StatusOK, ListInstallmentsResponse{Installments: views})
}
