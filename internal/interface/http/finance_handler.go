package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/pkg/response"
)

type FinanceHandler struct {
	crudHandler[entity.FinanceTransaction, *application.TransactionInput]
	summary *application.FinanceService
}

func NewFinanceHandler(svc *application.FinanceService, logger *logrus.Logger) *FinanceHandler {
	return &FinanceHandler{
		crudHandler: crudHandler[entity.FinanceTransaction, *application.TransactionInput]{
			svc:      svc,
			newInput: func() *application.TransactionInput { return &application.TransactionInput{} },
			msgs: crudMessages{
				created: "Transaction created",
				updated: "Transaction updated",
				deleted: "Transaction deleted",
			},
			renderer: renderer{logger: logger, style: firstError, notFound: "Transaction not found or access denied"},
		},
		summary: svc,
	}
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	s, err := h.summary.Summary(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, s)
}
