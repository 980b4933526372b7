package payroll

import (
	"net/http"

	"go-waterbook/internal/shared/apperror"
	"go-waterbook/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMonthlySalary(c *gin.Context) {
	var q MonthlySalaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Parameter tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetMonthlySalary(c.Request.Context(), q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	// Bulan kosong tetap jawaban valid: semua total nol, bukan error
	if resp.DaysActive == 0 {
		response.SuccessWithMessage(c, http.StatusOK, resp, "Tidak ada entri penjualan untuk bulan tersebut")
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
