package handlers

import (
	"fmt"
	"net/http"

	"goods/internal/http/middleware"
	"goods/internal/services"

	"github.com/gin-gonic/gin"
)

// GoodsHandler serves the goods listing and status endpoints.
type GoodsHandler struct {
	Repo services.GoodsStore
}

type lockRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (h GoodsHandler) service(c *gin.Context) services.GoodsService {
	return services.GoodsService{Repo: h.Repo, RequestID: middleware.GetRequestID(c)}
}

// GET /goods?search=wid&limit=10&offset=0
func (h GoodsHandler) List(c *gin.Context) {
	f, err := services.ParseGoodsFilter(c.Query("search"), c.Query("limit"), c.Query("offset"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	goods, err := h.service(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, goods)
}

// POST /lock {"id": 1, "status": "locked"}
func (h GoodsHandler) Lock(c *gin.Context) {
	var req lockRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	status, err := h.service(c).SetStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Good %d status set to %s.", req.ID, status),
		"id":      req.ID,
		"status":  status,
	})
}

// GET /goods/report?search=wid&limit=10&offset=0
func (h GoodsHandler) Report(c *gin.Context) {
	f, err := services.ParseGoodsFilter(c.Query("search"), c.Query("limit"), c.Query("offset"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	goods, err := h.service(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := services.ReportService{RequestID: middleware.GetRequestID(c)}.GoodsReport(f, goods)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "report_failed", "Failed to render report.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
