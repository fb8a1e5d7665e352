package handler

import (
	"net/http"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/service"
	"github.com/gin-gonic/gin"
)

// Services bundles the entity services served over HTTP.
type Services struct {
	Portfolio    *service.PortfolioService
	Testimonials *service.TestimonialService
	Stats        *service.StatsService
	Inquiries    *service.InquiryService
}

type handler struct {
	svc Services
}

// RegisterContentRoutes mounts the content API on rg. contactGuards run before
// the public contact form submission (rate limiting).
func RegisterContentRoutes(rg gin.IRouter, svc Services, contactGuards ...gin.HandlerFunc) {
	h := &handler{svc: svc}

	rg.GET("/", h.root)

	rg.GET("/portfolio", h.listPortfolio)
	rg.POST("/portfolio", h.createPortfolio)
	rg.PUT("/portfolio/:id", h.updatePortfolio)
	rg.DELETE("/portfolio/:id", h.deletePortfolio)

	rg.GET("/testimonials", h.listTestimonials)
	rg.POST("/testimonials", h.createTestimonial)

	rg.GET("/stats", h.listStats)
	rg.PUT("/stats/:id", h.updateStats)

	rg.POST("/contact", append(contactGuards, h.createInquiry)...)
	rg.GET("/contact", h.listInquiries)
	rg.PUT("/contact/:id/status", h.updateInquiryStatus)
}

func (h *handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ContentCraft API is running"})
}

func (h *handler) listPortfolio(c *gin.Context) {
	var q content.PortfolioQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, content.DecodeError("query", err))
		return
	}
	items, err := h.svc.Portfolio.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handler) createPortfolio(c *gin.Context) {
	var in content.PortfolioItemCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	item, err := h.svc.Portfolio.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handler) updatePortfolio(c *gin.Context) {
	var in content.PortfolioItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	item, err := h.svc.Portfolio.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handler) deletePortfolio(c *gin.Context) {
	if err := h.svc.Portfolio.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}

func (h *handler) listTestimonials(c *gin.Context) {
	var q content.TestimonialQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, content.DecodeError("query", err))
		return
	}
	list, err := h.svc.Testimonials.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) createTestimonial(c *gin.Context) {
	var in content.TestimonialCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	t, err := h.svc.Testimonials.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handler) listStats(c *gin.Context) {
	stats, err := h.svc.Stats.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) updateStats(c *gin.Context) {
	var in content.StatsUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	st, err := h.svc.Stats.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *handler) createInquiry(c *gin.Context) {
	var in content.ContactInquiryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	inq, err := h.svc.Inquiries.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}

func (h *handler) listInquiries(c *gin.Context) {
	var q content.InquiryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, content.DecodeError("query", err))
		return
	}
	// an explicit limit=0 is out of range here; the service treats 0 as "default"
	if err := content.Validate(q); err != nil {
		writeError(c, err)
		return
	}
	list, err := h.svc.Inquiries.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) updateInquiryStatus(c *gin.Context) {
	var in content.ContactInquiryUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, content.DecodeError("body", err))
		return
	}
	inq, err := h.svc.Inquiries.UpdateStatus(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}
