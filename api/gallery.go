package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zanzibar-explore/tours-backend/internal/service/gallery"
)

type GalleryHandler struct {
	service gallery.GalleryUseCase
}

func NewGalleryHandler(service gallery.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.grouped)
	router.GET("/category/:category", h.byCategory)
	router.GET("/images", h.images)
}

func (h *GalleryHandler) grouped(c *gin.Context) {
	grouped, err := h.service.Grouped(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *GalleryHandler) byCategory(c *gin.Context) {
	urls, err := h.service.URLsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, urls)
}

func (h *GalleryHandler) images(c *gin.Context) {
	images, err := h.service.Images(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}
