package handler

import (
	"net/http"

	"portfolio-backend/internal/cloudinary"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GalleryHandler interface {
	ListPhotos(c *gin.Context)
}

type galleryHandler struct {
	client *cloudinary.Client
	audit  *service.AuditRecorder
	logger *zap.Logger
}

func NewGalleryHandler(client *cloudinary.Client, audit *service.AuditRecorder, logger *zap.Logger) GalleryHandler {
	return &galleryHandler{client: client, audit: audit, logger: logger}
}

type GalleryRequest struct {
	Folder     string `json:"pasta"`
	NextCursor string `json:"next_cursor"`
}

type photo struct {
	URL  string `json:"url"`
	Name string `json:"nome"`
}

// ListPhotos proxies one page of the image host's folder listing.
func (h *galleryHandler) ListPhotos(c *gin.Context) {
	var req GalleryRequest
	_ = c.ShouldBindJSON(&req) // an empty body is handled by the folder check

	if req.Folder == "" {
		h.audit.Record("Erro de validação", "O parâmetro 'pasta' não foi informado", requestInfo(c))
		c.JSON(http.StatusBadRequest, gin.H{"erro": "O parâmetro 'pasta' é obrigatório"})
		return
	}

	h.audit.Record("Requisição de galeria", "Pasta '"+req.Folder+"' solicitada", requestInfo(c))

	page, err := h.client.ListByFolder(c.Request.Context(), req.Folder, req.NextCursor)
	if err != nil {
		h.logger.Error("Failed to fetch gallery page", zap.Error(err))
		h.audit.Record("Erro ao buscar fotos", err.Error(), requestInfo(c))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar fotos, tente novamente mais tarde!"})
		return
	}

	photos := make([]photo, 0, len(page.Resources))
	for _, res := range page.Resources {
		photos = append(photos, photo{URL: res.URL, Name: res.PublicID})
	}

	h.audit.Record("Galeria recuperada", "Fotos retornadas da pasta '"+req.Folder+"'", requestInfo(c))
	c.JSON(http.StatusOK, gin.H{
		"fotos":          photos,
		"proxima_pagina": page.NextCursor,
	})
}
