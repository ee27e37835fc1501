package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-insight-be/service"
	"github.com/tieubaoca/pdf-insight-be/types"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func (h *DocumentHandler) HandleGetDocument(c *gin.Context) {
	id := c.Param("doc_id")
	view, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DocumentHandler) HandlePaginateDocuments(c *gin.Context) {
	page := service.DefaultPage
	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil {
			writeError(c, types.NewInvalidInput("page must be an integer"))
			return
		}
		page = p
	}
	limit := service.DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			writeError(c, types.NewInvalidInput("limit must be an integer"))
			return
		}
		limit = l
	}

	views, err := h.documentService.PaginateDocuments(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
