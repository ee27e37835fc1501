package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-insight-be/service"
	"github.com/tieubaoca/pdf-insight-be/types"
)

type UploadHandler struct {
	documentService service.DocumentService
}

func NewUploadHandler(documentService service.DocumentService) *UploadHandler {
	return &UploadHandler{
		documentService: documentService,
	}
}

func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status: "error",
			Detail: "file is required",
		})
		return
	}
	defer file.Close()

	const maxSize = 50 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status: "error",
			Detail: "File too large",
		})
		return
	}

	view, err := h.documentService.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
