package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-insight-be/service"
)

// InsightHandler serves the model-backed endpoints: summarization and
// question answering over a stored document's text.
type InsightHandler struct {
	documentService service.DocumentService
}

func NewInsightHandler(documentService service.DocumentService) *InsightHandler {
	return &InsightHandler{
		documentService: documentService,
	}
}

func (h *InsightHandler) HandleSummarize(c *gin.Context) {
	id := c.Param("doc_id")
	res, err := h.documentService.Summarize(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InsightHandler) HandleQuery(c *gin.Context) {
	id := c.Param("doc_id")
	question := c.Param("question")
	res, err := h.documentService.Query(c.Request.Context(), id, question)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
