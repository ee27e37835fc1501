package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-insight-be/types"
)

func writeError(c *gin.Context, err error) {
	c.JSON(types.StatusOf(err), types.ErrorResponse{
		Status: "error",
		Detail: err.Error(),
	})
}
