package mcp

import "github.com/gin-gonic/gin"

type IHandler interface {
	Handle(c *gin.Context)
}
