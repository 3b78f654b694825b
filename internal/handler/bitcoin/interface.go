package bitcoin

import "github.com/gin-gonic/gin"

type IHandler interface {
	GetUTXO(c *gin.Context)
	GetBlockStats(c *gin.Context)
	AnalyzeBitcoinFlow(c *gin.Context)
}
