package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Separadores entre a mensagem do erro e a causa mais específica.
const (
	SepNone  = ""
	SepColon = ": "
)

func Message(c *gin.Context, status int, mensaje string) {
	c.JSON(status, gin.H{"mensaje": mensaje})
}

func BadRequest(c *gin.Context, mensaje string) {
	Message(c, http.StatusBadRequest, mensaje)
}

func NotFound(c *gin.Context, mensaje string) {
	Message(c, http.StatusNotFound, mensaje)
}

// Internal writes a 500 with the message and the error detail as-is.
func Internal(c *gin.Context, mensaje, detail string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"mensaje": mensaje,
		"error":   detail,
	})
}

// DataAccess writes a 500 whose "error" is err's message followed by its
// most specific cause, joined by sep.
func DataAccess(c *gin.Context, mensaje string, err error, sep string) {
	Internal(c, mensaje, Detail(err, sep))
}

// Validation writes the aggregated per-field messages.
func Validation(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}
