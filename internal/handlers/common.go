package handlers

import (
	"fleetflow/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseIDParam reads a path parameter as an ObjectID, writing a 400 response
// itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
