package handlers

import (
	"fleetops/internal/middleware"
	"fleetops/internal/models"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// actorFrom pulls the authenticated actor off the request, writing the 401
// itself when the auth middleware did not run.
func actorFrom(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
	}
	return actor, ok
}

// idParam parses the :id path segment as an object id.
func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// vehicleIDQuery parses the optional vehicle_id query parameter; absence means
// all vehicles.
func vehicleIDQuery(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Query("vehicle_id")
	if raw == "" || raw == models.FilterAll {
		return primitive.NilObjectID, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// dateRangeQuery parses the optional start_date/end_date query parameters.
// Range validity (start after end) is the service layer's call, not ours.
func dateRangeQuery(c *gin.Context) (models.DateRange, bool) {
	var dateRange models.DateRange

	if raw := c.Query("start_date"); raw != "" {
		start, err := utils.ParseDate(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid start_date, expected YYYY-MM-DD")
			return dateRange, false
		}
		dateRange.Start = start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := utils.ParseDate(raw)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid end_date, expected YYYY-MM-DD")
			return dateRange, false
		}
		dateRange.End = end
	}

	return dateRange, true
}
