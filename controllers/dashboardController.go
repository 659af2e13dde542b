package controllers

import (
	"context"
	"golang-medtrackbackend/models"
	"golang-medtrackbackend/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetDashboard returns the day's adherence picture in one response:
// the registry, today's log, taken/total progress and the schedule groups.
func GetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		medOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		medCursor, err := medicationCollection.Find(ctx, bson.M{"user_id": uid}, medOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching medications"})
			return
		}
		var medications []models.Medication
		if err = medCursor.All(ctx, &medications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while decoding medications"})
			return
		}

		start, end := services.DayBounds(time.Now())
		logOptions := options.Find().SetSort(bson.D{{Key: "taken_at", Value: -1}})
		logCursor, err := medicationLogCollection.Find(ctx, bson.M{
			"user_id":  uid,
			"taken_at": bson.M{"$gte": start, "$lte": end},
		}, logOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching today's logs"})
			return
		}
		var todaysLogs []models.MedicationLog
		if err = logCursor.All(ctx, &todaysLogs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while decoding today's logs"})
			return
		}

		taken := make(map[string]bool, len(medications))
		for _, medication := range medications {
			taken[medication.MedicationID] = services.IsTakenToday(medication.MedicationID, todaysLogs)
		}

		response := gin.H{
			"progress":    services.Progress(medications, todaysLogs),
			"groups":      services.GroupBySchedule(medications),
			"taken_today": taken,
			"todays_logs": todaysLogs,
			"medications": medications,
		}
		if len(todaysLogs) > 0 {
			response["last_taken_at"] = todaysLogs[0].TakenAt
		}

		c.JSON(http.StatusOK, response)
	}
}
