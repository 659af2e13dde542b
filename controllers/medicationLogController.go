package controllers

import (
	"context"
	"fmt"
	"golang-medtrackbackend/database"
	"golang-medtrackbackend/models"
	"golang-medtrackbackend/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var medicationLogCollection *mongo.Collection = database.OpenCollection(database.Client, "medication_log")

func MarkTaken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		medicationID := c.Param("medication_id")

		type RequestBody struct {
			Notes string `json:"notes"`
		}
		var requestBody RequestBody
		if c.Request.ContentLength > 0 {
			if err := c.BindJSON(&requestBody); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
		}

		// The entry must point at a medication the caller owns.
		var medication models.Medication
		err := medicationCollection.FindOne(ctx, bson.M{"medication_id": medicationID, "user_id": uid}).Decode(&medication)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}

		// At most one active entry per medication per day.
		start, end := services.DayBounds(time.Now())
		count, err := medicationLogCollection.CountDocuments(ctx, bson.M{
			"medication_id": medicationID,
			"user_id":       uid,
			"taken_at":      bson.M{"$gte": start, "$lte": end},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while checking today's log"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Medication already marked as taken today"})
			return
		}

		entry := models.MedicationLog{
			ID:           primitive.NewObjectID(),
			MedicationID: &medicationID,
			UserID:       uid,
			TakenAt:      time.Now(),
			Notes:        requestBody.Notes,
		}
		entry.LogID = entry.ID.Hex()

		_, insertErr := medicationLogCollection.InsertOne(ctx, entry)
		if insertErr != nil {
			msg := fmt.Sprintf("Error while inserting medication log: %s", insertErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medication_logs",
			Action: "created",
			ID:     entry.LogID,
		})

		c.JSON(http.StatusOK, entry)
	}
}

func UndoTaken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		medicationID := c.Param("medication_id")

		start, end := services.DayBounds(time.Now())
		filter := bson.M{
			"medication_id": medicationID,
			"user_id":       uid,
			"taken_at":      bson.M{"$gte": start, "$lte": end},
		}

		var entry models.MedicationLog
		findOptions := options.FindOne().SetSort(bson.D{{Key: "taken_at", Value: -1}})
		err := medicationLogCollection.FindOne(ctx, filter, findOptions).Decode(&entry)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No log entry for this medication today"})
			return
		}

		_, err = medicationLogCollection.DeleteOne(ctx, bson.M{"_id": entry.ID})
		if err != nil {
			msg := fmt.Sprintf("Error while deleting medication log: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medication_logs",
			Action: "deleted",
			ID:     entry.LogID,
		})

		c.JSON(http.StatusOK, gin.H{"message": "Medication log deleted successfully"})
	}
}

func DeleteMedicationLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		logID := c.Param("log_id")

		result, err := medicationLogCollection.DeleteOne(ctx, bson.M{"log_id": logID, "user_id": uid})
		if err != nil {
			msg := fmt.Sprintf("Error while deleting medication log: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication log not found"})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medication_logs",
			Action: "deleted",
			ID:     logID,
		})

		c.JSON(http.StatusOK, gin.H{"message": "Medication log deleted successfully"})
	}
}

func GetTodaysLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		start, end := services.DayBounds(time.Now())

		matchStage := bson.D{{Key: "$match", Value: bson.D{
			{Key: "user_id", Value: uid},
			{Key: "taken_at", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
		}}}
		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "taken_at", Value: -1}}}}
		lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "medication"},
			{Key: "localField", Value: "medication_id"},
			{Key: "foreignField", Value: "medication_id"},
			{Key: "as", Value: "medication"},
		}}}
		unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$medication"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}

		result, err := medicationLogCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupStage, unwindStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching today's logs"})
			return
		}

		var logs []bson.M
		if err = result.All(ctx, &logs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while decoding today's logs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"total": len(logs), "logs": logs})
	}
}

func GetMedicationLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		medicationID := c.Param("medication_id")

		findOptions := options.Find().SetSort(bson.D{{Key: "taken_at", Value: -1}})
		cursor, err := medicationLogCollection.Find(ctx, bson.M{"medication_id": medicationID, "user_id": uid}, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching medication logs"})
			return
		}

		var logs []models.MedicationLog
		if err = cursor.All(ctx, &logs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while decoding medication logs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"total": len(logs), "logs": logs})
	}
}
