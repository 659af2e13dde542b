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

var medicationCollection *mongo.Collection = database.OpenCollection(database.Client, "medication")

func GetMedications() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := medicationCollection.Find(ctx, bson.M{"user_id": uid}, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching medications"})
			return
		}

		var medications []models.Medication
		if err = cursor.All(ctx, &medications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while decoding medications"})
			return
		}

		response := gin.H{
			"total":       len(medications),
			"medications": medications,
		}

		c.JSON(http.StatusOK, response)
	}
}

func GetMedication() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		medicationID := c.Param("medication_id")
		var medication models.Medication

		err := medicationCollection.FindOne(ctx, bson.M{"medication_id": medicationID, "user_id": uid}).Decode(&medication)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		c.JSON(http.StatusOK, medication)
	}
}

func CreateMedication() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authenticated"})
			return
		}

		var medication models.Medication
		if err := c.BindJSON(&medication); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		validationError := validate.Struct(medication)
		if validationError != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationError.Error()})
			return
		}

		medication.CreatedAt, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		medication.UpdatedAt, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		medication.ID = primitive.NewObjectID()
		medication.MedicationID = medication.ID.Hex()
		medication.UserID = uid

		_, insertErr := medicationCollection.InsertOne(ctx, medication)
		if insertErr != nil {
			msg := fmt.Sprintf("Error while inserting medication: %s", insertErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medications",
			Action: "created",
			ID:     medication.MedicationID,
		})

		c.JSON(http.StatusOK, medication)
	}
}

func UpdateMedication() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		medicationID := c.Param("medication_id")

		var medication models.Medication
		if err := c.BindJSON(&medication); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Owner and identifier never change; only the supplied fields do.
		var updateObj primitive.D

		if medication.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: medication.Name})
		}
		if medication.Dosage != nil {
			updateObj = append(updateObj, bson.E{Key: "dosage", Value: medication.Dosage})
		}
		if medication.Frequency != nil {
			if err := validate.Var(*medication.Frequency, "eq=once|eq=twice|eq=thrice|eq=every_4_hours|eq=every_6_hours|eq=every_8_hours|eq=as_needed"); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid frequency value"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "frequency", Value: medication.Frequency})
		}
		if medication.Time != nil {
			updateObj = append(updateObj, bson.E{Key: "time", Value: medication.Time})
		}
		if medication.Notes != "" {
			updateObj = append(updateObj, bson.E{Key: "notes", Value: medication.Notes})
		}

		medication.UpdatedAt, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: medication.UpdatedAt})

		filter := bson.M{"medication_id": medicationID, "user_id": uid}

		result, err := medicationCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("Medication update failed: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medications",
			Action: "updated",
			ID:     medicationID,
		})

		c.JSON(http.StatusOK, gin.H{"message": "Medication updated successfully", "result": result})
	}
}

func DeleteMedication() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		medicationID := c.Param("medication_id")
		if medicationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Medication ID is required"})
			return
		}

		result, err := medicationCollection.DeleteOne(ctx, bson.M{"medication_id": medicationID, "user_id": uid})
		if err != nil {
			msg := fmt.Sprintf("Error while deleting medication: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}

		// A deleted medication takes its history with it.
		_, err = medicationLogCollection.DeleteMany(ctx, bson.M{"medication_id": medicationID, "user_id": uid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while deleting medication logs"})
			return
		}

		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medications",
			Action: "deleted",
			ID:     medicationID,
		})
		services.Hub.BroadcastChange(uid, services.ChangeEvent{
			Entity: "medication_logs",
			Action: "deleted",
			ID:     medicationID,
		})

		c.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
	}
}
