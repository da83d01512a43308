package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nevilhulspas/caltrack/models"
	"github.com/nevilhulspas/caltrack/services"
	"github.com/nevilhulspas/caltrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Name stored when the request carries no user
const DefaultUser = "Unknown"

type ParseFoodController struct {
	store      services.EntryStore
	inferencer services.NutritionInferencer
	logger     *zap.Logger
}

func NewParseFoodController(store services.EntryStore, inferencer services.NutritionInferencer, logger *zap.Logger) *ParseFoodController {
	return &ParseFoodController{store: store, inferencer: inferencer, logger: logger}
}

// POST /parse-food  { "food": "two eggs and toast", "user": "nevil" }
//
// Undo phrases in the food text short-circuit into soft-deleting the user's
// most recent entry; everything else goes through Claude and is persisted
// best-effort before the parsed nutrition is returned.
func (pc *ParseFoodController) ParseFood(c *gin.Context) {
	var body struct {
		Food string `json:"food" binding:"required"`
		User string `json:"user"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'food' field"})
		return
	}

	user := body.User
	if user == "" {
		user = DefaultUser
	}

	if utils.IsUndoCommand(body.Food) {
		pc.undoLast(c, user)
		return
	}

	nutrition, err := pc.inferencer.ParseFood(body.Food)
	if err != nil {
		pc.logger.Error("Food parse failed", zap.String("user", user), zap.Error(err))

		var apiErr *services.APIError
		var parseErr *services.ParseError
		switch {
		case errors.Is(err, services.ErrNoAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ANTHROPIC_API_KEY not configured"})
		case errors.As(err, &apiErr):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Claude API error", "details": apiErr.Body})
		case errors.As(err, &parseErr):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid JSON from Claude", "raw": parseErr.Raw})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	entry := &models.FoodLog{
		RawInput:     body.Food,
		FoodName:     nutrition.FoodName,
		Calories:     nutrition.Calories,
		ProteinG:     nutrition.ProteinG,
		CarbsG:       nutrition.CarbsG,
		FatG:         nutrition.FatG,
		FiberG:       nutrition.FiberG,
		SugarG:       nutrition.SugarG,
		SodiumMg:     nutrition.SodiumMg,
		SaturatedFat: nutrition.SaturatedFatG,
		Notes:        nutrition.Notes,
		UserName:     user,
		IsDeleted:    false,
		EntryDate:    utils.CalculateEntryDate(time.Now(), nutrition.DateOffsetDays, nutrition.MealTime),
	}

	// Best-effort write: the caller still gets their nutrition estimate
	// even if the row could not be stored.
	if err := pc.store.Insert(entry); err != nil {
		pc.logger.Error("Failed to store food log",
			zap.String("user", user),
			zap.String("raw_input", body.Food),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, nutrition)
}

func (pc *ParseFoodController) undoLast(c *gin.Context, user string) {
	last, err := pc.store.MostRecentFor(user)
	if err != nil {
		pc.logger.Error("Undo lookup failed", zap.String("user", user), zap.Error(err))
	}
	if err != nil || last == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No recent meal found to undo",
			"success": false,
		})
		return
	}

	if err := pc.store.SoftDelete(last.ID.String()); err != nil {
		pc.logger.Error("Undo delete failed", zap.String("id", last.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to undo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Removed: %s", last.FoodName),
		"undone":    true,
		"food_name": last.FoodName,
	})
}
