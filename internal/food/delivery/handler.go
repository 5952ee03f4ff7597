package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"reservia-backend/internal/food/domain"
	"reservia-backend/internal/food/dto"
	"reservia-backend/internal/food/usecase"
	"reservia-backend/pkg/apierr"
)

// FoodHandler handles listing-related HTTP requests
type FoodHandler struct {
	foods usecase.FoodUsecase
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(foods usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{
		foods: foods,
	}
}

// AddFood creates a listing from the request body
// POST /add
func (h *FoodHandler) AddFood(c *gin.Context) {
	var food domain.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
		return
	}

	id, err := h.foods.Add(c.Request.Context(), &food)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GetFoods lists foods. Without page/limit query parameters it returns the
// whole collection; with them it returns the requested window.
// GET /foods?page=2&limit=5
func (h *FoodHandler) GetFoods(c *gin.Context) {
	pageQ := c.Query("page")
	limitQ := c.Query("limit")

	if pageQ == "" && limitQ == "" {
		foods, err := h.foods.GetAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, foods)
		return
	}

	page, err := parseQueryInt(pageQ, 1)
	if err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, "page must be a number")
		return
	}
	limit, err := parseQueryInt(limitQ, 10)
	if err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, "limit must be a number")
		return
	}

	foods, err := h.foods.GetPage(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// GetFoodByID fetches one listing
// GET /foods/:id
func (h *FoodHandler) GetFoodByID(c *gin.Context) {
	food, err := h.foods.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// GetFoodsLength returns the total listing count
// GET /api/foods-length
func (h *FoodHandler) GetFoodsLength(c *gin.Context) {
	length, err := h.foods.Length(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"length": length})
}

// SearchFoods performs a case-insensitive name search
// GET /api/foods/search?search=chicken
func (h *FoodHandler) SearchFoods(c *gin.Context) {
	foods, err := h.foods.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// GetMyFoods returns the listings added by one owner
// GET /api/my-added/foods?uid=u1
func (h *FoodHandler) GetMyFoods(c *gin.Context) {
	foods, err := h.foods.GetByOwner(c.Request.Context(), c.Query("uid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// GetTopFoods returns the most ordered listings
// GET /top-foods
func (h *FoodHandler) GetTopFoods(c *gin.Context) {
	foods, err := h.foods.Top(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// UpdateStock mutates only count/quantity of a listing
// PATCH /food?id=...
func (h *FoodHandler) UpdateStock(c *gin.Context) {
	var update dto.StockUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
		return
	}

	modified, err := h.foods.UpdateStock(c.Request.Context(), c.Query("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// UpdateFood mutates the full listing metadata
// PATCH /api/food/update?id=...
func (h *FoodHandler) UpdateFood(c *gin.Context) {
	var update dto.DetailsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
		return
	}

	modified, err := h.foods.UpdateDetails(c.Request.Context(), c.Query("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

func parseQueryInt(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidID, "invalid id format")
	case errors.Is(err, usecase.ErrInvalidInput):
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		apierr.JSON(c, http.StatusNotFound, apierr.KindNotFound, "food not found")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
		apierr.JSON(c, http.StatusInternalServerError, apierr.KindStoreError, "store operation failed")
	}
}
