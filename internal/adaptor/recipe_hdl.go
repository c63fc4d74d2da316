package adaptor

import (
	"encoding/json"
	"net/http"

	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	service usecase.RecipeService
	log     *zap.Logger
}

func NewRecipeHandler(service usecase.RecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		log:     log.With(zap.String("handler", "recipe")),
	}
}

// CreateRecipe handles POST /api/recipes (protected)
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), userID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create recipe")
		return
	}

	utils.ResponseCreated(w, "Recipe created", recipe)
}

// GetRecipeByID handles GET /api/recipes/{recipeId} (public)
func (h *RecipeHandler) GetRecipeByID(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")
	if recipeID == "" {
		utils.ResponseBadRequest(w, "Recipe ID is required", nil)
		return
	}

	recipe, err := h.service.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get recipe")
		return
	}

	utils.ResponseSuccess(w, "Recipe fetched", recipe)
}

// ListRecipes handles GET /api/recipes (public)
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	recipes, err := h.service.ListRecipes(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list recipes")
		return
	}

	utils.ResponseSuccess(w, "Recipes fetched", recipes)
}

// UpdateRecipe handles PUT /api/recipes/{recipeId} (protected, owner only)
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	recipeID := chi.URLParam(r, "recipeId")
	if recipeID == "" {
		utils.ResponseBadRequest(w, "Recipe ID is required", nil)
		return
	}

	var req request.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), recipeID, userID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update recipe")
		return
	}

	utils.ResponseSuccess(w, "Recipe updated", recipe)
}

// DeleteRecipe handles DELETE /api/recipes/{recipeId} (protected, owner only)
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	recipeID := chi.URLParam(r, "recipeId")
	if recipeID == "" {
		utils.ResponseBadRequest(w, "Recipe ID is required", nil)
		return
	}

	if err := h.service.DeleteRecipe(r.Context(), recipeID, userID.String()); err != nil {
		writeServiceError(w, h.log, err, "delete recipe")
		return
	}

	utils.ResponseSuccess(w, "Recipe deleted", nil)
}
