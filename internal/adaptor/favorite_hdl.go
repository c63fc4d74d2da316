package adaptor

import (
	"net/http"

	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// AddFavorite handles POST /api/recipes/{recipeId}/favorite (protected)
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
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

	favorite, err := h.service.AddFavorite(r.Context(), userID.String(), recipeID)
	if err != nil {
		writeServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseCreated(w, "Recipe favorited", favorite)
}

// RemoveFavorite handles DELETE /api/recipes/{recipeId}/favorite (protected)
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.RemoveFavorite(r.Context(), userID.String(), recipeID); err != nil {
		writeServiceError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite removed", nil)
}

// ListFavorites handles GET /api/users/{userId}/favorites (protected)
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites fetched", favorites)
}
