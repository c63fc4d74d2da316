package adaptor

import (
	"net/http"

	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/apperrors"
	"recipe-sharing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Recipe   *RecipeHandler
	Favorite *FavoriteHandler
	Review   *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Recipe:   NewRecipeHandler(service.Recipe, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
		Review:   NewReviewHandler(service.Review, log),
	}
}

// writeServiceError maps a service failure kind to the transport status code.
// The handlers are the only place this translation happens.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperrors.KindOf(err)
	message := apperrors.MessageOf(err)

	switch kind {
	case apperrors.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, message)

	case apperrors.KindForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, message)

	case apperrors.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, message)

	case apperrors.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, message, nil)

	case apperrors.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
