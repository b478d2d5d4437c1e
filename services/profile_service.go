package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	profile_cache "github.com/genzsoft/ant2025-storefront-backend/cache"
	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

var profileManager *profile_cache.Manager

// InitProfileCache wires the shared profile cache manager. Call once at
// startup, after Redis is connected.
func InitProfileCache() {
	store := profile_cache.NewRedisStore(config.RedisClient)
	profileManager = profile_cache.NewManager(store, FetchUserProfile)
}

func GetProfileManager() *profile_cache.Manager {
	if profileManager == nil {
		panic("profile cache not initialized, call InitProfileCache first")
	}
	return profileManager
}

// FetchUserProfile resolves the session's user record into a profile.
// It is the fetch collaborator behind the profile cache.
func FetchUserProfile(ctx context.Context, session *models.SessionUser) (*models.UserProfile, error) {
	var user models.User
	err := config.StoreGorm.WithContext(ctx).First(&user, "id = ?", session.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s not found", session.UserID)
	}
	if err != nil {
		return nil, err
	}
	return user.ToProfile(), nil
}
