package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
)

// ProfileImageRepository stores profile pictures keyed by (user id, role),
// so read-only seed records can still carry an uploaded image.
type ProfileImageRepository interface {
	Find(ctx context.Context, userID int, role entity.Role) (*entity.ProfileImage, error)
	Put(ctx context.Context, image entity.ProfileImage) error
}
