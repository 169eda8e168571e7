package repository

import (
	"context"

	"oncoportal/internal/domain/entity"
	domainRepo "oncoportal/internal/domain/repository"
	"oncoportal/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

type profileImageRepository struct {
	store store.Store
	log   *logrus.Logger
}

func NewProfileImageRepository(s store.Store, log *logrus.Logger) domainRepo.ProfileImageRepository {
	return &profileImageRepository{store: s, log: log}
}

func (r *profileImageRepository) Find(ctx context.Context, userID int, role entity.Role) (*entity.ProfileImage, error) {
	images, err := store.LoadAll[entity.ProfileImage](ctx, r.store, r.log, store.CollectionProfileImages)
	if err != nil {
		return nil, err
	}
	for i := range images {
		if images[i].UserID == userID && images[i].Role == role {
			return &images[i], nil
		}
	}
	return nil, nil
}

func (r *profileImageRepository) Put(ctx context.Context, image entity.ProfileImage) error {
	images, err := store.LoadAll[entity.ProfileImage](ctx, r.store, r.log, store.CollectionProfileImages)
	if err != nil {
		return err
	}
	for i := range images {
		if images[i].UserID == image.UserID && images[i].Role == image.Role {
			images[i].Image = image.Image
			return store.SaveAll(ctx, r.store, store.CollectionProfileImages, images)
		}
	}
	return store.SaveAll(ctx, r.store, store.CollectionProfileImages, append(images, image))
}
