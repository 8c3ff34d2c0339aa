package usecases

import (
	"context"

	"bedrijvengids.backend/internal/domain/entities"
	"bedrijvengids.backend/internal/domain/repositories"
	"bedrijvengids.backend/pkg/utils"
)

// FacilityUsecase exposes the directory read model
type FacilityUsecase struct {
	facilityRepo repositories.FacilityRepository
}

// NewFacilityUsecase creates a new facility usecase
func NewFacilityUsecase(facilityRepo repositories.FacilityRepository) *FacilityUsecase {
	return &FacilityUsecase{facilityRepo: facilityRepo}
}

// GetBySlug returns a single listing
func (u *FacilityUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	return u.facilityRepo.GetBySlug(ctx, slug)
}

// List returns listings matching the filter plus pagination metadata
func (u *FacilityUsecase) List(ctx context.Context, filter entities.FacilityFilter, page, limit int) ([]*entities.Facility, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)

	facilities, total, err := u.facilityRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	return facilities, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
