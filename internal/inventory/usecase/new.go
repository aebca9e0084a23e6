package usecase

import (
	"inventory-master/internal/inventory/repository"
	"inventory-master/pkg/log"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
