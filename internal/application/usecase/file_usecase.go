package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// FileUseCase casos de uso para metadatos de adjuntos.
type FileUseCase struct {
	repo repository.FileRepository
}

// NewFileUseCase construye el caso de uso.
func NewFileUseCase(repo repository.FileRepository) *FileUseCase {
	return &FileUseCase{repo: repo}
}

// Create registra los metadatos de un adjunto para (outlet, period).
func (uc *FileUseCase) Create(in dto.CreateFileRequest) (*dto.FileResponse, error) {
	file := &entity.File{
		ID:        uuid.New().String(),
		OutletID:  in.OutletID,
		PeriodID:  in.PeriodID,
		Path:      in.Path,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(file); err != nil {
		return nil, err
	}
	return toFileResponse(file), nil
}

// ListByOutletAndPeriod devuelve los adjuntos del par (sin orden garantizado).
func (uc *FileUseCase) ListByOutletAndPeriod(outletID, periodID string) ([]*dto.FileResponse, error) {
	files, err := uc.repo.ListByOutletAndPeriod(outletID, periodID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	return out, nil
}

func toFileResponse(f *entity.File) *dto.FileResponse {
	return &dto.FileResponse{ID: f.ID, OutletID: f.OutletID, PeriodID: f.PeriodID, Path: f.Path}
}
