package repository

import "github.com/tu-usuario/performance-hub/internal/domain/entity"

// FileRepository puerto de persistencia para File (metadatos de adjuntos).
type FileRepository interface {
	Create(file *entity.File) error
	ListByOutletAndPeriod(outletID, periodID string) ([]*entity.File, error)
}
