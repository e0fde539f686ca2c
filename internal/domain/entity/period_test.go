package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/performance-hub/internal/domain/entity"
)

// La etiqueta de periodo siempre lleva el mes a dos dígitos.
func TestPeriodLabel_MesConCeroALaIzquierda(t *testing.T) {
	p := entity.Period{Month: 3, Year: 2024}
	assert.Equal(t, "2024-03", p.Label(), "mes 3 debe formatearse como 03")
}

func TestPeriodLabel_MesDeDosDigitos(t *testing.T) {
	p := entity.Period{Month: 12, Year: 2023}
	assert.Equal(t, "2023-12", p.Label())
}
