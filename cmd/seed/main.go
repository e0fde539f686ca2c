// seed crea el esquema y el usuario admin inicial. Sin admin no hay forma de
// dar de alta más usuarios (POST /api/users exige rol admin), así que este
// comando rompe el huevo-gallina.
//
// Uso: go run ./cmd/seed
// Variables: DATABASE_URL (o DB_*), ADMIN_USERNAME, ADMIN_PASSWORD.
// Es idempotente: si el admin ya existe, no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/infrastructure/postgres"
	"github.com/tu-usuario/performance-hub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_PASSWORD es obligatorio")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migración del esquema: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %q ya existe, nada que hacer\n", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Esquema migrado y admin %q creado (id %s)\n", username, admin.ID)
}
