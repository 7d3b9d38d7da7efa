package repository

import (
	"context"

	"github.com/jhoicas/personal-api/internal/domain/entity"
)

// RoleRepository puerto de consulta de roles (solo lectura para el motor;
// Create existe para el seed).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
}

// RoleAssignmentRepository puerto para el vínculo identidad-rol.
type RoleAssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.RoleAssignment) error
	// DeleteByIdentityID elimina todas las asignaciones de la identidad
	// (reemplazo completo de rol; es el único DELETE del motor).
	DeleteByIdentityID(ctx context.Context, identityID string) error
	// RoleNamesByIdentityIDs devuelve los nombres de rol por identidad.
	RoleNamesByIdentityIDs(ctx context.Context, identityIDs []string) (map[string][]string, error)
}
