package auth

import (
	"context"

	"github.com/jhoicas/personal-api/internal/application/dto"
	"github.com/jhoicas/personal-api/internal/domain"
	"github.com/jhoicas/personal-api/internal/domain/repository"
	"github.com/jhoicas/personal-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del personal: verifica credenciales y emite JWT con el
// rol asignado, para que el middleware RBAC decida sin consultar la DB.
type AuthUseCase struct {
	identities  repository.IdentityRepository
	assignments repository.RoleAssignmentRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(identities repository.IdentityRepository, assignments repository.RoleAssignmentRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{identities: identities, assignments: assignments, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + identidad.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.identities.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrIdentidadNoEncontrada
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrPasswordIncorrecto
	}
	if !identity.IsActive {
		return nil, domain.ErrNoAutorizado
	}

	role := ""
	names, err := uc.assignments.RoleNamesByIdentityIDs(ctx, []string{identity.ID})
	if err != nil {
		return nil, err
	}
	if len(names[identity.ID]) > 0 {
		role = names[identity.ID][0]
	}

	storeID := ""
	if identity.StoreID != nil {
		storeID = *identity.StoreID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.ID, storeID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Identity: dto.IdentitySummary{
			ID:        identity.ID,
			Email:     identity.Email,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			Role:      role,
		},
	}, nil
}
