package auth

import (
	"context"
	"errors"
	"fmt"
)

// Role роль пользователя платформы
type Role string

const (
	RolePetOwner   Role = "pet_owner"
	RolePetCompany Role = "pet_company"
	RoleSuperadmin Role = "superadmin"
)

var (
	// ErrUnauthenticated возвращается при отсутствии или недействительности учётных данных
	ErrUnauthenticated = errors.New("auth: unauthenticated")

	// ErrForbidden возвращается, когда роль пользователя недостаточна
	ErrForbidden = errors.New("auth: forbidden")
)

// CompanyRoles роли, которым доступны операции компании
var CompanyRoles = []Role{RolePetCompany, RoleSuperadmin}

// OwnerRoles роли, которым доступны операции владельца питомца
var OwnerRoles = []Role{RolePetOwner, RoleSuperadmin}

// Principal аутентифицированный пользователь
type Principal struct {
	ID   string
	Role Role
}

// Authenticator проверяет bearer-токен и возвращает пользователя
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

// Authorizer проверяет роль пользователя
type Authorizer struct{}

// NewAuthorizer создает Authorizer
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Require возвращает nil, если роль пользователя входит в allowed
// ErrUnauthenticated для nil principal, ErrForbidden для недостаточной роли
func (a *Authorizer) Require(principal *Principal, allowed ...Role) error {
	if principal == nil || principal.ID == "" {
		return ErrUnauthenticated
	}

	for _, role := range allowed {
		if principal.Role == role {
			return nil
		}
	}

	return fmt.Errorf("%w: role %q is not allowed", ErrForbidden, principal.Role)
}

type principalKey struct{}

// WithPrincipal кладёт пользователя в контекст
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext достаёт пользователя из контекста
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
