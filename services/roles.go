package services

import (
	"context"
	"log"

	"Gin_postgres_redis_library_api/models"
)

// RoleService 就是角色解析器：getRole / setRole（只写一次）
type RoleService struct {
	store RoleStore
	cache RoleCache
}

func NewRoleService(store RoleStore, cache RoleCache) *RoleService {
	return &RoleService{store: store, cache: cache}
}

// GetRole resolves the persisted role for a user id. A zero id or a missing
// record resolves to the empty role — absence is a normal state, not an error.
func (s *RoleService) GetRole(ctx context.Context, userID int64) (models.Role, error) {
	if userID == 0 {
		log.Printf("roles: no user id provided, resolving empty role")
		return "", nil
	}
	if s.cache != nil {
		if role, ok := s.cache.Get(ctx, userID); ok {
			return role, nil
		}
	}
	rec, err := s.store.FindUserRole(ctx, userID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		log.Printf("roles: user %d has no role", userID)
		return "", nil
	}
	log.Printf("roles: user %d has role %s", userID, rec.Role)
	if s.cache != nil {
		s.cache.Set(ctx, userID, rec.Role)
	}
	return rec.Role, nil
}

// SetRole creates the role record for a user. Roles are immutable once set;
// a second attempt fails with ErrRoleAlreadySet no matter which role it asks
// for. Store failures (e.g. the duplicate-key race) surface as-is.
func (s *RoleService) SetRole(ctx context.Context, userID int64, role models.Role) (*models.UserRole, error) {
	current, err := s.GetRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current != "" {
		log.Printf("roles: user %d already has role %s", userID, current)
		return nil, ErrRoleAlreadySet
	}

	rec := &models.UserRole{UserID: userID, Role: role}
	if err := s.store.CreateUserRole(ctx, rec); err != nil {
		log.Printf("roles: creating role for user %d: %v", userID, err)
		return nil, err
	}
	log.Printf("roles: created role %s for user %d", role, userID)
	if s.cache != nil {
		s.cache.Set(ctx, userID, role)
	}
	return rec, nil
}
