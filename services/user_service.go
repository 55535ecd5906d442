// Use-case layer; orchestrates business rules, not HTTP or SQL details.

package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Thammasok/user-api/apperrors"
	"github.com/Thammasok/user-api/events"
	"github.com/Thammasok/user-api/models"
	"github.com/Thammasok/user-api/repositories"
)

// UserService lists all use-cases the handlers can call. The context
// carries the request correlation id for cache calls and event tagging.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	CountUsers(ctx context.Context) (int64, error)
}

// userService depends on the repository plus two optional collaborators:
// a Redis client for the read cache and a broker publisher for domain
// events. Both are nil-safe.
type userService struct {
	repo      repositories.UserRepository
	rdb       *redis.Client
	publisher events.Publisher
}

// NewUserService constructs a service with all dependencies injected.
func NewUserService(repo repositories.UserRepository, rdb *redis.Client, publisher events.Publisher) UserService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &userService{repo: repo, rdb: rdb, publisher: publisher}
}

// userCacheTTL is how long a cached user stays in Redis before expiring.
const userCacheTTL = 10 * time.Minute

func cacheKeyUser(id uuid.UUID) string {
	return "user:" + id.String()
}

// isValidEmail is deliberately permissive: "a@b" fails, "a@b.c" passes.
// Not RFC-compliant, by contract.
func isValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// GetAllUsers passes through to the repository; a storage failure
// surfaces as an internal error.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}
	return users, nil
}

// GetUserByID returns a user, preferring the Redis cache and falling
// back to the database.
func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}
	if u == nil {
		return nil, apperrors.NotFound("User with id %s not found", id)
	}

	s.cacheSet(ctx, u)
	return u, nil
}

// CreateUser validates email format, email uniqueness, then name — in
// that order — before persisting. The order is contractual: when several
// fields are invalid at once, the email-format error wins.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if !isValidEmail(req.Email) {
		return nil, apperrors.BadRequest("Invalid email format")
	}

	existing, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User with email %s already exists", req.Email)
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.BadRequest("Name cannot be empty")
	}

	u, err := s.repo.Create(req.Name, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}

	s.cacheSet(ctx, u)
	s.publish(ctx, models.EventUserCreated, *u)
	return u, nil
}

// UpdateUser applies a partial update. A provided email must be well
// formed and not owned by another user; a provided name must be non-empty
// after trimming. An empty request returns the user unchanged.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("User with id %s not found", id)
	}

	if req.Email != nil {
		if !isValidEmail(*req.Email) {
			return nil, apperrors.BadRequest("Invalid email format")
		}
		owner, err := s.repo.FindByEmail(*req.Email)
		if err != nil {
			return nil, apperrors.Internal("Database error: %v", err)
		}
		if owner != nil && owner.ID != id {
			return nil, apperrors.Conflict("Email %s is already taken", *req.Email)
		}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.BadRequest("Name cannot be empty")
	}

	updated, err := s.repo.Update(id, req.Name, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Database error: %v", err)
	}
	if updated == nil {
		// The row vanished between the existence check and the write.
		// Treated as a server fault, not a 404.
		return nil, apperrors.Internal("Failed to update user")
	}

	s.cacheRefresh(ctx, updated)
	s.publish(ctx, models.EventUserUpdated, *updated)
	return updated, nil
}

// DeleteUser removes a user permanently; no soft delete.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.Internal("Database error: %v", err)
	}
	if !deleted {
		return apperrors.NotFound("User with id %s not found", id)
	}

	s.cacheDel(ctx, id)
	s.publish(ctx, models.EventUserDeleted, models.User{ID: id})
	return nil
}

// CountUsers reports the total number of users. No route exposes it yet.
func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	total, err := s.repo.Count()
	if err != nil {
		return 0, apperrors.Internal("Database error: %v", err)
	}
	return total, nil
}

// ---------------- cache helpers (all best-effort, nil-safe) ----------------

func (s *userService) cacheGet(ctx context.Context, id uuid.UUID) *models.User {
	if s.rdb == nil {
		return nil
	}
	key := cacheKeyUser(id)

	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache GET error")
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		log.Warn().Str("key", key).Msg("cache unmarshal failed")
		return nil
	}
	return &u
}

func (s *userService) cacheSet(ctx context.Context, u *models.User) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	key := cacheKeyUser(u.ID)
	if err := s.rdb.Set(ctx, key, b, userCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache SET error")
	}
}

// cacheRefresh invalidates then rewrites the cached value.
func (s *userService) cacheRefresh(ctx context.Context, u *models.User) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, cacheKeyUser(u.ID)).Err()
	s.cacheSet(ctx, u)
}

func (s *userService) cacheDel(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, cacheKeyUser(id)).Err()
}

// publish emits a domain event after a successful write, tagged with the
// request's correlation id. Best-effort: a broker failure is logged and
// never fails the request.
func (s *userService) publish(ctx context.Context, eventType models.EventType, u models.User) {
	ev := models.UserEvent{
		EventID:       uuid.New().String(),
		CorrelationID: events.CorrelationIDFrom(ctx),
		EventType:     eventType,
		Timestamp:     time.Now().UTC(),
		Data:          u,
	}
	if err := s.publisher.Publish(ev); err != nil {
		log.Warn().Err(err).Str("event_type", string(eventType)).Msg("event publish failed")
	}
}
