package service_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/mocks"
	"github.com/phrazzld/user-api/internal/service"
	"github.com/phrazzld/user-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestForm(email string) service.UserForm {
	return service.UserForm{
		Email:       email,
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns DTO", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		result := svc.CreateUser(context.Background(), newTestForm("a@b.com"))

		require.True(t, result.IsSuccess())
		dto := result.Value()
		assert.NotEmpty(t, dto.ID)
		_, err := uuid.Parse(dto.ID)
		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", dto.Email)
		assert.Equal(t, "Ann", dto.FirstName)
		assert.Equal(t, "Lee", dto.LastName)
		assert.Equal(t, "1990-01-01", dto.DateOfBirth)

		// The entity landed in the store under its generated ID.
		id := uuid.MustParse(dto.ID)
		stored, ok := userStore.Users[id]
		require.True(t, ok)
		assert.Equal(t, "a@b.com", stored.Email)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		first := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, first.IsSuccess())

		second := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.False(t, second.IsSuccess())
		assert.Equal(t, service.ErrEmailAlreadyRegistered, second.Err())
	})

	t.Run("email uniqueness is case-insensitive", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		first := svc.CreateUser(context.Background(), newTestForm("Ann@Example.com"))
		require.True(t, first.IsSuccess())

		second := svc.CreateUser(context.Background(), newTestForm("ann@example.COM"))
		require.False(t, second.IsSuccess())
		assert.Equal(t, service.ErrEmailAlreadyRegistered, second.Err())
	})

	t.Run("store listing failure is an internal error", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		userStore.GetAllError = errors.New("cache offline")
		svc := service.NewUserService(userStore, newTestLogger())

		result := svc.CreateUser(context.Background(), newTestForm("a@b.com"))

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrInternal, result.Err())
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	t.Run("returns DTO when found", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := &domain.User{
			ID:          uuid.New(),
			Email:       "a@b.com",
			FirstName:   "Ann",
			LastName:    "Lee",
			DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		userStore.Users[user.ID] = user
		svc := service.NewUserService(userStore, newTestLogger())

		result := svc.GetUser(context.Background(), user.ID)

		require.True(t, result.IsSuccess())
		assert.Equal(t, user.ID.String(), result.Value().ID)
		assert.Equal(t, "a@b.com", result.Value().Email)
		assert.Equal(t, "1990-01-01", result.Value().DateOfBirth)
	})

	t.Run("not found", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		result := svc.GetUser(context.Background(), uuid.New())

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrUserNotFound, result.Err())
	})
}

func TestUserService_GetUsers(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc service.UserService, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			form := newTestForm(string(rune('a'+i)) + "@example.com")
			require.True(t, svc.CreateUser(context.Background(), form).IsSuccess())
		}
	}

	t.Run("invalid pagination parameters", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		tests := []struct {
			name string
			page int
			size int
		}{
			{"zero page", 0, 10},
			{"zero size", 1, 0},
			{"negative page", -1, 10},
			{"negative size", 1, -5},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := svc.GetUsers(context.Background(), tt.page, tt.size)
				require.False(t, result.IsSuccess())
				assert.Equal(t, service.ErrInvalidPagination, result.Err())
			})
		}
	})

	t.Run("pages are disjoint and bounded", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())
		seed(t, svc, 5)

		first := svc.GetUsers(context.Background(), 1, 2)
		require.True(t, first.IsSuccess())
		assert.Len(t, first.Value(), 2)

		second := svc.GetUsers(context.Background(), 2, 2)
		require.True(t, second.IsSuccess())
		assert.Len(t, second.Value(), 2)

		third := svc.GetUsers(context.Background(), 3, 2)
		require.True(t, third.IsSuccess())
		assert.Len(t, third.Value(), 1)

		seen := map[string]bool{}
		for _, page := range [][]service.UserDto{first.Value(), second.Value(), third.Value()} {
			for _, dto := range page {
				assert.False(t, seen[dto.ID], "user %s appeared on two pages", dto.ID)
				seen[dto.ID] = true
			}
		}
		assert.Len(t, seen, 5)
	})

	t.Run("page beyond data is an empty success", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())
		seed(t, svc, 3)

		result := svc.GetUsers(context.Background(), 5, 10)

		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value())
	})

	t.Run("huge page number does not overflow the offset", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())
		seed(t, svc, 1)

		// (page-1)*size would wrap negative without the overflow guard.
		tests := []struct {
			name string
			page int
			size int
		}{
			{"max page", math.MaxInt, 10},
			{"wrapping product", math.MaxInt/2 + 1, 4},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := svc.GetUsers(context.Background(), tt.page, tt.size)
				require.True(t, result.IsSuccess())
				assert.Empty(t, result.Value())
			})
		}
	})

	t.Run("empty store yields empty page", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		result := svc.GetUsers(context.Background(), 1, 10)

		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value())
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		result := svc.UpdateUser(context.Background(), uuid.New(), newTestForm("a@b.com"))

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrUserNotFound, result.Err())
	})

	t.Run("updates fields in place, ID preserved", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		created := svc.CreateUser(context.Background(), newTestForm("e1@example.com"))
		require.True(t, created.IsSuccess())
		id := uuid.MustParse(created.Value().ID)

		form := service.UserForm{
			Email:       "e2@example.com",
			FirstName:   "Anna",
			LastName:    "Li",
			DateOfBirth: time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		}
		updated := svc.UpdateUser(context.Background(), id, form)

		require.True(t, updated.IsSuccess())
		assert.Equal(t, id.String(), updated.Value().ID)
		assert.Equal(t, "e2@example.com", updated.Value().Email)
		assert.Equal(t, "Anna", updated.Value().FirstName)
		assert.Equal(t, "Li", updated.Value().LastName)
		assert.Equal(t, "1985-03-02", updated.Value().DateOfBirth)

		fetched := svc.GetUser(context.Background(), id)
		require.True(t, fetched.IsSuccess())
		assert.Equal(t, "e2@example.com", fetched.Value().Email)
	})

	t.Run("unchanged email skips the uniqueness scan", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		created := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, created.IsSuccess())
		id := uuid.MustParse(created.Value().ID)

		userStore.GetAllFn = func(ctx context.Context) ([]*domain.User, error) {
			t.Fatal("GetAll should not be called when the email is unchanged")
			return nil, nil
		}

		result := svc.UpdateUser(context.Background(), id, newTestForm("a@b.com"))
		require.True(t, result.IsSuccess())
	})

	t.Run("case-only email change counts as unchanged", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		created := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, created.IsSuccess())
		id := uuid.MustParse(created.Value().ID)

		userStore.GetAllFn = func(ctx context.Context) ([]*domain.User, error) {
			t.Fatal("GetAll should not be called for a case-only email change")
			return nil, nil
		}

		result := svc.UpdateUser(context.Background(), id, newTestForm("A@B.COM"))
		require.True(t, result.IsSuccess())
		assert.Equal(t, "A@B.COM", result.Value().Email)
	})

	t.Run("rejects email registered to another user", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		first := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, first.IsSuccess())
		second := svc.CreateUser(context.Background(), newTestForm("c@d.com"))
		require.True(t, second.IsSuccess())
		secondID := uuid.MustParse(second.Value().ID)

		result := svc.UpdateUser(context.Background(), secondID, newTestForm("a@b.com"))

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrEmailAlreadyRegistered, result.Err())
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		result := svc.DeleteUser(context.Background(), uuid.New())

		require.False(t, result.IsSuccess())
		assert.Equal(t, service.ErrUserNotFound, result.Err())
	})

	t.Run("deletes and returns empty payload", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		svc := service.NewUserService(userStore, newTestLogger())

		created := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, created.IsSuccess())
		id := uuid.MustParse(created.Value().ID)

		result := svc.DeleteUser(context.Background(), id)

		require.True(t, result.IsSuccess())
		assert.Equal(t, service.UserDto{}, result.Value())
		assert.Empty(t, userStore.Users)
	})

	t.Run("get after delete is not found", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), newTestLogger())

		created := svc.CreateUser(context.Background(), newTestForm("a@b.com"))
		require.True(t, created.IsSuccess())
		id := uuid.MustParse(created.Value().ID)

		require.True(t, svc.DeleteUser(context.Background(), id).IsSuccess())

		fetched := svc.GetUser(context.Background(), id)
		require.False(t, fetched.IsSuccess())
		assert.Equal(t, service.ErrUserNotFound, fetched.Err())

		// Not-found is idempotent: repeating the delete reports the same.
		again := svc.DeleteUser(context.Background(), id)
		require.False(t, again.IsSuccess())
		assert.Equal(t, service.ErrUserNotFound, again.Err())
	})
}

// TestUserService_AgainstMemoryStore runs a create/update/list/delete
// round-trip against the real in-memory store instead of the mock.
func TestUserService_AgainstMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := store.NewMemoryStore[uuid.UUID, *domain.User]()
	svc := service.NewUserService(userStore, newTestLogger())

	created := svc.CreateUser(ctx, newTestForm("ann@example.com"))
	require.True(t, created.IsSuccess())
	id := uuid.MustParse(created.Value().ID)

	fetched := svc.GetUser(ctx, id)
	require.True(t, fetched.IsSuccess())
	assert.Equal(t, created.Value(), fetched.Value())

	listed := svc.GetUsers(ctx, 1, 10)
	require.True(t, listed.IsSuccess())
	require.Len(t, listed.Value(), 1)
	assert.Equal(t, created.Value(), listed.Value()[0])

	updated := svc.UpdateUser(ctx, id, newTestForm("ann2@example.com"))
	require.True(t, updated.IsSuccess())
	assert.Equal(t, "ann2@example.com", updated.Value().Email)

	require.True(t, svc.DeleteUser(ctx, id).IsSuccess())
	assert.Equal(t, 0, userStore.Len())
}
