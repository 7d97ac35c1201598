package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	mock_repository "github.com/pluscontrol/plus-control-api/internal/domain/repository/mocks"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockUserRepository(ctrl)
	jwt := utils.NewJWTManager("secret", "plus-control-api", time.Hour)
	svc := NewAuthService(repo, jwt)

	hash, err := utils.HashPassword("clave123")
	require.NoError(t, err)
	user := &entity.User{Name: "Ana", Email: "ana@pluscontrol.cl", Password: hash, Role: enum.UserRoleOperator, Active: true}
	disabled := &entity.User{Email: "old@pluscontrol.cl", Password: hash, Active: false}

	repo.EXPECT().GetByEmail(gomock.Any(), "ana@pluscontrol.cl").Return(user, nil).Times(2)
	repo.EXPECT().GetByEmail(gomock.Any(), "nobody@pluscontrol.cl").Return(nil, nil)
	repo.EXPECT().GetByEmail(gomock.Any(), "old@pluscontrol.cl").Return(disabled, nil)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "ana@pluscontrol.cl", Password: "clave123"})
	require.NoError(t, err)
	claims, err := jwt.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Role)

	_, err = svc.Login(context.Background(), &LoginInput{Email: "ana@pluscontrol.cl", Password: "wrong"})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(context.Background(), &LoginInput{Email: "nobody@pluscontrol.cl", Password: "clave123"})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(context.Background(), &LoginInput{Email: "old@pluscontrol.cl", Password: "clave123"})
	requireAppError(t, err, http.StatusForbidden)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, utils.NewJWTManager("secret", "plus-control-api", time.Hour))

	created, err := svc.EnsureAdmin(context.Background(), "Admin", "admin@pluscontrol.cl", "")
	require.NoError(t, err)
	assert.False(t, created)

	repo.EXPECT().GetByEmail(gomock.Any(), "admin@pluscontrol.cl").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
		assert.Equal(t, enum.UserRoleAdmin, u.Role)
		assert.True(t, utils.CheckPasswordHash("admin-pass", u.Password))
		return nil
	})
	created, err = svc.EnsureAdmin(context.Background(), "Admin", "admin@pluscontrol.cl", "admin-pass")
	require.NoError(t, err)
	assert.True(t, created)

	repo.EXPECT().GetByEmail(gomock.Any(), "admin@pluscontrol.cl").Return(&entity.User{}, nil)
	created, err = svc.EnsureAdmin(context.Background(), "Admin", "admin@pluscontrol.cl", "admin-pass")
	require.NoError(t, err)
	assert.False(t, created)
}
