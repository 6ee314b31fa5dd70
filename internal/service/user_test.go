package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/stpnv0/TutorBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Succeeds(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	username := gofakeit.Username()

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: username,
		Role:     domain.RoleTeacher,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, username, user.Username)
	assert.Equal(t, domain.RoleTeacher, user.Role)
}

func TestUserService_Create_DefaultsToStudent(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: gofakeit.Username(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: gofakeit.Username(),
		Role:     "janitor",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: gofakeit.Username(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
