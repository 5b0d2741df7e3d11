package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

func TestSelectOrCreateUser_Existing(t *testing.T) {
	svc, m := newMockedService(true)
	existing := &models.User{ID: 3, Username: "alice"}
	m.users.On("FindByUsername", mock.Anything, "alice").Return(existing, nil)

	user, created, err := svc.SelectOrCreateUser(context.Background(), "  alice ")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, user)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestSelectOrCreateUser_Creates(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "bob").Return(nil, repository.ErrNotFound)
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 9
		}).
		Return(nil)

	user, created, err := svc.SelectOrCreateUser(context.Background(), "bob")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "bob", user.Username)
	m.assertExpectations(t)
}

func TestSelectOrCreateUser_EmptyName(t *testing.T) {
	svc, m := newMockedService(true)

	user, _, err := svc.SelectOrCreateUser(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyUsername)
	assert.Nil(t, user)
	m.assertExpectations(t)
}

func TestSelectOrCreateUser_LostRace(t *testing.T) {
	svc, m := newMockedService(true)
	winner := &models.User{ID: 4, Username: "carol"}
	m.users.On("FindByUsername", mock.Anything, "carol").Return(nil, repository.ErrNotFound).Once()
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(repository.ErrUsernameTaken)
	m.users.On("FindByUsername", mock.Anything, "carol").Return(winner, nil).Once()

	user, created, err := svc.SelectOrCreateUser(context.Background(), "carol")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner, user)
	m.assertExpectations(t)
}

func TestDeleteUser_OwnsSeries(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
	m.series.On("CountByOwner", mock.Anything, int64(1)).Return(int64(2), nil)

	err := svc.DeleteUser(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrUserOwnsSeries)
	m.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	err := svc.DeleteUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
	m.assertExpectations(t)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "dave").Return(&models.User{ID: 5, Username: "dave"}, nil)
	m.series.On("CountByOwner", mock.Anything, int64(5)).Return(int64(0), nil)
	m.users.On("Delete", mock.Anything, int64(5)).Return(true, nil)

	assert.NoError(t, svc.DeleteUser(context.Background(), "dave"))
	m.assertExpectations(t)
}

func TestDeleteUser_ReferencedAtDelete(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "erin").Return(&models.User{ID: 6, Username: "erin"}, nil)
	m.series.On("CountByOwner", mock.Anything, int64(6)).Return(int64(0), nil)
	m.users.On("Delete", mock.Anything, int64(6)).Return(false, repository.ErrStillReferenced)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "erin"), ErrUserOwnsSeries)
	m.assertExpectations(t)
}

func TestFindUser_NeverCreates(t *testing.T) {
	svc, m := newMockedService(true)
	m.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	user, err := svc.FindUser(context.Background(), " ghost ")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestFindUser_Existing(t *testing.T) {
	svc, m := newMockedService(true)
	existing := &models.User{ID: 2, Username: "alice"}
	m.users.On("FindByUsername", mock.Anything, "alice").Return(existing, nil)

	user, err := svc.FindUser(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, existing, user)
	m.assertExpectations(t)
}
