package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"methakadai-be/internal/product"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockRepository) DeleteWithReassign(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func TestServiceAdd(t *testing.T) {
	t.Run("TrimsName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Add", mock.Anything, "Latex").Return(nil)

		err := svc.Add(context.Background(), "  Latex  ")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.Add(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Run("ReassignsProducts", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("DeleteWithReassign", mock.Anything, "Latex").Return(3, nil)

		moved, err := svc.Delete(context.Background(), "Latex")
		require.NoError(t, err)
		assert.Equal(t, 3, moved)
	})

	t.Run("DefaultCategoryIsProtected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Delete(context.Background(), product.DefaultCategory)
		assert.ErrorIs(t, err, ErrProtectedCategory)
		repo.AssertNotCalled(t, "DeleteWithReassign", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("DeleteWithReassign", mock.Anything, "Ghost").Return(0, ErrCategoryNotFound)

		_, err := svc.Delete(context.Background(), "Ghost")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepositoryList(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT name FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("General").AddRow("Latex"))

	names, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"General", "Latex"}, names)
}

func TestRepositoryAdd(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("INSERT INTO categories").
			WithArgs("Latex").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Add(context.Background(), "Latex"))
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("INSERT INTO categories").
			WithArgs("Latex").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "categories_pkey"`))

		assert.ErrorIs(t, repo.Add(context.Background(), "Latex"), ErrCategoryExists)
	})
}

func TestRepositoryDeleteWithReassign(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM categories").
			WithArgs("Latex").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE products SET category").
			WithArgs("Latex", product.DefaultCategory).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		moved, err := repo.DeleteWithReassign(context.Background(), "Latex")
		require.NoError(t, err)
		assert.Equal(t, 2, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFoundRollsBack", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM categories").
			WithArgs("Ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.DeleteWithReassign(context.Background(), "Ghost")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
