package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) (Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p Product) (Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestCreate(t *testing.T) {
	t.Run("DefaultsCategoryToGeneral", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p Product) bool {
			return p.Category == DefaultCategory
		})).Return(Product{ID: "p1", Category: DefaultCategory}, nil)

		p, err := svc.Create(context.Background(), NewProductInput{Name: "Basic Foam", Price: 5000})
		require.NoError(t, err)
		assert.Equal(t, DefaultCategory, p.Category)
	})

	t.Run("MRPFallsBackToPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p Product) bool {
			return p.MRP == 5000
		})).Return(Product{ID: "p1"}, nil)

		// MRP below price is inconsistent; it snaps up to price.
		_, err := svc.Create(context.Background(), NewProductInput{Name: "Basic Foam", Price: 5000, MRP: 3000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("VariantMRPFallsBackToVariantPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p Product) bool {
			return len(p.Variants) == 1 && p.Variants[0].MRP == 6000
		})).Return(Product{ID: "p1"}, nil)

		_, err := svc.Create(context.Background(), NewProductInput{
			Name:     "Basic Foam",
			Price:    5000,
			Variants: []Variant{{Name: "6 inch", Price: 6000, MRP: 100}},
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), NewProductInput{Name: "  ", Price: 5000})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RejectsNonPositivePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		for _, price := range []float64{0, -1} {
			_, err := svc.Create(context.Background(), NewProductInput{Name: "Basic Foam", Price: price})
			assert.ErrorIs(t, err, ErrInvalidPrice)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("KeepsID", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Update", mock.Anything, mock.MatchedBy(func(p Product) bool {
			return p.ID == "p1" && p.Name == "Renamed"
		})).Return(Product{ID: "p1", Name: "Renamed"}, nil)

		p, err := svc.Update(context.Background(), "p1", NewProductInput{Name: "Renamed", Price: 5000})
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("MissingID", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Update(context.Background(), "", NewProductInput{Name: "Renamed", Price: 5000})
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestSeedDefaults(t *testing.T) {
	t.Run("SeedsEmptyCatalog", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(Product{ID: "p1"}, nil)

		seeded, err := svc.SeedDefaults(context.Background())
		require.NoError(t, err)
		assert.True(t, seeded)
		repo.AssertNumberOfCalls(t, "Create", len(defaultCatalog))
	})

	t.Run("SkipsNonEmptyCatalog", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", mock.Anything).Return(4, nil)

		seeded, err := svc.SeedDefaults(context.Background())
		require.NoError(t, err)
		assert.False(t, seeded)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
