package product

import (
	"context"
	"strings"

	"methakadai-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, input NewProductInput) (Product, error)
	Update(ctx context.Context, id string, input NewProductInput) (Product, error)
	Delete(ctx context.Context, id string) error
	SeedDefaults(ctx context.Context) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (Product, error) {
	p, err := normalize(input)
	if err != nil {
		return Product{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return Product{}, err
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, input NewProductInput) (Product, error) {
	if id == "" {
		return Product{}, ErrMissingID
	}

	p, err := normalize(input)
	if err != nil {
		return Product{}, err
	}
	p.ID = id

	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// normalize applies the catalog invariants: category defaults to General,
// mrp defaults to price, and an mrp below price falls back to price.
func normalize(input NewProductInput) (Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Product{}, ErrNameRequired
	}
	if input.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = DefaultCategory
	}

	mrp := input.MRP
	if mrp < input.Price {
		mrp = input.Price
	}

	variants := make([]Variant, 0, len(input.Variants))
	for _, v := range input.Variants {
		if v.MRP < v.Price {
			v.MRP = v.Price
		}
		variants = append(variants, v)
	}

	return Product{
		Name:        input.Name,
		Price:       input.Price,
		MRP:         mrp,
		Size:        input.Size,
		Material:    input.Material,
		Warranty:    input.Warranty,
		Category:    category,
		Images:      input.Images,
		Variants:    variants,
		Description: input.Description,
	}, nil
}

// SeedDefaults loads the sample catalog when the table is empty. Returns
// whether anything was inserted.
func (s *service) SeedDefaults(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, input := range defaultCatalog {
		if _, err := s.Create(ctx, input); err != nil {
			return false, err
		}
	}

	logger.FromCtx(ctx).Info("sample catalog seeded", zap.Int("count", len(defaultCatalog)))
	return true, nil
}

var defaultCatalog = []NewProductInput{
	{
		Name:        "Luxury Ortho Comfort",
		Price:       12000,
		MRP:         15000,
		Size:        "Queen (60x72)",
		Material:    "Memory Foam",
		Warranty:    "10 Years",
		Category:    "Orthopedic",
		Images:      []string{"https://images.unsplash.com/photo-1584132967334-10e028bd69f7"},
		Description: "Designed for back pain relief with a high-density memory foam core.",
		Variants: []Variant{
			{Name: "5 inch", MRP: 15000, Price: 12000},
			{Name: "6 inch", MRP: 17000, Price: 13500},
		},
	},
	{
		Name:        "Soft Cloud Spring",
		Price:       9500,
		MRP:         11000,
		Size:        "Single (36x72)",
		Material:    "Pocket Spring",
		Warranty:    "5 Years",
		Images:      []string{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304"},
		Description: "Hotel-grade softness with individually wrapped pocket springs.",
	},
}
