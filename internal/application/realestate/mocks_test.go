package realestate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
//
// Create mocks configured with Return(nil, nil) hand back the entity they
// were given.
// =============================================================================

type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*realestate.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realestate.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetAll(ctx context.Context) ([]realestate.Owner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]realestate.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *realestate.Owner) (*realestate.Owner, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return owner, nil
	}
	return args.Get(0).(*realestate.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *realestate.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, owner *realestate.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*realestate.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realestate.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetAll(ctx context.Context) ([]realestate.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]realestate.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *realestate.Property) (*realestate.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return p, nil
	}
	return args.Get(0).(*realestate.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *realestate.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, p *realestate.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPropertyRepository) Search(ctx context.Context, filters []realestate.PropertyFilter, page realestate.Page) ([]realestate.Property, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]realestate.Property), args.Error(1)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*realestate.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realestate.PropertyImage), args.Error(1)
}

func (m *MockImageRepository) GetAll(ctx context.Context) ([]realestate.PropertyImage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]realestate.PropertyImage), args.Error(1)
}

func (m *MockImageRepository) Create(ctx context.Context, img *realestate.PropertyImage) (*realestate.PropertyImage, error) {
	args := m.Called(ctx, img)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return img, nil
	}
	return args.Get(0).(*realestate.PropertyImage), args.Error(1)
}

func (m *MockImageRepository) Update(ctx context.Context, img *realestate.PropertyImage) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, img *realestate.PropertyImage) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MockImageRepository) FindEnabled(ctx context.Context, propertyID, imageID uuid.UUID) (*realestate.PropertyImage, error) {
	args := m.Called(ctx, propertyID, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realestate.PropertyImage), args.Error(1)
}

type MockTraceRepository struct {
	mock.Mock
}

func (m *MockTraceRepository) GetByID(ctx context.Context, id uuid.UUID) (*realestate.PropertyTrace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realestate.PropertyTrace), args.Error(1)
}

func (m *MockTraceRepository) GetAll(ctx context.Context) ([]realestate.PropertyTrace, error) {
	args := m.Called(ctx)
	return args.Get(0).([]realestate.PropertyTrace), args.Error(1)
}

func (m *MockTraceRepository) Create(ctx context.Context, t *realestate.PropertyTrace) (*realestate.PropertyTrace, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return t, nil
	}
	return args.Get(0).(*realestate.PropertyTrace), args.Error(1)
}

func (m *MockTraceRepository) Update(ctx context.Context, t *realestate.PropertyTrace) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTraceRepository) Delete(ctx context.Context, t *realestate.PropertyTrace) error {
	return m.Called(ctx, t).Error(0)
}

// =============================================================================
// Mock Collaborators
// =============================================================================

type MockNormalizer struct {
	mock.Mock
}

func (m *MockNormalizer) Normalize(ctx context.Context, data []byte, filename string) ([]byte, error) {
	args := m.Called(ctx, data, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockImageCache struct {
	mock.Mock
}

func (m *MockImageCache) Get(ctx context.Context, propertyID, imageID uuid.UUID) ([]byte, bool, error) {
	args := m.Called(ctx, propertyID, imageID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockImageCache) Set(ctx context.Context, propertyID, imageID uuid.UUID, data []byte) error {
	return m.Called(ctx, propertyID, imageID, data).Error(0)
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
