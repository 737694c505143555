package realestate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingOwner() *realestate.Owner {
	return realestate.NewOwner("Alice Smith", "12 Elm Street", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), nil)
}

func existingProperty(ownerID uuid.UUID) *realestate.Property {
	return realestate.NewProperty("Beach House", "1 Ocean Drive", decimal.NewFromInt(250000), "BH-001", 1999, ownerID)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, code, derr.Code)
}

func TestCreateOwnerHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("stores owner without photo", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		normalizer := new(MockNormalizer)
		owners.On("Create", ctx, mock.AnythingOfType("*realestate.Owner")).Return(nil, nil)

		h := NewCreateOwnerHandler(owners, normalizer, NewCreateOwnerValidator(fixedClock))
		id, err := h.Handle(ctx, validOwnerCommand())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything, mock.Anything)
		owners.AssertExpectations(t)
	})

	t.Run("stores the normalized photo", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		normalizer := new(MockNormalizer)
		normalized := []byte("jpeg")
		normalizer.On("Normalize", ctx, []byte("raw"), "alice.png").Return(normalized, nil)
		owners.On("Create", ctx, mock.MatchedBy(func(o *realestate.Owner) bool {
			return string(o.Photo) == "jpeg"
		})).Return(nil, nil)

		cmd := validOwnerCommand()
		cmd.Photo, cmd.PhotoName = []byte("raw"), "alice.png"
		_, err := NewCreateOwnerHandler(owners, normalizer, NewCreateOwnerValidator(fixedClock)).Handle(ctx, cmd)

		require.NoError(t, err)
		owners.AssertExpectations(t)
		normalizer.AssertExpectations(t)
	})

	t.Run("oversize photo fails before normalization", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		normalizer := new(MockNormalizer)

		cmd := validOwnerCommand()
		cmd.Photo, cmd.PhotoName = make([]byte, realestate.MaxImageSizeBytes+1), "big.jpg"
		_, err := NewCreateOwnerHandler(owners, normalizer, NewCreateOwnerValidator(fixedClock)).Handle(ctx, cmd)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.HasField("photo"))
		normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything, mock.Anything)
		owners.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("normalizer rejection is returned", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		normalizer := new(MockNormalizer)
		normalizer.On("Normalize", ctx, mock.Anything, "alice.png").
			Return(nil, shared.NewInvalidInputError("the image could not be decoded"))

		cmd := validOwnerCommand()
		cmd.Photo, cmd.PhotoName = []byte("garbage"), "alice.png"
		_, err := NewCreateOwnerHandler(owners, normalizer, NewCreateOwnerValidator(fixedClock)).Handle(ctx, cmd)

		assertCode(t, err, shared.CodeInvalidInput)
		owners.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure is returned", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		perr := shared.NewPersistenceError("create", "owner", errors.New("connection refused"))
		owners.On("Create", ctx, mock.Anything).Return(nil, perr)

		_, err := NewCreateOwnerHandler(owners, new(MockNormalizer), NewCreateOwnerValidator(fixedClock)).
			Handle(ctx, validOwnerCommand())

		var got *shared.PersistenceError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "create", got.Op)
	})
}

func TestCreatePropertyHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates property for existing owner", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		props := new(MockPropertyRepository)
		owner := existingOwner()
		cmd := validPropertyCommand()
		cmd.OwnerID = owner.ID.String()

		owners.On("GetByID", ctx, owner.ID).Return(owner, nil)
		props.On("Create", ctx, mock.MatchedBy(func(p *realestate.Property) bool {
			return p.OwnerID == owner.ID && p.Price.Equal(cmd.Price) && p.CodeInternal == "BH-001"
		})).Return(nil, nil)

		id, err := NewCreatePropertyHandler(props, owners, NewCreatePropertyValidator(fixedClock)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		props.AssertExpectations(t)
	})

	t.Run("unknown owner is not found and nothing is written", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		props := new(MockPropertyRepository)
		cmd := validPropertyCommand()
		owners.On("GetByID", ctx, uuid.MustParse(cmd.OwnerID)).Return(nil, nil)

		_, err := NewCreatePropertyHandler(props, owners, NewCreatePropertyValidator(fixedClock)).Handle(ctx, cmd)

		assertCode(t, err, shared.CodeNotFound)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		props.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid command never reaches the store", func(t *testing.T) {
		owners := new(MockOwnerRepository)
		props := new(MockPropertyRepository)
		cmd := validPropertyCommand()
		cmd.Price = decimal.Zero

		_, err := NewCreatePropertyHandler(props, owners, NewCreatePropertyValidator(fixedClock)).Handle(ctx, cmd)

		assert.Equal(t, []string{"Price must be greater than 0"}, messages(t, err))
		owners.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		props.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCreatePropertyTraceHandler(t *testing.T) {
	ctx := context.Background()
	property := existingProperty(uuid.New())
	cmd := CreatePropertyTraceCommand{
		PropertyID: property.ID.String(),
		DateSale:   fixedNow.AddDate(-1, 0, 0),
		Name:       "Sale to Bob",
		Value:      ptr(decimal.NewFromInt(240000)),
		Tax:        ptr(decimal.NewFromInt(1200)),
	}

	t.Run("appends trace", func(t *testing.T) {
		props := new(MockPropertyRepository)
		traces := new(MockTraceRepository)
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		traces.On("Create", ctx, mock.MatchedBy(func(tr *realestate.PropertyTrace) bool {
			return tr.PropertyID == property.ID && tr.Value.Equal(*cmd.Value) && tr.Tax.Equal(*cmd.Tax)
		})).Return(nil, nil)

		id, err := NewCreatePropertyTraceHandler(traces, props, NewCreatePropertyTraceValidator(fixedClock)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		traces.AssertExpectations(t)
	})

	t.Run("unknown property", func(t *testing.T) {
		props := new(MockPropertyRepository)
		traces := new(MockTraceRepository)
		props.On("GetByID", ctx, property.ID).Return(nil, nil)

		_, err := NewCreatePropertyTraceHandler(traces, props, NewCreatePropertyTraceValidator(fixedClock)).Handle(ctx, cmd)

		assertCode(t, err, shared.CodeNotFound)
		traces.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAddPropertyImageHandler(t *testing.T) {
	ctx := context.Background()
	property := existingProperty(uuid.New())

	newHandler := func(images *MockImageRepository, props *MockPropertyRepository, n *MockNormalizer) *AddPropertyImageHandler {
		return NewAddPropertyImageHandler(images, props, n, NewAddPropertyImageValidator())
	}

	t.Run("enabled defaults to true", func(t *testing.T) {
		images := new(MockImageRepository)
		props := new(MockPropertyRepository)
		normalizer := new(MockNormalizer)
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		normalizer.On("Normalize", ctx, []byte("png"), "front.png").Return([]byte("jpeg"), nil)
		images.On("Create", ctx, mock.MatchedBy(func(img *realestate.PropertyImage) bool {
			return img.Enabled && img.PropertyID == property.ID && string(img.Data) == "jpeg"
		})).Return(nil, nil)

		id, err := newHandler(images, props, normalizer).Handle(ctx, AddPropertyImageCommand{
			PropertyID: property.ID.String(),
			Image:      []byte("png"),
			ImageName:  "front.png",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		images.AssertExpectations(t)
	})

	t.Run("explicitly disabled", func(t *testing.T) {
		images := new(MockImageRepository)
		props := new(MockPropertyRepository)
		normalizer := new(MockNormalizer)
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		normalizer.On("Normalize", ctx, mock.Anything, mock.Anything).Return([]byte("jpeg"), nil)
		images.On("Create", ctx, mock.MatchedBy(func(img *realestate.PropertyImage) bool {
			return !img.Enabled
		})).Return(nil, nil)

		_, err := newHandler(images, props, normalizer).Handle(ctx, AddPropertyImageCommand{
			PropertyID: property.ID.String(),
			Image:      []byte("png"),
			ImageName:  "back.jpg",
			Enabled:    ptr(false),
		})

		require.NoError(t, err)
		images.AssertExpectations(t)
	})

	t.Run("unknown property skips normalization", func(t *testing.T) {
		images := new(MockImageRepository)
		props := new(MockPropertyRepository)
		normalizer := new(MockNormalizer)
		props.On("GetByID", ctx, property.ID).Return(nil, nil)

		_, err := newHandler(images, props, normalizer).Handle(ctx, AddPropertyImageCommand{
			PropertyID: property.ID.String(),
			Image:      []byte("png"),
			ImageName:  "front.png",
		})

		assertCode(t, err, shared.CodeNotFound)
		normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything, mock.Anything)
		images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("oversize image fails validation", func(t *testing.T) {
		images := new(MockImageRepository)
		props := new(MockPropertyRepository)
		normalizer := new(MockNormalizer)

		_, err := newHandler(images, props, normalizer).Handle(ctx, AddPropertyImageCommand{
			PropertyID: property.ID.String(),
			Image:      make([]byte, realestate.MaxImageSizeBytes+1),
			ImageName:  "huge.jpg",
		})

		assert.Equal(t, []string{"Photo size must not exceed 10MB"}, messages(t, err))
		props.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestChangePropertyPriceHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive price is rejected without a write", func(t *testing.T) {
		props := new(MockPropertyRepository)
		h := NewChangePropertyPriceHandler(props, NewChangePropertyPriceValidator())

		for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
			_, err := h.Handle(ctx, ChangePropertyPriceCommand{ID: uuid.NewString(), Price: price})
			assert.Equal(t, []string{"Price must be greater than 0"}, messages(t, err))
		}
		props.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		props.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("smallest price is stored exactly", func(t *testing.T) {
		props := new(MockPropertyRepository)
		property := existingProperty(uuid.New())
		cent := decimal.RequireFromString("0.01")
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		props.On("Update", ctx, mock.MatchedBy(func(p *realestate.Property) bool {
			return p.Price != nil && p.Price.Equal(cent)
		})).Return(nil)

		msg, err := NewChangePropertyPriceHandler(props, NewChangePropertyPriceValidator()).
			Handle(ctx, ChangePropertyPriceCommand{ID: property.ID.String(), Price: cent})

		require.NoError(t, err)
		assert.Equal(t, ChangePriceResult, msg)
		props.AssertExpectations(t)
	})

	t.Run("unknown property", func(t *testing.T) {
		props := new(MockPropertyRepository)
		id := uuid.New()
		props.On("GetByID", ctx, id).Return(nil, nil)

		_, err := NewChangePropertyPriceHandler(props, NewChangePropertyPriceValidator()).
			Handle(ctx, ChangePropertyPriceCommand{ID: id.String(), Price: decimal.NewFromInt(10)})

		assertCode(t, err, shared.CodeNotFound)
		assert.Contains(t, err.Error(), id.String())
		props.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdatePropertyHandler(t *testing.T) {
	ctx := context.Background()

	newHandler := func(props *MockPropertyRepository, owners *MockOwnerRepository, traces *MockTraceRepository) *UpdatePropertyHandler {
		return NewUpdatePropertyHandler(props, owners, traces, NewUpdatePropertyValidator(fixedClock))
	}

	t.Run("price only leaves other fields and adds no trace", func(t *testing.T) {
		props := new(MockPropertyRepository)
		owners := new(MockOwnerRepository)
		traces := new(MockTraceRepository)
		ownerID := uuid.New()
		property := existingProperty(ownerID)
		newPrice := decimal.NewFromInt(300000)

		props.On("GetByID", ctx, property.ID).Return(property, nil)
		props.On("Update", ctx, mock.MatchedBy(func(p *realestate.Property) bool {
			return p.Price.Equal(newPrice) &&
				p.Name == "Beach House" &&
				p.Address == "1 Ocean Drive" &&
				p.CodeInternal == "BH-001" &&
				p.Year == 1999 &&
				p.OwnerID == ownerID
		})).Return(nil)

		id, err := newHandler(props, owners, traces).Handle(ctx, UpdatePropertyCommand{
			PropertyID: property.ID.String(),
			Price:      &newPrice,
		})

		require.NoError(t, err)
		assert.Equal(t, property.ID, id)
		props.AssertExpectations(t)
		traces.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		owners.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("trace is appended exactly once", func(t *testing.T) {
		props := new(MockPropertyRepository)
		traces := new(MockTraceRepository)
		property := existingProperty(uuid.New())
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		props.On("Update", ctx, property).Return(nil)
		traces.On("Create", ctx, mock.MatchedBy(func(tr *realestate.PropertyTrace) bool {
			return tr.PropertyID == property.ID && tr.Name == "Resale"
		})).Return(nil, nil).Once()

		_, err := newHandler(props, new(MockOwnerRepository), traces).Handle(ctx, UpdatePropertyCommand{
			PropertyID: property.ID.String(),
			Trace: &PropertyTraceInfo{
				DateSale: fixedNow.AddDate(0, -2, 0),
				Name:     "Resale",
				Value:    decimal.NewFromInt(260000),
				Tax:      decimal.NewFromInt(500),
			},
		})

		require.NoError(t, err)
		traces.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("new owner must exist", func(t *testing.T) {
		props := new(MockPropertyRepository)
		owners := new(MockOwnerRepository)
		property := existingProperty(uuid.New())
		missing := uuid.New()
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		owners.On("GetByID", ctx, missing).Return(nil, nil)

		_, err := newHandler(props, owners, new(MockTraceRepository)).Handle(ctx, UpdatePropertyCommand{
			PropertyID: property.ID.String(),
			OwnerID:    ptr(missing.String()),
		})

		assertCode(t, err, shared.CodeNotFound)
		props.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner change", func(t *testing.T) {
		props := new(MockPropertyRepository)
		owners := new(MockOwnerRepository)
		property := existingProperty(uuid.New())
		owner := existingOwner()
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		owners.On("GetByID", ctx, owner.ID).Return(owner, nil)
		props.On("Update", ctx, mock.MatchedBy(func(p *realestate.Property) bool {
			return p.OwnerID == owner.ID
		})).Return(nil)

		_, err := newHandler(props, owners, new(MockTraceRepository)).Handle(ctx, UpdatePropertyCommand{
			PropertyID: property.ID.String(),
			OwnerID:    ptr(owner.ID.String()),
		})

		require.NoError(t, err)
		props.AssertExpectations(t)
	})

	t.Run("failed update skips the trace", func(t *testing.T) {
		props := new(MockPropertyRepository)
		traces := new(MockTraceRepository)
		property := existingProperty(uuid.New())
		props.On("GetByID", ctx, property.ID).Return(property, nil)
		props.On("Update", ctx, property).Return(shared.NewPersistenceError("update", "property", errors.New("deadlock")))

		_, err := newHandler(props, new(MockOwnerRepository), traces).Handle(ctx, UpdatePropertyCommand{
			PropertyID: property.ID.String(),
			Name:       ptr("Renamed House"),
			Trace: &PropertyTraceInfo{
				DateSale: fixedNow,
				Name:     "Resale",
				Value:    decimal.NewFromInt(1),
				Tax:      decimal.Zero,
			},
		})

		var perr *shared.PersistenceError
		require.ErrorAs(t, err, &perr)
		traces.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	// Both writers read the same row; the second Update overwrites the
	// first one's name. Known race: there is no optimistic version check.
	t.Run("concurrent edits are last write wins", func(t *testing.T) {
		base := existingProperty(uuid.New())
		first, second := *base, *base
		props := new(MockPropertyRepository)
		props.On("GetByID", ctx, base.ID).Return(&first, nil).Once()
		props.On("GetByID", ctx, base.ID).Return(&second, nil).Once()

		var stored []string
		props.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*realestate.Property).Name)
		}).Return(nil)

		h := newHandler(props, new(MockOwnerRepository), new(MockTraceRepository))
		_, err := h.Handle(ctx, UpdatePropertyCommand{PropertyID: base.ID.String(), Name: ptr("Writer One")})
		require.NoError(t, err)
		_, err = h.Handle(ctx, UpdatePropertyCommand{PropertyID: base.ID.String(), Name: ptr("Writer Two")})
		require.NoError(t, err)

		assert.Equal(t, []string{"Writer One", "Writer Two"}, stored)
	})
}

func TestGetPropertyImageHandler(t *testing.T) {
	ctx := context.Background()
	pid, iid := uuid.New(), uuid.New()

	t.Run("returns enabled image", func(t *testing.T) {
		images := new(MockImageRepository)
		img := realestate.NewPropertyImage(pid, []byte("jpeg"), true)
		images.On("FindEnabled", ctx, pid, iid).Return(img, nil)

		data, err := NewGetPropertyImageHandler(images, nil).Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg"), data)
	})

	t.Run("disabled or missing image is not found", func(t *testing.T) {
		images := new(MockImageRepository)
		images.On("FindEnabled", ctx, pid, iid).Return(nil, nil)

		_, err := NewGetPropertyImageHandler(images, nil).Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		assertCode(t, err, shared.CodeNotFound)
		assert.EqualError(t, err, ImageNotFoundMessage)
	})

	t.Run("empty data is not found", func(t *testing.T) {
		images := new(MockImageRepository)
		images.On("FindEnabled", ctx, pid, iid).Return(realestate.NewPropertyImage(pid, nil, true), nil)

		_, err := NewGetPropertyImageHandler(images, nil).Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		assertCode(t, err, shared.CodeNotFound)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		images := new(MockImageRepository)
		cache := new(MockImageCache)
		cache.On("Get", ctx, pid, iid).Return([]byte("cached"), true, nil)

		data, err := NewGetPropertyImageHandler(images, nil).WithCache(cache).
			Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		require.NoError(t, err)
		assert.Equal(t, []byte("cached"), data)
		images.AssertNotCalled(t, "FindEnabled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		images := new(MockImageRepository)
		cache := new(MockImageCache)
		cache.On("Get", ctx, pid, iid).Return(nil, false, nil)
		images.On("FindEnabled", ctx, pid, iid).Return(realestate.NewPropertyImage(pid, []byte("jpeg"), true), nil)
		cache.On("Set", ctx, pid, iid, []byte("jpeg")).Return(nil)

		data, err := NewGetPropertyImageHandler(images, nil).WithCache(cache).
			Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg"), data)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall back to the store", func(t *testing.T) {
		images := new(MockImageRepository)
		cache := new(MockImageCache)
		cache.On("Get", ctx, pid, iid).Return(nil, false, errors.New("redis down"))
		cache.On("Set", ctx, pid, iid, mock.Anything).Return(errors.New("redis down"))
		images.On("FindEnabled", ctx, pid, iid).Return(realestate.NewPropertyImage(pid, []byte("jpeg"), true), nil)

		data, err := NewGetPropertyImageHandler(images, nil).WithCache(cache).
			Handle(ctx, GetPropertyImageQuery{PropertyID: pid, ImageID: iid})

		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg"), data)
	})
}

func TestBuildPropertyFilters(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		assert.Empty(t, BuildPropertyFilters(GetPropertiesQuery{}))
	})

	t.Run("empty strings are ignored", func(t *testing.T) {
		assert.Empty(t, BuildPropertyFilters(GetPropertiesQuery{Name: ptr(""), OwnerName: ptr("")}))
	})

	t.Run("one filter per parameter group", func(t *testing.T) {
		ownerID := uuid.New()
		from := fixedNow.AddDate(-1, 0, 0)
		filters := BuildPropertyFilters(GetPropertiesQuery{
			Name:         ptr("beach"),
			Address:      ptr("ocean"),
			MinPrice:     ptr(decimal.NewFromInt(1)),
			MaxPrice:     ptr(decimal.NewFromInt(2)),
			CodeInternal: ptr("BH"),
			MinYear:      ptr(1990),
			OwnerID:      &ownerID,
			OwnerName:    ptr("alice"),
			MinDateSale:  &from,
			HasImages:    ptr(false),
		})

		assert.Equal(t, []realestate.PropertyFilter{
			realestate.NameContains{Value: "beach"},
			realestate.AddressContains{Value: "ocean"},
			realestate.CodeInternalContains{Value: "BH"},
			realestate.PriceBetween{Min: ptr(decimal.NewFromInt(1)), Max: ptr(decimal.NewFromInt(2))},
			realestate.YearBetween{Min: ptr(1990)},
			realestate.OwnerIs{OwnerID: ownerID},
			realestate.OwnerNameContains{Value: "alice"},
			realestate.TraceSoldBetween{From: &from},
			realestate.HasImages{Value: false},
		}, filters)
	})
}

func TestGetPropertiesHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps paging and projects results", func(t *testing.T) {
		props := new(MockPropertyRepository)
		owner := existingOwner()
		property := existingProperty(owner.ID)
		property.Owner = owner
		shown := realestate.NewPropertyImage(property.ID, []byte("a"), true)
		hidden := realestate.NewPropertyImage(property.ID, []byte("b"), false)
		property.Images = []realestate.PropertyImage{*shown, *hidden}

		props.On("Search", ctx, mock.Anything, realestate.Page{Number: 1, Size: realestate.MaxPageSize}).
			Return([]realestate.Property{*property}, nil)

		details, err := NewGetPropertiesHandler(props).Handle(ctx, GetPropertiesQuery{PageNumber: 0, PageSize: 1000})

		require.NoError(t, err)
		require.Len(t, details, 1)
		d := details[0]
		assert.Equal(t, property.ID, d.ID)
		require.NotNil(t, d.Owner)
		assert.Equal(t, "Alice Smith", d.Owner.Name)
		require.Len(t, d.Images, 1)
		assert.Equal(t, shown.ID, d.Images[0].ID)
		assert.Equal(t, "/api/property/"+property.ID.String()+"/image/"+shown.ID.String(), d.Images[0].ImageURL)
		assert.NotNil(t, d.Traces)
		assert.Empty(t, d.Traces)
	})

	t.Run("empty page is an empty slice", func(t *testing.T) {
		props := new(MockPropertyRepository)
		props.On("Search", ctx, mock.Anything, realestate.Page{Number: 3, Size: realestate.DefaultPageSize}).
			Return([]realestate.Property{}, nil)

		details, err := NewGetPropertiesHandler(props).Handle(ctx, GetPropertiesQuery{PageNumber: 3})

		require.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)
	})
}

func TestRegisterHandlers(t *testing.T) {
	deps := Dependencies{
		Owners:     new(MockOwnerRepository),
		Properties: new(MockPropertyRepository),
		Images:     new(MockImageRepository),
		Traces:     new(MockTraceRepository),
		Normalizer: new(MockNormalizer),
		Clock:      fixedClock,
	}

	t.Run("binds every request", func(t *testing.T) {
		m := mediator.New(nil)
		require.NoError(t, RegisterHandlers(m, deps))
		assert.Len(t, m.Registered(), 8)
	})

	t.Run("second registration fails", func(t *testing.T) {
		m := mediator.New(nil)
		require.NoError(t, RegisterHandlers(m, deps))
		assert.ErrorIs(t, RegisterHandlers(m, deps), mediator.ErrHandlerAlreadyRegistered)
	})

	t.Run("dispatch through the mediator", func(t *testing.T) {
		m := mediator.New(nil)
		require.NoError(t, RegisterHandlers(m, deps))
		m.Seal()

		_, err := mediator.Send[ChangePropertyPriceCommand, string](context.Background(), m,
			ChangePropertyPriceCommand{ID: uuid.NewString(), Price: decimal.Zero})
		var verr *shared.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
