package realestate

import (
	"time"

	"github.com/realestate/backend/internal/domain/shared"
)

// Owner is a person who owns zero or more properties
type Owner struct {
	shared.BaseEntity
	Name     string
	Address  string
	Birthday time.Time
	Photo    []byte // normalized JPEG, nil when no photo was uploaded
}

// NewOwner creates an owner with a freshly generated id
func NewOwner(name, address string, birthday time.Time, photo []byte) *Owner {
	return &Owner{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Birthday:   birthday.UTC(),
		Photo:      photo,
	}
}

// HasPhoto reports whether the owner has a stored photo
func (o *Owner) HasPhoto() bool {
	return len(o.Photo) > 0
}
