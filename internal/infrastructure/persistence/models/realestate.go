package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/shopspring/decimal"
)

// OwnerModel is the persistence model for the Owner domain entity
type OwnerModel struct {
	BaseModel
	Name     string    `gorm:"type:varchar(100);not null"`
	Address  string    `gorm:"type:varchar(250);not null"`
	Birthday time.Time `gorm:"not null"`
	Photo    []byte
}

// TableName returns the table name for GORM
func (OwnerModel) TableName() string {
	return "owners"
}

// ToDomain converts the persistence model to a domain Owner
func (m *OwnerModel) ToDomain() *realestate.Owner {
	return &realestate.Owner{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		Birthday:   m.Birthday.UTC(),
		Photo:      m.Photo,
	}
}

// FromDomain populates the persistence model from a domain Owner
func (m *OwnerModel) FromDomain(o *realestate.Owner) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
	m.Address = o.Address
	m.Birthday = o.Birthday.UTC()
	m.Photo = o.Photo
}

// OwnerModelFromDomain creates a new persistence model from a domain Owner
func OwnerModelFromDomain(o *realestate.Owner) *OwnerModel {
	m := &OwnerModel{}
	m.FromDomain(o)
	return m
}

// PropertyModel is the persistence model for the Property domain entity.
// Owner, Images and Traces are only populated by preloading queries.
type PropertyModel struct {
	BaseModel
	Name         string           `gorm:"type:varchar(100);not null"`
	Address      string           `gorm:"type:varchar(250);not null"`
	Price        *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CodeInternal string           `gorm:"column:code_internal;type:varchar(50);not null"`
	Year         int              `gorm:"not null"`
	OwnerID      uuid.UUID        `gorm:"column:owner_id;type:uuid;not null;index"`

	Owner  *OwnerModel          `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	Images []PropertyImageModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Traces []PropertyTraceModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model and any loaded relations to a
// domain Property
func (m *PropertyModel) ToDomain() *realestate.Property {
	p := &realestate.Property{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Address:      m.Address,
		Price:        m.Price,
		CodeInternal: m.CodeInternal,
		Year:         m.Year,
		OwnerID:      m.OwnerID,
	}
	if m.Owner != nil {
		p.Owner = m.Owner.ToDomain()
	}
	if len(m.Images) > 0 {
		p.Images = make([]realestate.PropertyImage, len(m.Images))
		for i := range m.Images {
			p.Images[i] = *m.Images[i].ToDomain()
		}
	}
	if len(m.Traces) > 0 {
		p.Traces = make([]realestate.PropertyTrace, len(m.Traces))
		for i := range m.Traces {
			p.Traces[i] = *m.Traces[i].ToDomain()
		}
	}
	return p
}

// FromDomain populates the scalar columns from a domain Property.
// Relations are written through their own repositories.
func (m *PropertyModel) FromDomain(p *realestate.Property) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Address = p.Address
	m.Price = p.Price
	m.CodeInternal = p.CodeInternal
	m.Year = p.Year
	m.OwnerID = p.OwnerID
}

// PropertyModelFromDomain creates a new persistence model from a domain Property
func PropertyModelFromDomain(p *realestate.Property) *PropertyModel {
	m := &PropertyModel{}
	m.FromDomain(p)
	return m
}

// PropertyImageModel is the persistence model for the PropertyImage domain entity
type PropertyImageModel struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;not null;index"`
	Data       []byte    `gorm:"not null"`
	Enabled    bool      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PropertyImageModel) TableName() string {
	return "property_images"
}

// ToDomain converts the persistence model to a domain PropertyImage
func (m *PropertyImageModel) ToDomain() *realestate.PropertyImage {
	return &realestate.PropertyImage{
		BaseEntity: m.BaseModel.ToDomain(),
		PropertyID: m.PropertyID,
		Data:       m.Data,
		Enabled:    m.Enabled,
	}
}

// FromDomain populates the persistence model from a domain PropertyImage
func (m *PropertyImageModel) FromDomain(img *realestate.PropertyImage) {
	m.FromDomainBaseEntity(img.BaseEntity)
	m.PropertyID = img.PropertyID
	m.Data = img.Data
	m.Enabled = img.Enabled
}

// PropertyImageModelFromDomain creates a new persistence model from a domain PropertyImage
func PropertyImageModelFromDomain(img *realestate.PropertyImage) *PropertyImageModel {
	m := &PropertyImageModel{}
	m.FromDomain(img)
	return m
}

// PropertyTraceModel is the persistence model for the PropertyTrace domain entity
type PropertyTraceModel struct {
	BaseModel
	PropertyID uuid.UUID       `gorm:"column:property_id;type:uuid;not null;index"`
	DateSale   time.Time       `gorm:"column:date_sale;not null"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Value      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Tax        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (PropertyTraceModel) TableName() string {
	return "property_traces"
}

// ToDomain converts the persistence model to a domain PropertyTrace
func (m *PropertyTraceModel) ToDomain() *realestate.PropertyTrace {
	return &realestate.PropertyTrace{
		BaseEntity: m.BaseModel.ToDomain(),
		PropertyID: m.PropertyID,
		DateSale:   m.DateSale.UTC(),
		Name:       m.Name,
		Value:      m.Value,
		Tax:        m.Tax,
	}
}

// FromDomain populates the persistence model from a domain PropertyTrace
func (m *PropertyTraceModel) FromDomain(t *realestate.PropertyTrace) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.PropertyID = t.PropertyID
	m.DateSale = t.DateSale.UTC()
	m.Name = t.Name
	m.Value = t.Value
	m.Tax = t.Tax
}

// PropertyTraceModelFromDomain creates a new persistence model from a domain PropertyTrace
func PropertyTraceModelFromDomain(t *realestate.PropertyTrace) *PropertyTraceModel {
	m := &PropertyTraceModel{}
	m.FromDomain(t)
	return m
}

// All returns every model in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&OwnerModel{},
		&PropertyModel{},
		&PropertyImageModel{},
		&PropertyTraceModel{},
	}
}
