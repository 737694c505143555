package realestate

import (
	"time"

	"github.com/realestate/backend/internal/application/validation"
	"github.com/realestate/backend/internal/domain/realestate"
	"github.com/shopspring/decimal"
)

// Field limits shared by the command validators
const (
	MinNameLength         = 3
	MaxNameLength         = 100
	MinAddressLength      = 5
	MaxAddressLength      = 250
	MaxInternalCodeLength = 50
	MinYear               = 1800
	MaxOwnerAgeYears      = 120
)

// MinPrice is the smallest accepted monetary amount
var MinPrice = decimal.RequireFromString("0.01")

// MoneyScale is the number of decimal places money columns store
const MoneyScale int32 = 2

// Clock returns the current instant
type Clock func() time.Time

// SystemClock returns the current UTC time
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Validator checks a command and returns *shared.ValidationError with
// every violated rule
type Validator[C any] interface {
	Validate(cmd C) error
}

func clockOrSystem(now Clock) Clock {
	if now == nil {
		return SystemClock
	}
	return now
}

// CreateOwnerValidator validates CreateOwnerCommand
type CreateOwnerValidator struct {
	now Clock
}

// NewCreateOwnerValidator creates a validator; a nil clock uses SystemClock
func NewCreateOwnerValidator(now Clock) *CreateOwnerValidator {
	return &CreateOwnerValidator{now: clockOrSystem(now)}
}

// Validate implements Validator
func (v *CreateOwnerValidator) Validate(cmd CreateOwnerCommand) error {
	now := v.now()
	r := validation.New()

	r.Field("name").
		NotBlank(cmd.Name, "Owner name is required").
		MaxLength(cmd.Name, MaxNameLength, "Owner name cannot exceed 100 characters").
		MinLength(cmd.Name, MinNameLength, "Owner name must be at least 3 characters")

	if cmd.Photo != nil || cmd.PhotoName != "" {
		r.Field("photoName").
			MaxLength(cmd.PhotoName, MaxNameLength, "Photo name cannot exceed 100 characters").
			MinLength(cmd.PhotoName, MinNameLength, "Photo name must be at least 3 characters").
			Matches(cmd.PhotoName, "photoname", "Photo name must have a valid extension")
	}

	r.Field("address").
		NotBlank(cmd.Address, "Owner address is required").
		MaxLength(cmd.Address, MaxAddressLength, "Owner address cannot exceed 250 characters").
		MinLength(cmd.Address, MinAddressLength, "Owner address must be at least 5 characters")

	r.Field("birthday").
		NotZeroTime(cmd.Birthday, "Birthday is required").
		Must(cmd.Birthday.Before(now), "Birthday cannot be in the future").
		Must(cmd.Birthday.After(now.AddDate(-MaxOwnerAgeYears, 0, 0)), "Birthday cannot be more than 120 years ago")

	if cmd.Photo != nil {
		r.Field("photo").MaxBytes(cmd.Photo, realestate.MaxImageSizeBytes, "Photo size must not exceed 10MB")
	}

	return r.Err()
}

// CreatePropertyValidator validates CreatePropertyCommand
type CreatePropertyValidator struct {
	now Clock
}

// NewCreatePropertyValidator creates a validator; a nil clock uses SystemClock
func NewCreatePropertyValidator(now Clock) *CreatePropertyValidator {
	return &CreatePropertyValidator{now: clockOrSystem(now)}
}

// Validate implements Validator
func (v *CreatePropertyValidator) Validate(cmd CreatePropertyCommand) error {
	r := validation.New()

	r.Field("name").
		NotBlank(cmd.Name, "Property name is required").
		MaxLength(cmd.Name, MaxNameLength, "Property name cannot exceed 100 characters").
		MinLength(cmd.Name, MinNameLength, "Property name must be at least 3 characters")

	r.Field("address").
		NotBlank(cmd.Address, "Property address is required").
		MaxLength(cmd.Address, MaxAddressLength, "Property address cannot exceed 250 characters").
		MinLength(cmd.Address, MinAddressLength, "Property address must be at least 5 characters")

	r.Field("price").
		GreaterThan(cmd.Price, MinPrice, "Price must be greater than 0").
		MaxScale(cmd.Price, MoneyScale, "Price cannot have more than 2 decimal places")

	r.Field("codeInternal").
		NotBlank(cmd.CodeInternal, "Internal code is required").
		MaxLength(cmd.CodeInternal, MaxInternalCodeLength, "Internal code cannot exceed 50 characters").
		Matches(cmd.CodeInternal, "internalcode", "Internal code can only contain letters, numbers, hyphens and underscores")

	r.Field("year").
		Must(cmd.Year > MinYear, "Year must be after 1800").
		Must(cmd.Year <= v.now().Year(), "Year cannot be in the future")

	r.Field("idOwner").
		RequiredID(cmd.OwnerID, "Owner Id is required").
		UUID(cmd.OwnerID, "Owner Id must be a valid GUID format")

	return r.Err()
}

// CreatePropertyTraceValidator validates CreatePropertyTraceCommand
type CreatePropertyTraceValidator struct {
	now Clock
}

// NewCreatePropertyTraceValidator creates a validator; a nil clock uses SystemClock
func NewCreatePropertyTraceValidator(now Clock) *CreatePropertyTraceValidator {
	return &CreatePropertyTraceValidator{now: clockOrSystem(now)}
}

// Validate implements Validator
func (v *CreatePropertyTraceValidator) Validate(cmd CreatePropertyTraceCommand) error {
	r := validation.New()

	r.Field("propertyId").
		RequiredID(cmd.PropertyID, "Property Id is required").
		UUID(cmd.PropertyID, "Property Id must be a valid GUID format")

	r.Field("dateSale").
		NotZeroTime(cmd.DateSale, "Sale date is required").
		NotAfter(cmd.DateSale, v.now(), "Sale date cannot be in the future")

	r.Field("name").
		NotBlank(cmd.Name, "Name is required").
		MaxLength(cmd.Name, MaxNameLength, "Name cannot exceed 100 characters").
		MinLength(cmd.Name, MinNameLength, "Name must be at least 3 characters")

	value := r.Field("value")
	if cmd.Value == nil {
		value.Must(false, "Value is required")
	} else {
		value.GreaterThan(*cmd.Value, MinPrice, "Value must be greater than 0.01").
			MaxScale(*cmd.Value, MoneyScale, "Value cannot have more than 2 decimal places")
	}

	tax := r.Field("tax")
	if cmd.Tax == nil {
		tax.Must(false, "Tax is required")
	} else {
		tax.GreaterOrEqual(*cmd.Tax, decimal.Zero, "Tax must be greater than or equal to 0").
			MaxScale(*cmd.Tax, MoneyScale, "Tax cannot have more than 2 decimal places")
	}

	return r.Err()
}

// AddPropertyImageValidator validates AddPropertyImageCommand
type AddPropertyImageValidator struct{}

// NewAddPropertyImageValidator creates a validator
func NewAddPropertyImageValidator() *AddPropertyImageValidator {
	return &AddPropertyImageValidator{}
}

// Validate implements Validator
func (v *AddPropertyImageValidator) Validate(cmd AddPropertyImageCommand) error {
	r := validation.New()

	r.Field("propertyId").
		RequiredID(cmd.PropertyID, "Property Id is required").
		UUID(cmd.PropertyID, "Property Id must be a valid GUID format")

	r.Field("image").
		Must(len(cmd.Image) > 0, "Image is required").
		MaxBytes(cmd.Image, realestate.MaxImageSizeBytes, "Photo size must not exceed 10MB")

	return r.Err()
}

// ChangePropertyPriceValidator validates ChangePropertyPriceCommand
type ChangePropertyPriceValidator struct{}

// NewChangePropertyPriceValidator creates a validator
func NewChangePropertyPriceValidator() *ChangePropertyPriceValidator {
	return &ChangePropertyPriceValidator{}
}

// Validate implements Validator
func (v *ChangePropertyPriceValidator) Validate(cmd ChangePropertyPriceCommand) error {
	r := validation.New()

	r.Field("id").
		RequiredID(cmd.ID, "Property Id is required").
		UUID(cmd.ID, "Property Id must be a valid GUID format")

	r.Field("price").
		GreaterOrEqual(cmd.Price, MinPrice, "Price must be greater than 0").
		MaxScale(cmd.Price, MoneyScale, "Price cannot have more than 2 decimal places")

	return r.Err()
}

// UpdatePropertyValidator validates UpdatePropertyCommand. Only the
// fields present in the command are checked.
type UpdatePropertyValidator struct {
	now Clock
}

// NewUpdatePropertyValidator creates a validator; a nil clock uses SystemClock
func NewUpdatePropertyValidator(now Clock) *UpdatePropertyValidator {
	return &UpdatePropertyValidator{now: clockOrSystem(now)}
}

// Validate implements Validator
func (v *UpdatePropertyValidator) Validate(cmd UpdatePropertyCommand) error {
	now := v.now()
	r := validation.New()

	r.Field("propertyId").
		RequiredID(cmd.PropertyID, "Property Id is required").
		UUID(cmd.PropertyID, "Property Id must be a valid GUID format")

	if cmd.Name != nil {
		r.Field("name").Length(*cmd.Name, MinNameLength, MaxNameLength, "Name must be between 3 and 100 characters")
	}
	if cmd.Address != nil {
		r.Field("address").Length(*cmd.Address, MinAddressLength, MaxAddressLength, "Address must be between 5 and 250 characters")
	}
	if cmd.Price != nil {
		r.Field("price").
			GreaterThan(*cmd.Price, MinPrice, "Price must be greater than 0.01").
			MaxScale(*cmd.Price, MoneyScale, "Price cannot have more than 2 decimal places")
	}
	if cmd.CodeInternal != nil {
		r.Field("codeInternal").
			MaxLength(*cmd.CodeInternal, MaxInternalCodeLength, "Internal code cannot exceed 50 characters").
			Matches(*cmd.CodeInternal, "internalcode", "Internal code can only contain letters, numbers, hyphens and underscores")
	}
	if cmd.Year != nil {
		r.Field("year").Must(*cmd.Year > MinYear && *cmd.Year <= now.Year(), "Year must be between 1800 and current year")
	}
	if cmd.OwnerID != nil {
		r.Field("idOwner").Tag(*cmd.OwnerID, "requiredid,guid", "Owner Id must be a valid GUID format")
	}
	if cmd.Trace != nil {
		t := cmd.Trace
		r.Field("trace.dateSale").NotAfter(t.DateSale, now, "Sale date cannot be in the future")
		r.Field("trace.name").
			NotBlank(t.Name, "Trace name is required").
			MaxLength(t.Name, MaxNameLength, "Trace name cannot exceed 100 characters")
		r.Field("trace.value").
			GreaterThan(t.Value, MinPrice, "Trace value must be greater than 0.01").
			MaxScale(t.Value, MoneyScale, "Trace value cannot have more than 2 decimal places")
		r.Field("trace.tax").
			GreaterOrEqual(t.Tax, decimal.Zero, "Trace tax must be greater than or equal to 0").
			MaxScale(t.Tax, MoneyScale, "Trace tax cannot have more than 2 decimal places")
	}

	return r.Err()
}
