// Package types provides type definitions for structured data used throughout the landing-page-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Default values applied to a PageConfig before validation.
const (
	DefaultProductType   = "digital"
	DefaultLength        = "medium"
	DefaultUrgencyLevel  = "medium"
	DefaultVoiceTone     = "friendly"
	DefaultGuaranteeType = "30_day_money_back"
)

// Bonus represents a bonus item stacked on top of the core offer.
type Bonus struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// PageConfig describes the landing page to generate. It is constructed once by
// a caller (CLI, batch driver), validated, and passed by value into the core.
type PageConfig struct {
	PageType         string         `json:"page_type" validate:"required"`
	Industry         string         `json:"industry" validate:"required"`
	ProductName      string         `json:"product_name" validate:"required"`
	ProductType      string         `json:"product_type" validate:"required"`
	PricePoint       float64        `json:"price_point" validate:"gt=0"`
	TargetAudience   map[string]any `json:"target_audience,omitempty"`
	Angle            string         `json:"angle" validate:"required"`
	Length           string         `json:"length" validate:"required,oneof=short medium long"`
	UrgencyLevel     string         `json:"urgency_level" validate:"required,oneof=low medium high"`
	VoiceTone        string         `json:"voice_tone" validate:"required"`
	SpecificBenefits []string       `json:"specific_benefits" validate:"required,min=3,dive,required"`
	PainPoints       []string       `json:"pain_points" validate:"required,min=3,dive,required"`
	UniqueMechanism  string         `json:"unique_mechanism,omitempty"`
	GuaranteeType    string         `json:"guarantee_type,omitempty"`
	Bonuses          []Bonus        `json:"bonuses,omitempty" validate:"omitempty,dive"`
}

// ApplyDefaults fills unset optional fields with their documented defaults.
func (c *PageConfig) ApplyDefaults() {
	if c.ProductType == "" {
		c.ProductType = DefaultProductType
	}
	if c.Length == "" {
		c.Length = DefaultLength
	}
	if c.UrgencyLevel == "" {
		c.UrgencyLevel = DefaultUrgencyLevel
	}
	if c.VoiceTone == "" {
		c.VoiceTone = DefaultVoiceTone
	}
	if c.GuaranteeType == "" {
		c.GuaranteeType = DefaultGuaranteeType
	}
	if c.TargetAudience == nil {
		c.TargetAudience = map[string]any{
			"awareness_level": "problem_aware",
			"sophistication":  "medium",
		}
	}
}

// Validate validates the PageConfig using the validator.
// Unknown page_type/angle ids are not checked here; they degrade to empty
// pattern subsets during selection rather than failing.
func (c *PageConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
