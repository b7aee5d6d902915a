package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() PageConfig {
	return PageConfig{
		PageType:         "quiz_funnel",
		Industry:         "fitness",
		ProductName:      "Peak Shape Pro",
		ProductType:      "membership",
		PricePoint:       97,
		Angle:            "transformation_story",
		Length:           "medium",
		UrgencyLevel:     "high",
		VoiceTone:        "friendly",
		SpecificBenefits: []string{"a", "b", "c"},
		PainPoints:       []string{"x", "y", "z"},
		GuaranteeType:    "30_day_money_back",
	}
}

func TestPageConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*PageConfig)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(*PageConfig) {},
			wantErr: false,
		},
		{
			name:    "missing product name",
			modify:  func(c *PageConfig) { c.ProductName = "" },
			wantErr: true,
		},
		{
			name:    "zero price",
			modify:  func(c *PageConfig) { c.PricePoint = 0 },
			wantErr: true,
		},
		{
			name:    "negative price",
			modify:  func(c *PageConfig) { c.PricePoint = -10 },
			wantErr: true,
		},
		{
			name:    "too few benefits",
			modify:  func(c *PageConfig) { c.SpecificBenefits = []string{"a", "b"} },
			wantErr: true,
		},
		{
			name:    "too few pain points",
			modify:  func(c *PageConfig) { c.PainPoints = []string{"x"} },
			wantErr: true,
		},
		{
			name:    "empty benefit entry",
			modify:  func(c *PageConfig) { c.SpecificBenefits = []string{"a", "", "c"} },
			wantErr: true,
		},
		{
			name:    "invalid length",
			modify:  func(c *PageConfig) { c.Length = "epic" },
			wantErr: true,
		},
		{
			name:    "invalid urgency",
			modify:  func(c *PageConfig) { c.UrgencyLevel = "extreme" },
			wantErr: true,
		},
		{
			name:    "bonus missing value",
			modify:  func(c *PageConfig) { c.Bonuses = []Bonus{{Name: "Consult"}} },
			wantErr: true,
		},
		{
			name: "valid bonuses",
			modify: func(c *PageConfig) {
				c.Bonuses = []Bonus{{Name: "Consult", Value: "497"}}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPageConfig_ApplyDefaults(t *testing.T) {
	cfg := PageConfig{
		PageType:    "quiz_funnel",
		ProductName: "Peak Shape Pro",
	}

	cfg.ApplyDefaults()

	assert.Equal(t, DefaultProductType, cfg.ProductType)
	assert.Equal(t, DefaultLength, cfg.Length)
	assert.Equal(t, DefaultUrgencyLevel, cfg.UrgencyLevel)
	assert.Equal(t, DefaultVoiceTone, cfg.VoiceTone)
	assert.Equal(t, DefaultGuaranteeType, cfg.GuaranteeType)
	require.NotNil(t, cfg.TargetAudience)
	assert.Equal(t, "problem_aware", cfg.TargetAudience["awareness_level"])
}

func TestPageConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.GuaranteeType = "lifetime_guarantee"
	cfg.TargetAudience = map[string]any{"gender": "male"}

	cfg.ApplyDefaults()

	assert.Equal(t, "lifetime_guarantee", cfg.GuaranteeType)
	assert.Equal(t, map[string]any{"gender": "male"}, cfg.TargetAudience)
	assert.Equal(t, "membership", cfg.ProductType)
}
