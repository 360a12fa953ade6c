package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/buildhaven/billing-dashboard/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig          `validate:"required"`
	Server     ServerConfig              `validate:"required"`
	Logging    LoggingConfig             `validate:"required"`
	Cache      CacheConfig
	Billing    BillingConfig             `validate:"required"`
	Instances  map[string]InstanceConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type CacheConfig struct {
	Enabled bool
}

// BillingConfig configures the subscription-billing provider client
type BillingConfig struct {
	APIURL  string        `validate:"required"`
	APIKey  string
	Timeout time.Duration

	// RequestsPerSecond caps outbound calls to the provider API
	RequestsPerSecond float64
}

// InstanceConfig is the per product-line display configuration: the
// entitlement display order and the add-on price id tables for one
// billing-provider instance
type InstanceConfig struct {
	// DisplayOrder lists entitlement display names in their render
	// order; names not listed sort after these, alphabetically
	DisplayOrder []string

	// AddOns maps symbolic add-on keys ex OBSERVABILITY to their
	// provider price ids and display overrides
	AddOns map[string]AddOnConfig

	// NonAdjustableItems are fixed-fee item names that must never be
	// surfaced as user-adjustable quantities
	NonAdjustableItems []string
}

// AddOnConfig binds a symbolic add-on key to one provider price
type AddOnConfig struct {
	PriceID string

	// ActiveDisplayValue, when set, replaces the derived value for the
	// add-on's usage price ex "Enabled"
	ActiveDisplayValue string

	// UnitNoun overrides the per-unit noun derived from the item name
	UnitNoun string
}

func NewConfig() (*Configuration, error) {
	// Local development keeps secrets in a .env file
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billing-dashboard")

	v.SetEnvPrefix("BILLING_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config := GetDefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if len(c.Instances) == 0 {
		return fmt.Errorf("at least one billing instance must be configured")
	}
	return nil
}

// Instance returns the configuration for the named billing instance,
// falling back to the sole configured instance when name is empty and
// only one exists
func (c *Configuration) Instance(name string) (InstanceConfig, bool) {
	if name == "" && len(c.Instances) == 1 {
		for _, ic := range c.Instances {
			return ic, true
		}
	}
	ic, ok := c.Instances[name]
	return ic, ok
}

// ResolveAddOnKey reverse-looks-up the symbolic add-on key for a
// provider price id
func (ic InstanceConfig) ResolveAddOnKey(priceID string) (string, bool) {
	for key, addOn := range ic.AddOns {
		if addOn.PriceID == priceID {
			return key, true
		}
	}
	return "", false
}

// AddOnDisplayName derives a display name from a symbolic add-on key:
// PREMIUM_MODELS -> "Premium Models"
func AddOnDisplayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// GetDefaultConfig returns a default configuration for local
// development. This is useful for running scripts or tests where no
// config file is present.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Cache:      CacheConfig{Enabled: true},
		Billing: BillingConfig{
			APIURL:            "https://api.withorb.com/v1",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 10,
		},
		Instances: map[string]InstanceConfig{
			"cloud": {
				DisplayOrder: []string{
					"Included Allocation",
					"Build Minutes",
					"API Requests",
					"Observability Events",
					"Premium Models",
					"Concurrent Builds",
				},
				AddOns: map[string]AddOnConfig{
					"OBSERVABILITY": {
						PriceID: "price_obs_cloud",
					},
					"PREMIUM_MODELS": {
						PriceID:            "price_premium_cloud",
						ActiveDisplayValue: "Enabled",
					},
				},
				NonAdjustableItems: []string{"Included Allocation"},
			},
			"dedicated": {
				DisplayOrder: []string{
					"Included Allocation",
					"Build Minutes",
					"Concurrent Builds",
				},
				AddOns: map[string]AddOnConfig{
					"OBSERVABILITY": {
						PriceID: "price_obs_dedicated",
					},
				},
				NonAdjustableItems: []string{"Included Allocation"},
			},
		},
	}
}
