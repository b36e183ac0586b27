package assessment

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// RunConfig is the YAML run configuration accepted by the collect command
// and the web API. Ids may be bare subscription ids or full ARM paths; tag
// entries use the key=value form (key=~value is tolerated).
type RunConfig struct {
	TenantID       string   `mapstructure:"tenant_id"`
	Subscriptions  []string `mapstructure:"subscriptions"`
	ResourceGroups []string `mapstructure:"resource_groups"`
	Resources      []string `mapstructure:"resources"`
	Tags           []string `mapstructure:"tags"`
}

func LoadConfig(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run config: %w", err)
	}
	return &cfg, nil
}

// Scope converts the file form into a domain scope.
func (c *RunConfig) Scope() (domain.Scope, error) {
	if strings.TrimSpace(c.TenantID) == "" {
		return domain.Scope{}, fmt.Errorf("tenant id is required")
	}

	scope := domain.Scope{
		TenantID:         strings.TrimSpace(c.TenantID),
		SubscriptionIDs:  c.Subscriptions,
		ResourceGroupIDs: c.ResourceGroups,
		ResourceIDs:      c.Resources,
	}
	for _, raw := range c.Tags {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(strings.TrimPrefix(value, "~"))
		if !ok || key == "" || value == "" {
			return domain.Scope{}, fmt.Errorf("invalid tag filter %q, expected key=value", raw)
		}
		scope.Tags = append(scope.Tags, domain.TagFilter{Key: key, Value: value})
	}
	return scope, nil
}
