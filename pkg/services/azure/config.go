package azure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"gopkg.in/ini.v1"
)

const (
	DefaultProfile = "default"

	AuthModeCLI     = "cli"
	AuthModeDefault = "default"
)

// Config is one profile from the Azure CLI config file. The tenant is
// mandatory; an assessment cannot run without one.
type Config struct {
	TenantID     string
	Subscription string
	AuthMode     string
	Credentials  azcore.TokenCredential
}

func LoadConfig(profile string) (*Config, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load Azure config file: %w", err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found in Azure config: %w", profile, err)
	}

	config := &Config{
		TenantID:     section.Key("tenant").String(),
		Subscription: section.Key("subscription").String(),
		AuthMode:     section.Key("auth_mode").MustString(AuthModeCLI),
	}
	if config.TenantID == "" {
		return nil, fmt.Errorf("tenant not found in profile %s", profile)
	}

	credentials, err := newCredential(config.AuthMode, config.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get Azure credentials: %w", err)
	}
	config.Credentials = credentials
	return config, nil
}

// configPath honors AZURE_CONFIG_DIR the way the az CLI does.
func configPath() (string, error) {
	if dir := os.Getenv("AZURE_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".azure", "config"), nil
}

func newCredential(mode, tenantID string) (azcore.TokenCredential, error) {
	switch mode {
	case AuthModeCLI:
		cred, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{TenantID: tenantID})
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure CLI credential: %w", err)
		}
		return cred, nil
	case AuthModeDefault:
		cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{TenantID: tenantID})
		if err != nil {
			return nil, fmt.Errorf("failed to create default credential: %w", err)
		}
		return cred, nil
	default:
		return nil, fmt.Errorf("unknown auth_mode %q", mode)
	}
}
