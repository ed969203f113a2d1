package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# SoulTether Configuration

[server]
# HTTP listen address
host = "0.0.0.0"
port = 5000

[geocode]
# Geoapify API key (primary provider). Falls back to Nominatim when empty
# or when a lookup fails. Can also be set via GEOAPIFY_API_KEY.
geoapify_key = ""
geoapify_url = "https://api.geoapify.com/v1/geocode/search"
nominatim_url = "https://nominatim.openstreetmap.org/search"
# Per-provider request timeout
timeout = "10s"

[ephemeris]
# Directory holding VSOP87 data files for the primary ephemeris.
# When empty the VSOP87 environment variable is used. If the data cannot
# be loaded the service runs in degraded mode.
data_path = ""

[chart]
# Maximum circular distance, in degrees, for a Flower-of-Life alignment
alignment_orb = 2.0

[reading]
# JSON interpretation dataset (optional)
dataset_path = ""
# SQLite reading log (optional; empty disables persistence)
log_path = ""

[llm]
# OpenAI API key for narrative expansion (optional).
# Can also be set via OPENAI_API_KEY.
api_key = ""
model = "gpt-4o-mini"

[logging]
level = "info"
console = true
file = true
`

// createTemplateConfig writes a commented starter config when none exists.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
