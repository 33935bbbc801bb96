// Package config assembles the runtime settings for the certprep CLI.
// Sources overlay each other in order: defaults, environment (including a
// local .env file), JSON config file, command-line flags. Later sources win.
package config

// Config holds runtime settings for the certprep CLI.
//
// Fields:
//   - APIBaseURL: base URL of the exam-practice REST API.
//   - TokenFile: path of the persisted session token; empty means the
//     default location under the user config directory.
//   - CheckoutURL: the hosted checkout page the provider serves; the client
//     appends the session handle as a query parameter.
type Config struct {
	APIBaseURL  string
	TokenFile   string
	CheckoutURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.TokenFile = ""
	c.CheckoutURL = "https://app.certprep.example/checkout"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if provided), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
