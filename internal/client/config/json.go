package config

import (
	"encoding/json"
	"os"

	"github.com/asalykin/certprep/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards. Absent fields leave the
// previous overlay untouched.
type JsonConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	TokenFile   string `json:"token_file"`
	CheckoutURL string `json:"checkout_url"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON source. Read or unmarshal errors
// panic; the config is resolved once at startup and a broken file should
// stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.CheckoutURL != "" {
		cfg.CheckoutURL = jc.CheckoutURL
	}
}
