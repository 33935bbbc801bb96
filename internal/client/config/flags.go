package config

import (
	"flag"
	"os"

	"github.com/asalykin/certprep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the exam-practice API
//	-t string   path of the session token file
//	-u string   hosted checkout page URL
//
// os.Args is filtered to the flags handled here, via flagx.FilterArgs, so
// parsing does not trip over flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the exam-practice API")
	fs.StringVar(&cfg.TokenFile, "t", cfg.TokenFile, "path of the session token file")
	fs.StringVar(&cfg.CheckoutURL, "u", cfg.CheckoutURL, "hosted checkout page URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
