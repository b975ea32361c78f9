// Command launchkit provisions a service's runtime dependencies and
// hands control to the server binary. It is intended to run as PID 1
// or as the sole entrypoint of a container.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/launchkit/bootstrap"
	"github.com/kbukum/launchkit/config"
	"github.com/kbukum/launchkit/errors"
	"github.com/kbukum/launchkit/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to a config file (optional)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	var cfg config.Config
	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if err := config.Load("launchkit", &cfg, opts...); err != nil {
		exitf(err)
	}

	app, err := bootstrap.New(&cfg)
	if err != nil {
		exitf(err)
	}

	// In exec mode Run does not return on success: the server binary
	// replaces this process. Any return value is a failure to report.
	if err := app.Run(context.Background()); err != nil {
		exitf(err)
	}
}

func exitf(err error) {
	fmt.Fprintf(os.Stderr, "launchkit: %v\n", err)
	os.Exit(errors.ExitCode(err))
}
