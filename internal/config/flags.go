package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/userreg/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database file (default from Config)
//	-l string   log level (default from Config)
//	-t int      busy timeout in seconds (default from Config)
//
// Only -d, -l and -t are considered; the JSON config flags are handled by parseJson.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "path to the users database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	busyTimeout := fs.Int("t", int(cfg.BusyTimeout.Seconds()), "database busy timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t has whole-second resolution; keep a finer JSON value unless -t is set.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Second
		}
	})
}
