// Command reykunyu looks up Na'vi words and conjugates nouns, verbs,
// adjectives and numbers from the command line.
//
//	reykunyu lookup "oel ngati kameie"
//	reykunyu noun kelku --affixes pe,,,,,,
//	reykunyu verb t.ar.on --infixes ,ol,
//	reykunyu adj txantsan --form postnoun
//	reykunyu parse verb tolaron
//	reykunyu number 9
//	reykunyu table kelku
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	reykunyu "github.com/Willem3141/navi-reykunyu-sub001"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	dictionary string
	dialect    string
	logLevel   string
	json       bool
	noColor    bool
}

func (o *options) parseDialect() (dialect.Dialect, error) {
	return dialect.Parse(o.dialect)
}

func (o *options) logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: o.noColor}).
		Level(level).With().Timestamp().Logger()
}

func (o *options) open() (*reykunyu.Reykunyu, error) {
	return reykunyu.Open(o.dictionary, reykunyu.WithLogger(o.logger()))
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "reykunyu",
		Short:         "Na'vi dictionary and conjugator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.noColor {
				color.Disable()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.dictionary, "dictionary", "d", envOr("REYKUNYU_DICTIONARY", "data/words.json"), "Dictionary file")
	pf.StringVar(&o.dialect, "dialect", "combined", "Dialect (FN, combined, RN)")
	pf.StringVar(&o.logLevel, "log-level", "warn", "Log level")
	pf.BoolVar(&o.json, "json", false, "Print JSON")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colors")

	cmd.AddCommand(
		newLookupCmd(o),
		newTableCmd(o),
		newNounCmd(o),
		newVerbCmd(o),
		newAdjectiveCmd(o),
		newParseCmd(o),
		newNumberCmd(o),
	)
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
