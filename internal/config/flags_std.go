package config

import (
	"flag"
	"os"
)

// stdFlagSet adapts *flag.FlagSet to the flagSet interface.
type stdFlagSet struct {
	*flag.FlagSet
}

func defaultFlagSet() flagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	return stdFlagSet{fs}
}

func argsFromProcess() []string {
	if len(os.Args) <= 1 {
		return nil
	}
	return os.Args[1:]
}
