package app

import (
	"github.com/urfave/cli/v2"
)

type (
	Flag       = cli.Flag
	StringFlag = cli.StringFlag
	PathFlag   = cli.PathFlag
	BoolFlag   = cli.BoolFlag
	IntFlag    = cli.IntFlag
	Uint64Flag = cli.Uint64Flag
	Flags      = []Flag
)

const (
	FlagConfig  = "config"
	FlagVerbose = "verbose"
	FlagDebug   = "debug"

	EnvConfig = "PROGBATCH_CONFIG"
)
