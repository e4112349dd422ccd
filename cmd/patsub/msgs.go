package patsub

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Apply literal substitution rules from a pattern table"
	MsgCheckShort      = "Validate a pattern table"
	MsgListShort       = "List the rules of a pattern table"
	MsgApplyShort      = "Apply one rule of a pattern table to text"
	MsgEscapeShort     = "Print the escaped form of literal patterns"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	MsgApplyLong = "Apply runs a single rule, chosen by its 1-based position in the table, " +
		"over each text argument or, without arguments, over each line of stdin. " +
		"Rules are never chained."

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/patsub/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml, toml"
	MsgFlagTable    = "Pattern table file, '-' for stdin (default from config table.path)"
	MsgFlagRule     = "1-based index of the rule to apply"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"

	// Error messages
	MsgErrNoTable       = "no pattern table given; pass a path or set table.path in the config"
	MsgErrStdinConflict = "cannot read both the table and the text from stdin"
	MsgErrNoCommand     = "no command specified"

	MsgVersionFormat = "patsub version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")
)
