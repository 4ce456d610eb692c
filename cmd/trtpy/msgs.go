package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "TRT Python Toolkit environment bootstrapper"
	MsgEnvShort        = "Emit the environment bootstrap script"
	MsgSetupShort      = "Run the package setup capability directly"
	MsgSnippetShort    = "Output the shell profile snippet"
	MsgPackagesShort   = "List the packages the environment requests"
	MsgTopicsShort     = "Display documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/trtpy/config.toml)"
	MsgFlagFormat  = "Output format (auto, term, text)"
	MsgFlagShell   = "Shell dialect (sh, bash, zsh, fish)"
	MsgFlagRoot    = "Toolkit root directory (default: two levels above the executable)"
	MsgFlagDryRun  = "Log setup commands without executing them"
)

// Long messages
const (
	MsgRootLong = `trtpy bootstraps a TRT Python Toolkit session: it requests a fixed set
of versioned packages from the site's LCG setup capability and exports
TRTPYDIR, PYTHONPATH, and PATH.

The environment mutations must outlive the trtpy process, so they are
delivered as shell text. Add the output of 'trtpy snippet' to your
shell profile, or eval 'trtpy env' directly.`

	MsgEnvLong = `Emit the bootstrap script for the current session.

The script establishes a default base environment when ROOTCOREBIN is
not set, requests the configured packages from the release channel,
and exports TRTPYDIR, PYTHONPATH, and PATH. It is meant to be evaluated
by the calling shell:

  eval "$(trtpy env)"           # bash, zsh
  trtpy env --shell fish | source   # fish`

	MsgSetupLong = `Invoke the site setup capability as subprocesses, outside a sourced
session. Failures of individual setup calls are reported and skipped;
the remaining calls still run. The computed exports are printed at the
end so they can be captured.`

	MsgSnippetLong = `Output the one-line snippet to add to your shell profile so every
session sources the trtpy environment.`

	MsgTopicsLong = `Display documentation topics found under the toolkit docs directory.
Without arguments, lists the available topics.`
)

// Status messages
const (
	MsgNoTopics         = "No documentation topics found."
	MsgAvailableTopics  = "Available topics:"
	MsgTopicItem        = "  %s\n"
	MsgSetupDone        = "Setup finished: %d succeeded, %d failed\n"
	MsgSetupSkippedBase = "Base environment already configured (ROOTCOREBIN is set)\n"
)
