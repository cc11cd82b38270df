package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"obenseuer-installer/internal/config"
	"obenseuer-installer/internal/installer"
	"obenseuer-installer/internal/logger"
	"obenseuer-installer/internal/prompt"
	"obenseuer-installer/internal/storefront"
)

// version is overridden at build time with -ldflags "-X obenseuer-installer/cmd.version=...".
var version = "dev"

// Exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitError carries the process exit code for a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func fail(err error) error {
	return &exitError{code: ExitFailure, err: err}
}

// operations are the actions a run can perform once the install directory is known.
type operations interface {
	Install(ctx context.Context) error
	Update(ctx context.Context) error
	Uninstall() error
	CheckIntegrity() error
}

// prompter asks the user for confirmation and for a final key press.
type prompter interface {
	Confirm(title, description string) (bool, error)
	WaitForKey() error
}

// dependencies are the collaborators a run is built from. Tests swap them for fakes.
type dependencies struct {
	storefront func() storefront.Client
	operations func(run *config.Run) operations
	prompter   func(skipQuestions bool) prompter
	lockName   string
	out        io.Writer
}

func defaultDependencies() dependencies {
	return dependencies{
		storefront: func() storefront.Client { return storefront.NewSteamClient() },
		operations: func(run *config.Run) operations { return installer.NewService(run) },
		prompter:   func(skip bool) prompter { return prompt.New(skip) },
		lockName:   "obenseuer-installer",
		out:        os.Stdout,
	}
}

// newRootCommand builds the CLI. All flag values live in a config.Options owned by the command.
func newRootCommand(deps dependencies) *cobra.Command {
	var opts config.Options

	platforms := make([]string, 0, len(config.Platforms))
	for _, p := range config.Platforms {
		platforms = append(platforms, "'"+string(p)+"'")
	}

	rootCmd := &cobra.Command{
		Use:           "obenseuer-installer",
		Short:         "Install, update or remove the Obenseuer modding environment (BepInEx)",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,

		// PersistentPreRun runs before the command; it sets up logging based on the debug flag.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, deps)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.Uninstall, "uninstall", "u", false, "Uninstall the OS Modding environment along with all mods and the mod manager.")
	flags.BoolVarP(&opts.SkipQuestions, "yes", "y", false, "Answers the equivalent of \"yes\" to all questions the installer will ask.")
	flags.BoolVarP(&opts.Update, "update", "d", false, "Update the OS Modding environment along with all mods and the mod manager.")
	flags.BoolVarP(&opts.CheckIntegrity, "check-integrity", "i", false, "Checks the integrity of this installer, the mod manager and the game.")
	flags.StringVarP(&opts.Platform, "platform", "p", "", "Sets the platform for which Doorstop and BepInEx should be installed for. Possible values are "+strings.Join(platforms, ", "))
	flags.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	_ = flags.MarkHidden("debug")

	rootCmd.SetOut(deps.out)
	rootCmd.SetErr(deps.out)
	return rootCmd
}

// Execute parses the command line, runs the selected action and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], defaultDependencies())
}

func execute(args []string, deps dependencies) int {
	rootCmd := newRootCommand(deps)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Anything else comes from argument parsing: show what went wrong and how to call us.
	fmt.Fprintf(deps.out, "Error: %v\n", err)
	_ = rootCmd.Usage()
	return ExitSuccess
}
