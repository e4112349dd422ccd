package patsub

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/patsub/internal/version"
	"github.com/arthur-debert/patsub/pkg/cobrax/topics"
	"github.com/arthur-debert/patsub/pkg/config"
	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/logging"
	"github.com/arthur-debert/patsub/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics
var topicsFS embed.FS

// app holds the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	configPath string
	format     string
	tablePath  string

	cfg *config.Config
}

// renderer returns a renderer for w in the configured format. FormatAuto
// is resolved against w when it is a file.
func (a *app) renderer(w io.Writer) (*output.Renderer, error) {
	name := a.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}

	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if f, ok := w.(*os.File); ok {
		format = output.Resolve(format, f)
	}
	return output.NewRenderer(w, format), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "patsub",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
				File:      cfg.Log.File,
			})
			logging.LogCommand(cmd.Name(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVarP(&a.tablePath, "table", "t", "", MsgFlagTable)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newEscapeCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   &configuredGlamour{app: a},
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// configuredGlamour reads the wrap width from the configuration, which is
// only loaded once a command runs.
type configuredGlamour struct {
	app *app
}

func (g *configuredGlamour) Render(content, format string) string {
	width := 0
	if g.app.cfg != nil {
		width = g.app.cfg.Output.Width
	}
	return topics.NewGlamourRenderer(width).Render(content, format)
}

// Run executes the CLI with the given arguments and streams and returns
// the process exit code. Errors are rendered to stderr in the configured
// output format.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	r, rerr := a.renderer(stderr)
	if rerr != nil {
		r = output.NewRenderer(stderr, output.FormatText)
	}
	if rerr := r.RenderError(err); rerr != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "PATSUB",
				Section: "1",
				Source:  "patsub " + version.Version,
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
