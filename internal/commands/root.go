// Package commands provides CLI commands for chatdb.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/chatdb/internal/logger"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions holds the flag values of one command tree
type rootOptions struct {
	endpoint string
	verbose  bool
	output   string
	file     string
	raw      bool
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(NewDependencies())

// NewRootCmd builds the chatdb command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "chatdb [question]",
		Short: "Ask your database questions in natural language",
		Long: `chatdb sends natural-language questions to a query service that turns
them into SQL, runs the query and returns the result.

Examples:
  chatdb chat                                  Start the interactive chat
  chatdb "Show all users over age 30"          Ask a single question
  chatdb -f question.txt                       Read the question from a file
  echo "count orders" | chatdb                 Read the question from stdin
  chatdb "list tables" --raw -o result.txt     Save the plain reply to a file
  chatdb theme toggle                          Switch between light and dark mode`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Stdout, "chatdb %s (built %s)\n", Version, BuildTime)
				return nil
			}

			question, ok, err := readInput(deps.Stdin, opts.file, args)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			return runQuery(cmd.Context(), deps, opts, question)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "Query service base URL (overrides CHATDB_BASE_URL and config)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging and extra output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save the reply to file")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the question from file")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print the plain reply without decoration")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(newChatCmd(deps, opts))
	cmd.AddCommand(newThemeCmd(deps, opts))
	cmd.AddCommand(newConfigCmd(deps, opts))

	return cmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Close()

	if err != nil {
		os.Exit(1)
	}
}

// readInput picks the question from the file flag, the positional
// argument or piped stdin, in that order. ok is false when none is given.
func readInput(stdin io.Reader, file string, args []string) (string, bool, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	if stdinPiped(stdin) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", false, nil
		}
		return string(data), true, nil
	}

	return "", false, nil
}

// stdinPiped reports whether r carries piped data. Readers that are not
// files are always treated as piped.
func stdinPiped(r io.Reader) bool {
	if r == nil {
		return false
	}
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
