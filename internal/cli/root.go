package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fman/pkg/fman"
)

var rootFlags struct {
	username string
	logFile  string
}

var rootCmd = &cobra.Command{
	Use:   "fman",
	Short: "Interactive file manager",
	Long: `fman is an interactive file manager for the terminal.

It starts in your home directory and reads one command per line:

  up                          go to the parent directory
  cd <path>                   go to a directory
  ls                          list the current directory
  cat <path>                  print a file
  add <name>                  create an empty file
  rn <path> <newName>         rename a file
  rm <path>                   delete a file
  cp <path> <destDir>         copy a file into a directory
  mv <path> <destDir>         move a file into a directory
  hash <path>                 print the SHA-256 digest of a file
  compress <path> <dest>      brotli-compress a file
  decompress <path> <dest>    brotli-decompress a file
  os --EOL|--cpus|--homedir|--username|--architecture
  exit, .exit                 leave

Paths containing spaces can be quoted. Every command is followed by the
current directory. Failures print "Invalid input" or "Operation failed".

Exit Codes:
  0  - Success (exit command, end of input or interrupt)
  1  - General error (input or output could not be used)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fman")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics")
	rootCmd.Flags().StringVar(&rootFlags.username, "username", fman.DefaultUsername, "Name shown in the welcome and farewell messages")
	rootCmd.Flags().StringVar(&rootFlags.logFile, "log-file", "", "Write diagnostics as JSON to this file instead of stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
