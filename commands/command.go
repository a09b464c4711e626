// Package commands implements the data-access CLI. Each command is a thin
// wrapper around the gdrive, gsheets and storage packages - flag validation
// and wiring live here, the data movement lives there.
package commands

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/config"
)

const APP = "data-access"
const VERSION = "v0.1.0"

var (
	conf *config.Config

	workdir        string
	credentials    string
	envfile        string
	serviceAccount bool
	debug          bool
)

// Execute builds the command tree and runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           APP,
		Short:         "Moves tabular data between local files, S3 and Google Sheets/Drive",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envfile != "" {
				if err := godotenv.Load(envfile); err != nil {
					return fmt.Errorf("unable to load env file '%s' (%w)", envfile, err)
				}
			}

			conf = config.Load()

			if !cmd.Flags().Changed("workdir") && conf.Workdir != "" {
				workdir = conf.Workdir
			}

			if !cmd.Flags().Changed("credentials") && conf.Credentials != "" {
				credentials = conf.Credentials
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&workdir, "workdir", DEFAULT_WORKDIR, "Directory for working files (tokens, etc)")
	root.PersistentFlags().StringVar(&credentials, "credentials", DEFAULT_CREDENTIALS, "Path for the OAuth2 'credentials.json' file")
	root.PersistentFlags().StringVar(&envfile, "env", "", "Path for an alternate .env file")
	root.PersistentFlags().BoolVar(&serviceAccount, "service-account", false, "Authenticates with the GD_* service account from the environment instead of OAuth2 tokens")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enables debugging information")

	root.AddCommand(authoriseCmd(), getCmd(), putCmd(), downloadCmd(), uploadCmd(), transferCmd(), presignCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		errorf("%v", err)
		return err
	}

	return nil
}

// tokensPath maps a credentials file and scope to the token cache file in
// the workdir e.g. credentials.json + the Sheets scope caches to
// '<workdir>/.google/credentials.sheets'.
func tokensPath(credentials, scope, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	ext := "tokens"
	switch {
	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/spreadsheets"):
		ext = "sheets"

	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/drive"):
		ext = "drive"
	}

	return filepath.Join(workdir, ".google", fmt.Sprintf("%s.%s", name, ext))
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

func errorf(format string, args ...any) {
	log.Printf("%-5s %s", "ERROR", fmt.Sprintf(format, args...))
}
