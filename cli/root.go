package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"zola-posts/config"
	"zola-posts/exporter"
	"zola-posts/httpclient"
	"zola-posts/logger"
	"zola-posts/postapi"
)

var version = "0.1.0"

// NewRootCmd builds the command with cfg supplying the defaults flags fall back to.
func NewRootCmd(cfg config.AppConfig) *cobra.Command {
	var postsURL string

	cmd := &cobra.Command{
		Use:   "zola-posts [flags] <output_directory>",
		Short: "Get posts from an API and create Zola files",
		Long: `zola-posts lists every post of a blog API, fetches each one in full and
writes it to <output_directory>/<title>.md with TOML front matter.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("posts-url") {
				postsURL = cfg.PostsURL
			}

			client := postapi.New(postsURL, httpclient.New(httpclient.Config{
				UserAgent: cfg.HTTP.UserAgent,
			}))

			_, err := exporter.New(client, args[0], cmd.OutOrStdout()).Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVarP(&postsURL, "posts-url", "p", config.DefaultPostsURL, "URL of the root of the posts API")
	return cmd
}

// Execute loads configuration, runs the root command and exits non-zero on error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := config.InitApp(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	cmd := NewRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
