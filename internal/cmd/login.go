package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/config"
)

// RunInteractiveLogin prompts for credentials, calls the login API, and
// persists the config.
func RunInteractiveLogin(in io.Reader, out io.Writer, serverURL string) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

	fmt.Fprint(out, "password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if serverURL == "" {
		serverURL = config.DefaultServerURL
	}
	client := api.NewClient(serverURL, "")
	resp, err := client.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		ServerURL: serverURL,
		Token:     resp.Token,
		Username:  resp.Username,
		Role:      resp.Role,
		Theme:     "dark",
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s (%s)\n", resp.Username, resp.Role)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `ghostqa login` command.
func LoginCmd() *cobra.Command {
	var serverURL string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a GhostQA server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunInteractiveLogin(os.Stdin, os.Stdout, serverURL)
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "", "server URL (default "+config.DefaultServerURL+")")
	return cmd
}
