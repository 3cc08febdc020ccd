package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd(c *cli) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.client().Register(email, password, name)
			if err != nil {
				return err
			}
			return printSession(cmd, c, resp)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.client().Login(email, password)
			if err != nil {
				return err
			}
			return printSession(cmd, c, resp)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func printSession(cmd *cobra.Command, c *cli, resp *AuthResponse) error {
	out := cmd.OutOrStdout()
	if c.jsonOutput {
		return printJSON(out, resp)
	}
	if resp.User != nil {
		fmt.Fprintf(out, "Logged in as %s (%s)\n", resp.User.Email, resp.User.ID)
	}
	fmt.Fprintf(out, "export MARQUEE_TOKEN=%s\n", resp.Token)
	return nil
}
