package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/critfall/dmscreen/internal/orchestrators/campaign"
)

var (
	loginEmail    string
	loginPassword string

	registerEmail    string
	registerPassword string
	registerConfirm  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and preload the campaign",
	RunE:  runLogin,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a previously persisted session",
	RunE:  runResume,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the persisted session",
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new DM account",
	RunE:  runRegister,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "DM account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "DM account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "new account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "new account password")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "password confirmation")
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	out, err := a.orchestrator.Register(cmd.Context(), &campaign.RegisterInput{
		Email:                registerEmail,
		Password:             registerPassword,
		PasswordConfirmation: registerConfirm,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s, log in to start a session\n", out.User.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	out, err := a.orchestrator.BeginSession(cmd.Context(), &campaign.BeginSessionInput{
		Email:    loginEmail,
		Password: password,
		Profile:  a.cfg.Profile,
		TokenTTL: a.cfg.TokenTTL,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", out.User.Email)
	for _, w := range out.Warnings {
		fmt.Printf("warning: %s did not load\n", w)
	}
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	out, err := a.orchestrator.Resume(cmd.Context(), &campaign.ResumeInput{Profile: a.cfg.Profile})
	if err != nil {
		return err
	}

	fmt.Printf("Resumed session for %s\n", out.User.Email)
	for _, w := range out.Warnings {
		fmt.Printf("warning: %s did not load\n", w)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	// Logout needs a live token; resume silently so the revoke reaches
	// the server.
	if _, err := a.orchestrator.Resume(cmd.Context(), &campaign.ResumeInput{Profile: a.cfg.Profile}); err != nil {
		return err
	}

	if _, err := a.orchestrator.EndSession(cmd.Context(), &campaign.EndSessionInput{Profile: a.cfg.Profile}); err != nil {
		return err
	}

	fmt.Println("Logged out")
	return nil
}
