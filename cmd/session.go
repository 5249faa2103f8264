package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/screen"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with your account",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who the server thinks you are",
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, signupCmd} {
		c.Flags().StringVarP(&flagUser, "user", "u", "", "Username (prompted when omitted)")
		c.Flags().StringVarP(&flagPassword, "password", "p", "", "Password (prompted when omitted)")
	}
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

// promptCredentials asks for whichever of user and password is missing.
func promptCredentials(user, pass *string) error {
	var fields []huh.Field
	if *user == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(user))
	}
	if *pass == "" {
		fields = append(fields, huh.NewInput().Title("Password").
			EchoMode(huh.EchoModePassword).Value(pass))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// credentialsPrepare returns a prepare hook that fills the login inputs.
func credentialsPrepare() (func(*controller.Controller), error) {
	user, pass := flagUser, flagPassword
	if err := promptCredentials(&user, &pass); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, errors.New("cancelled")
		}
		return nil, err
	}
	return func(c *controller.Controller) {
		c.Screen().SetInput(screen.LoginUser, user)
		c.Screen().SetInput(screen.LoginPass, pass)
	}, nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	prepare, err := credentialsPrepare()
	if err != nil {
		return err
	}
	cl, err := runOneShot(cmd, prepare, func(ctx context.Context, c *controller.Controller) error {
		return c.Login(ctx)
	})
	if cl == nil || err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(greetingLine(cl.ctrl))
	fmt.Println()
	printDashboard(cl.ctrl.Screen().Snapshot())
	return nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	prepare, err := credentialsPrepare()
	if err != nil {
		return err
	}
	_, err = runOneShot(cmd, prepare, func(ctx context.Context, c *controller.Controller) error {
		return c.Signup(ctx)
	})
	return err
}

func runLogout(cmd *cobra.Command, _ []string) error {
	cl, err := runOneShot(cmd, nil, func(ctx context.Context, c *controller.Controller) error {
		return c.Logout(ctx)
	})
	if cl == nil {
		return err
	}
	fmt.Println()
	fmt.Println(greetingLine(cl.ctrl))
	return err
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	cl, err := runOneShot(cmd, nil, nil)
	if cl == nil {
		return err
	}

	st := cl.ctrl.State()
	user := st.User
	if user == "" {
		user = "(none)"
	}
	fmt.Println()
	fmt.Println(greetingLine(cl.ctrl))
	fmt.Println()
	fmt.Printf("  Server:   %s\n", cl.cfg.Server.BaseURL)
	fmt.Printf("  User:     %s\n", user)
	fmt.Printf("  Session:  %s\n", st.Kind)
	return err
}
