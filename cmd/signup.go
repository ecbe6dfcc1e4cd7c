package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/learner"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a learner account",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openCLIEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		mobile, _ := cmd.Flags().GetString("mobile")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = os.Getenv(envPassword)
		}

		l, err := e.deps.Learners.Signup(cmd.Context(), learner.SignupData{
			Name:     name,
			Email:    email,
			Mobile:   mobile,
			Password: password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s <%s> (%s)\n", l.Name, l.Email, l.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials and print the learner record",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openCLIEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := authenticate(cmd, e)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), l.Redacted())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s> (%s), %d attempts recorded\n",
			l.Name, l.Email, l.ID, len(l.QuizHistory))
		return nil
	},
}

func init() {
	signupCmd.Flags().String("name", "", "Display name")
	signupCmd.Flags().String("email", "", "Email address")
	signupCmd.Flags().String("mobile", "", "Mobile number")
	signupCmd.Flags().String("password", "", "Password (or set "+envPassword+")")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("mobile")

	addCredentialFlags(loginCmd)
	loginCmd.Flags().Bool("json", false, "Print the learner record as JSON")
}
