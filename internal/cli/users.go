package cli

import (
	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/linear"
)

func newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and read workspace members",
	}
	cmd.AddCommand(
		newUsersListCommand(),
		newUsersReadCommand(),
		newUsersMeCommand(),
	)
	return cmd
}

func newUsersListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			users, err := svc.ListUsers(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if users == nil {
				users = []linear.User{}
			}
			return emit(users)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of users to return (0 for all)")
	return cmd
}

func newUsersReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <user>",
		Short: "Read one user by email, name, ID, or \"me\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			user, err := svc.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(user)
		},
	}
}

func newUsersMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Read the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			me, err := svc.Me(cmd.Context())
			if err != nil {
				return err
			}
			return emit(me)
		},
	}
}
