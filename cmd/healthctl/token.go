package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/limbo/vitals/pkg/config"
	jwtservice "github.com/limbo/vitals/pkg/jwt_service"
)

func newTokenCmd() *cobra.Command {
	var (
		uidArg string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API access token for a user id, signed with $JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(uidArg)
			if err != nil {
				return errors.New("invalid --uid: " + err.Error())
			}
			secret := config.New().GetString("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := jwtservice.NewWithTTL(secret, ttl).GenerateToken(uid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&uidArg, "uid", "", "User id to embed in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("uid")
	return cmd
}
