package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"goarmazem/internal/service/authservice"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica o operador e grava o token no arquivo de configuração",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = a.cfg.GetString("password")
			}
			tok, err := a.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := saveToken(a.configPath, tok); err != nil {
				return err
			}
			a.printf("Token gravado em %s\n", a.configPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email do operador")
	cmd.Flags().StringVar(&password, "password", "", "senha (ou ARMAZEMCTL_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func hashPasswordCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password SENHA",
		Short: "Gera o hash bcrypt para OPERATOR_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		// Não depende de servidor nem de configuração.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := authservice.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hash)
			return nil
		},
	}
}
