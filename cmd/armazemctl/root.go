package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"goarmazem/internal/client"
)

// app guarda o estado compartilhado pelos subcomandos.
type app struct {
	out        io.Writer
	configPath string
	jsonOutput bool
	cfg        *viper.Viper
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "armazemctl",
		Short: "Cliente de linha de comando do GoArmazém",
		Long: `armazemctl coloca, remove e consulta itens na grade do GoArmazém
(fileira, prateleira, nível, zona) pela API HTTP.

O servidor e o token vêm de $HOME/.armazemctl.yaml, das variáveis
ARMAZEMCTL_SERVER e ARMAZEMCTL_TOKEN ou das flags --server e --token.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				path, err := defaultConfigPath()
				if err != nil {
					return err
				}
				a.configPath = path
			}
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.BindPFlag(cfgKeyServer, cmd.Flags().Lookup(cfgKeyServer)); err != nil {
				return err
			}
			if err := cfg.BindPFlag(cfgKeyToken, cmd.Flags().Lookup(cfgKeyToken)); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "arquivo de configuração (padrão: $HOME/.armazemctl.yaml)")
	root.PersistentFlags().String(cfgKeyServer, "", "URL da API (padrão: "+defaultServer+")")
	root.PersistentFlags().String(cfgKeyToken, "", "token JWT para as rotas de escrita")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "saída em JSON")

	root.AddCommand(
		a.loginCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.searchCmd(),
		a.locateCmd(),
		a.listCmd(),
		a.namesCmd(),
		a.expiringCmd(),
		a.gridCmd(),
		a.movementsCmd(),
		hashPasswordCmd(out),
	)
	return root
}

func (a *app) client() *client.Client {
	timeout, err := time.ParseDuration(a.cfg.GetString(cfgKeyTimeout))
	if err != nil {
		timeout = 10 * time.Second
	}
	return client.New(a.cfg.GetString(cfgKeyServer), a.cfg.GetString(cfgKeyToken), timeout)
}

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
