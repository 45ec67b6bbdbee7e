package main

import (
	"github.com/spf13/cobra"
)

func (a *app) expiringCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "Lista itens frágeis vencidos ou a vencer em até 3 dias",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.client().Expiring(cmd.Context(), date)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(records)
			}
			renderExpiring(a.out, records)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "data de referência DD-MM-YYYY (padrão: hoje no servidor)")
	return cmd
}

func (a *app) gridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Desenha a ocupação da grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.client().Grid(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(snap)
			}
			renderGrid(a.out, snap)
			return nil
		},
	}
}

func (a *app) movementsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Mostra o diário de colocações e remoções",
		RunE: func(cmd *cobra.Command, args []string) error {
			movements, err := a.client().Movements(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(movements)
			}
			renderMovements(a.out, movements)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "máximo de entradas (padrão do servidor: 50)")
	return cmd
}
