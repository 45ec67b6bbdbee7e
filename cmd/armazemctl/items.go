package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"goarmazem/internal/domain"
	"goarmazem/internal/pkg/input"
	"goarmazem/internal/service/warehouseservice"
)

func (a *app) addCmd() *cobra.Command {
	var (
		id       int
		name     string
		quantity int
		quality  string
		maxLevel int
		zones    int
		expiry   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Coloca um item na grade",
		Example: `  armazemctl add --name "Taças" --quantity 12 --quality fragile --max-level 1 --expiry 25-12-2025
  armazemctl add --name Sofá --quantity 1 --quality oversized --zones 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := input.ParseQualityKind(quality)
			if err != nil {
				return err
			}

			req := warehouseservice.PlaceRequest{Name: name, Quantity: quantity, ExpiryDate: expiry}
			if cmd.Flags().Changed("id") {
				req.ID = domain.IntPtr(id)
			}
			switch kind {
			case domain.QualityFragile:
				var limit *int
				if cmd.Flags().Changed("max-level") {
					limit = domain.IntPtr(maxLevel)
				}
				req.Quality = domain.Fragile(limit)
			case domain.QualityOversized:
				req.Quality = domain.Oversized(zones)
			default:
				req.Quality = domain.Normal()
			}

			result, err := a.client().Place(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(result)
			}
			a.printf("Item %d (%s) armazenado em %s\n", result.Item.ID, result.Item.Name, joinLocations(result.Locations))
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "ID explícito (padrão: o do nome ou o próximo livre)")
	cmd.Flags().StringVar(&name, "name", "", "nome do item")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantidade")
	cmd.Flags().StringVar(&quality, "quality", string(domain.QualityNormal), "normal, fragile ou oversized")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "nível máximo para itens fragile")
	cmd.Flags().IntVar(&zones, "zones", 2, "zonas contíguas para itens oversized")
	cmd.Flags().StringVar(&expiry, "expiry", "", "validade DD-MM-YYYY")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILEIRA PRATELEIRA NIVEL ZONA",
		Short: "Remove o item que ocupa o local",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := []string{"número de fileira", "número de prateleira", "número de nível", "número de zona"}
			coords := make([]int, 4)
			for i, s := range args {
				n, err := input.ParseNonNegativeInt(fields[i], s)
				if err != nil {
					return err
				}
				coords[i] = n
			}

			result, err := a.client().Remove(cmd.Context(), domain.NewLocation(coords[0], coords[1], coords[2], coords[3]))
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(result)
			}
			a.printf("Item %d (%s) removido de %s\n", result.Item.ID, result.Item.Name, joinLocations(result.Locations))
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var (
		id   int
		name string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Soma a quantidade armazenada por ID ou nome",
		RunE: func(cmd *cobra.Command, args []string) error {
			byID := cmd.Flags().Changed("id")
			if byID == (name != "") {
				return fmt.Errorf("informe --id ou --name")
			}

			var (
				result domain.SearchResult
				err    error
				label  string
			)
			if byID {
				result, err = a.client().SearchByID(cmd.Context(), id)
				label = fmt.Sprintf("ID %d", id)
			} else {
				result, err = a.client().SearchByName(cmd.Context(), name)
				label = fmt.Sprintf("%q", name)
			}
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(result)
			}
			if !result.Found {
				a.printf("%s não encontrado\n", label)
				return nil
			}
			a.printf("%s: quantidade total %d\n", label, result.TotalQuantity)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "ID do item")
	cmd.Flags().StringVar(&name, "name", "", "nome exato do item")
	return cmd
}

func (a *app) locateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate ID",
		Short: "Lista os locais ocupados por um ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := input.ParseNonNegativeInt("ID", args[0])
			if err != nil {
				return err
			}
			records, err := a.client().Locations(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(records)
			}
			renderRecords(a.out, fmt.Sprintf("Locais do ID %d", id), records)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista os itens armazenados",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.client().List(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(records)
			}
			renderRecords(a.out, "Itens armazenados", records)
			return nil
		},
	}
}

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Lista os nomes já vistos e seus IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.client().Names(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(names)
			}
			t := newTable("Nomes conhecidos", "ID", "Nome")
			for _, n := range names {
				t.addRow(fmt.Sprint(n.ID), strings.TrimSpace(n.Name))
			}
			fmt.Fprint(a.out, t.render())
			return nil
		},
	}
}
