package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/docaid/DocAid-BookingService/internal/config"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
)

// rosterCmd печатает действующий список врачей в TOML, пригодный для booking.roster_file
func rosterCmd(configPath *string) *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print the doctor roster as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterFile := ""
			if !builtin {
				cfg, err := config.Load(*configPath)
				if err != nil {
					return err
				}
				rosterFile = cfg.Booking.RosterFile
			}

			doctors, err := loadCatalog(rosterFile)
			if err != nil {
				return err
			}
			return catalog.EncodeFile(os.Stdout, doctors.All())
		},
	}
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Print the built-in roster without reading the config")
	return cmd
}
