package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mygriya/internal/config"
	"mygriya/internal/domain"
	"mygriya/internal/repository"
	"mygriya/internal/repository/memory"
	"mygriya/internal/repository/postgres"

	"github.com/spf13/cobra"
)

func roomsCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Print the room catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch source {
			case config.CatalogStatic:
				repo, err := memory.NewRoomRepo()
				if err != nil {
					return err
				}
				return printRooms(cmd.Context(), cmd.OutOrStdout(), repo)
			case config.CatalogPostgres:
				return withDatabase(func(env *dbEnv) error {
					return printRooms(cmd.Context(), cmd.OutOrStdout(), postgres.NewRoomRepo(env.db))
				})
			default:
				return fmt.Errorf("unknown catalog source %q", source)
			}
		},
	}
	cmd.Flags().StringVar(&source, "source", config.CatalogStatic, "catalog source: static or postgres")
	return cmd
}

func printRooms(ctx context.Context, w io.Writer, repo repository.RoomRepository) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rooms, err := repo.ListRooms(ctx)
	if err != nil {
		return err
	}

	for _, room := range rooms {
		facilities := make([]string, 0, len(room.Facilities))
		for _, f := range room.Facilities {
			facilities = append(facilities, f.String())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d m²\tLantai %d\t%s\n",
			room.ID, room.Name, domain.FormatRupiah(room.Price), room.Size, room.Floor, room.StatusLabel())
		fmt.Fprintf(w, "\t%s\n", strings.Join(facilities, ", "))
	}
	return nil
}
