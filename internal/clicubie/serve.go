package clicubie

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/behrlich/cubie/internal/cubieapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cubieapi HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		server := cubieapi.NewServer(log)
		if err := server.ListenAndServe(addr); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
}
