package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/server"
	"github.com/spigell/peer-interview/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching api over http",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d := bootstrap(ctx)
		defer d.Close()

		d.logger.Info("starting the peer-interview api", zap.String("version", version))

		var storeCfg *session.StoreConfig
		if d.config.Server != nil {
			storeCfg = d.config.Server.Sessions
		}

		sessions := session.NewStore(d.matcher, storeCfg, d.logger)
		defer sessions.Close()

		if err := server.New(d.matcher, sessions, d.config.Server, d.logger).Run(ctx); err != nil {
			d.logger.Error("api server stopped", zap.Error(err))
			return err
		}

		d.logger.Info("exiting", zap.String("reason", "shutdown requested"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8080", "address to listen on")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}
