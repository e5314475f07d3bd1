// slasher runs a standalone validator slash indicator node.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/config"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/node"
	"github.com/spacemeshos/go-slashindicator/signing"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version = "dev"

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

func main() {
	if err := getCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func getCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "slasher",
		Short:        "validator slash indicator",
		SilenceUsage: true,
	}
	root.AddCommand(runCommand(), keygenCommand(), signCommand(), versionCommand())
	return root
}

func runCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var configPath *string
	c := &cobra.Command{
		Use:   "run",
		Short: "start slash indicator node",
		RunE: func(c *cobra.Command, args []string) error {
			if err := config.LoadConfig(*configPath, &conf); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			// apply CLI args on top of the config file
			if err := c.ParseFlags(os.Args[1:]); err != nil {
				return fmt.Errorf("parsing flags: %w", err)
			}
			logger, err := newLogger(&conf)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app := node.New(node.WithConfig(&conf), node.WithLog(logger))

			// os.Interrupt for all systems, syscall.SIGTERM is mainly for docker.
			ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := app.Lock(); err != nil {
				return fmt.Errorf("getting exclusive file lock: %w", err)
			}
			defer app.Unlock()

			if err := app.Initialize(); err != nil {
				return fmt.Errorf("initializing app: %w", err)
			}
			err = app.Start(ctx)

			cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cleanupCancel()
			if cerr := app.Cleanup(cleanupCtx); cerr != nil {
				logger.Error("app failed to clean up", zap.Error(cerr))
			}
			return err
		},
	}
	configPath = config.AddFlags(c.Flags(), &conf)
	return c
}

func newLogger(conf *config.Config) (*zap.Logger, error) {
	encoder, err := log.NewEncoder(conf.Logging.Encoder)
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(conf.Logging.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithLevel("node", level, encoder), nil
}

func keygenCommand() *cobra.Command {
	var (
		out     string
		chainID string
	)
	c := &cobra.Command{
		Use:   "keygen",
		Short: "generate an ed25519 key for signing finality votes",
		RunE: func(c *cobra.Command, args []string) error {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("key file %s already exists", out)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat key file: %w", err)
			}
			signer, err := signing.NewEdSigner(
				signing.WithPrefix([]byte(chainID)),
				signing.ToFile(out),
			)
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), signer.VoteKey().String())
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "vote.key", "file to write the private key to")
	c.Flags().StringVar(&chainID, "chain-id", config.DefaultConfig().ChainID, "prefix of signed finality votes")
	return c
}

func signCommand() *cobra.Command {
	var (
		key     string
		chainID string
	)
	c := &cobra.Command{
		Use:   "sign <vote data json>",
		Short: "sign finality vote data with a key generated by keygen",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var data types.VoteData
			if err := json.Unmarshal([]byte(args[0]), &data); err != nil {
				return fmt.Errorf("decode vote data: %w", err)
			}
			signer, err := signing.NewEdSigner(
				signing.WithPrefix([]byte(chainID)),
				signing.FromFile(key),
			)
			if err != nil {
				return fmt.Errorf("load key: %w", err)
			}
			record := signer.SignVote(data)
			enc := json.NewEncoder(c.OutOrStdout())
			return enc.Encode(&record)
		},
	}
	c.Flags().StringVarP(&key, "key", "k", "vote.key", "file with the private key")
	c.Flags().StringVar(&chainID, "chain-id", config.DefaultConfig().ChainID, "prefix of signed finality votes")
	return c
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), Version)
			if Commit != "" {
				fmt.Fprintf(c.OutOrStdout(), "+%s", Commit)
			}
			fmt.Fprintln(c.OutOrStdout())
		},
	}
}
