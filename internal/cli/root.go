// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli provides the command-line interface of the vault client.
//
// Every subcommand maps its flags to a spec from package models and runs it
// through a [client.Client]. Global flags configure the endpoint, logging
// and output; see package config.
package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-client/internal/client"
	"github.com/MKhiriev/go-vault-client/internal/config"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/utils"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/spf13/cobra"
)

const loggerRole = "go-vault-client"

// state is filled once the global flags are parsed and shared by every
// subcommand of one invocation.
type state struct {
	app client.Client
	log *logger.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&state{}, buildInfo)
}

func newRootCommand(st *state, buildInfo models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vault-client",
		Short: "Client for the Waifu Vault file storage",
		Long: `vault-client uploads files or remote URLs to the vault, downloads stored
files, shows their metadata, changes their options and deletes them.`,
		Version:           buildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: st.init,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return st.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help and exit 0 if no subcommand is provided
			return cmd.Help()
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newUploadCommand(st),
		newDownloadCommand(st),
		newInfoCommand(st),
		newModifyCommand(st),
		newDeleteCommand(st),
	)

	return rootCmd
}

// Execute runs the command tree with args taken from os.Args. It is called
// once by main.main.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) error {
	st := &state{}
	err := newRootCommand(st, buildInfo).ExecuteContext(ctx)
	if closeErr := st.close(); err == nil {
		err = closeErr
	}
	return err
}

// close releases the log file of the invocation. Post-run hooks are skipped
// when a command fails, so Execute calls it again; repeated calls are no-ops.
func (s *state) close() error {
	if s.log == nil {
		return nil
	}
	if err := s.log.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func (s *state) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	invocationID := utils.NewUUIDGenerator().Generate()
	s.log = logger.NewClientLogger(loggerRole, cfg.Log.Level, cfg.Log.File)
	log := &logger.Logger{Logger: s.log.With().Str("invocation_id", invocationID).Logger()}

	app, err := client.NewApp(cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}
	s.app = app

	ctx := utils.WithInvocationID(cmd.Context(), invocationID)
	cmd.SetContext(log.WithContext(ctx))

	log.Debug().
		Str("command", cmd.Name()).
		Str("endpoint", cfg.Adapter.Endpoint).
		Dur("timeout", cfg.Adapter.RequestTimeout).
		Msg("invocation started")

	return nil
}
