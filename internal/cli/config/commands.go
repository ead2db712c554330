package config

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steviee/mclookup/internal/render"
	"github.com/steviee/mclookup/internal/state"
	"gopkg.in/yaml.v3"
)

// NewShowCommand creates the config show command.
func NewShowCommand(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), cmd.OutOrStdout(), jsonOutput())
		},
	}
}

// NewGetCommand creates the config get command.
func NewGetCommand(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long: fmt.Sprintf(`Print a single configuration value.

Valid keys:
  %s`, strings.Join(state.ConfigKeys(), "\n  ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), cmd.OutOrStdout(), args[0], jsonOutput())
		},
	}
}

// NewSetCommand creates the config set command.
func NewSetCommand(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a configuration value",
		Long: fmt.Sprintf(`Change a single configuration value.

The value is validated before the file is written; the previous file
is kept as config.yaml.bak.

Valid keys:
  %s`, strings.Join(state.ConfigKeys(), "\n  ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], jsonOutput())
		},
	}
}

// NewPathCommand creates the config path command.
func NewPathCommand(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd.OutOrStdout(), jsonOutput())
		},
	}
}

func runShow(ctx context.Context, w io.Writer, jsonOutput bool) error {
	cfg, err := state.LoadConfig(ctx)
	if err != nil {
		return outputError(w, jsonOutput, err)
	}

	if jsonOutput {
		values := make(map[string]string, len(state.ConfigKeys()))
		for _, key := range state.ConfigKeys() {
			values[key], _ = cfg.Get(key)
		}
		return render.WriteJSON(w, render.Output{Status: "success", Data: values})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func runGet(ctx context.Context, w io.Writer, key string, jsonOutput bool) error {
	cfg, err := state.LoadConfig(ctx)
	if err != nil {
		return outputError(w, jsonOutput, err)
	}

	value, err := cfg.Get(key)
	if err != nil {
		return outputError(w, jsonOutput, err)
	}

	if jsonOutput {
		return render.WriteJSON(w, render.Output{
			Status: "success",
			Data:   map[string]string{"key": key, "value": value},
		})
	}

	_, _ = fmt.Fprintln(w, value)
	return nil
}

func runSet(ctx context.Context, w io.Writer, key, value string, jsonOutput bool) error {
	cfg, err := state.LoadConfig(ctx)
	if err != nil {
		return outputError(w, jsonOutput, err)
	}

	if err := cfg.Set(key, value); err != nil {
		return outputError(w, jsonOutput, err)
	}

	if err := state.UpdateConfig(ctx, cfg); err != nil {
		return outputError(w, jsonOutput, err)
	}

	stored, _ := cfg.Get(key)
	message := fmt.Sprintf("Set %s to %q", key, stored)

	if jsonOutput {
		return render.WriteJSON(w, render.Output{
			Status:  "success",
			Data:    map[string]string{"key": key, "value": stored},
			Message: message,
		})
	}

	_, _ = fmt.Fprintln(w, message)
	return nil
}

func runPath(w io.Writer, jsonOutput bool) error {
	path, err := state.GetConfigPath()
	if err != nil {
		return outputError(w, jsonOutput, err)
	}

	if jsonOutput {
		return render.WriteJSON(w, render.Output{
			Status: "success",
			Data:   map[string]string{"path": path},
		})
	}

	_, _ = fmt.Fprintln(w, path)
	return nil
}

func outputError(w io.Writer, jsonOutput bool, err error) error {
	if jsonOutput {
		_ = render.WriteJSON(w, render.Output{
			Status: "error",
			Error:  err.Error(),
		})
	}
	return err
}
