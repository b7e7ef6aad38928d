package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/forms-cli/internal/config"
	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/spf13/cobra"
)

// loadConfig reads --config (or ./forms-cli.yaml) and applies the --set,
// --log-file and --log-level overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides, _ := flags.GetStringArray("set")
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		if err := cfg.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	if logFile, _ := flags.GetString("log-file"); logFile != "" {
		cfg.Log.File = logFile
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

// openSession opens the form named by --binding and --snapshot.
func openSession(cmd *cobra.Command) (*keyword.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	flags := cmd.Root().PersistentFlags()
	binding, _ := flags.GetString("binding")
	source, _ := flags.GetString("snapshot")
	if source == "" {
		return nil, fmt.Errorf("no form to open: specify --snapshot")
	}
	provider, err := platform.NewProvider(binding, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open form: %w", err)
	}
	return keyword.NewSession(provider, cfg), nil
}

// writeBack saves the form to --snapshot when --write is set.
func writeBack(cmd *cobra.Command, session *keyword.Session) error {
	flags := cmd.Root().PersistentFlags()
	if write, _ := flags.GetBool("write"); !write {
		return nil
	}
	path, _ := flags.GetString("snapshot")
	if err := session.Save(path); err != nil {
		return fmt.Errorf("failed to write form: %w", err)
	}
	logger.Debug("Wrote form to %s", path)
	return nil
}

// runKeyword executes one keyword, prints its result and persists the form
// for mutating keywords. A failed keyword prints its result and exits
// non-zero.
func runKeyword(cmd *cobra.Command, name string, params keyword.Params) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	result, runErr := session.Execute(name, params)
	if runErr == nil {
		if kw, ok := keyword.Lookup(name); ok && kw.Mutates {
			if err := writeBack(cmd, session); err != nil {
				return err
			}
		}
	}
	if err := output.Fprint(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if runErr != nil {
		cmd.SilenceErrors = true
		return errReported
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
