package files

import (
	"fmt"
	"io"
	"strings"

	"github.com/compose-network/b64file/configs"
	"github.com/compose-network/b64file/internal/filesystem"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	WriteCMD = &cobra.Command{
		Use:   "write <path>",
		Short: "Store a payload in a file, base64-encoding binary payloads",
		Long: "Store a payload in a file. Binary payloads are base64-encoded, text payloads are written as-is.\n" +
			"Note that read always decodes base64, so text payloads only read back if they already are valid base64.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			kind, err := filesystem.ParseKind(cfg.Kind)
			if err != nil {
				return err
			}

			svc := NewService(afero.NewOsFs())
			src, err := payloadSource(cmd, svc)
			if err != nil {
				return err
			}
			defer src.Close()

			if err := svc.Write(args[0], kind, src); err != nil {
				return fmt.Errorf("error occurred writing payload: %w", err)
			}
			return nil
		},
	}

	ReadCMD = &cobra.Command{
		Use:   "read <path>",
		Short: "Decode a base64 file and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := NewService(afero.NewOsFs())

			read := func() error { return svc.Read(args[0], cmd.OutOrStdout()) }
			if output, _ := cmd.Flags().GetString(flagOutput); output != "" {
				read = func() error { return svc.Export(args[0], output) }
			}

			if err := read(); err != nil {
				return fmt.Errorf("error occurred reading payload: %w", err)
			}
			return nil
		},
	}

	InspectCMD = &cobra.Command{
		Use:   "inspect <path>",
		Short: "Print a YAML report describing a stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewService(afero.NewOsFs()).Inspect(args[0], cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("error occurred inspecting file: %w", err)
			}
			return nil
		},
	}
)

func loadConfig() (configs.Payload, error) {
	// Re-unmarshal to include flag overrides.
	if err := viper.Unmarshal(&configs.Values); err != nil {
		return configs.Payload{}, fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
	}
	return configs.Values.Payload, nil
}

// payloadSource picks --data, then --input, then stdin.
func payloadSource(cmd *cobra.Command, svc *Service) (io.ReadCloser, error) {
	data, _ := cmd.Flags().GetString(flagData)
	input, _ := cmd.Flags().GetString(flagInput)

	switch {
	case cmd.Flags().Changed(flagData) && input != "":
		return nil, fmt.Errorf("--%s and --%s are mutually exclusive", flagData, flagInput)
	case cmd.Flags().Changed(flagData):
		return io.NopCloser(strings.NewReader(data)), nil
	case input != "":
		f, err := svc.ReadSource(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		return f, nil
	default:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
}
