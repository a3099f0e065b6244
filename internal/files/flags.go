package files

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagDef defines a command-line flag with its configuration. An empty
// viperKey leaves the flag unbound.
type (
	flagType interface {
		string | bool
	}

	flagDef[T flagType] struct {
		name         string
		viperKey     string
		defaultValue T
		description  string
	}
)

const (
	flagKind   = "kind"
	flagData   = "data"
	flagInput  = "input"
	flagOutput = "output"
)

var (
	writeFlags = []flagDef[string]{
		{flagKind, "payload.kind", "", "Payload kind: binary (base64-encoded) or text (stored as-is)"},
		{flagData, "", "", "Payload given inline"},
		{flagInput, "", "", "Read the payload from this file instead of stdin"},
	}

	readFlags = []flagDef[string]{
		{flagOutput, "", "", "Write decoded bytes to this file instead of stdout"},
	}
)

func init() {
	if err := declareFlags(WriteCMD, writeFlags); err != nil {
		panic(err)
	}
	if err := declareFlags(ReadCMD, readFlags); err != nil {
		panic(err)
	}
}

// declareFlags declares multiple flags on cmd and binds them to viper configuration keys.
func declareFlags[T flagType](cmd *cobra.Command, flags []flagDef[T]) error {
	for _, flag := range flags {
		if err := declareFlag(cmd, flag.name, flag.viperKey, flag.defaultValue, flag.description); err != nil {
			return err
		}
	}
	return nil
}

// declareFlag declares a single flag and binds it to a viper configuration key.
// The type parameter T determines the flag type (string or bool).
func declareFlag[T flagType](cmd *cobra.Command, flagName, viperKey string, defaultValue T, description string) error {
	var zero T
	switch any(zero).(type) {
	case string:
		cmd.Flags().String(flagName, any(defaultValue).(string), description)
	case bool:
		cmd.Flags().Bool(flagName, any(defaultValue).(bool), description)
	}
	if viperKey == "" {
		return nil
	}
	return viper.BindPFlag(viperKey, cmd.Flags().Lookup(flagName))
}
