package slotpass

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/oarkflow/clipboard"
	"github.com/spf13/cobra"
)

// deriveOptions carries the flag values of the command tree.
type deriveOptions struct {
	value   string
	salt    string
	claim   string
	hex     bool
	quiet   bool
	copy    bool
	verbose bool
}

// newRootCmd builds the slotpass command tree.
func newRootCmd() *cobra.Command {
	opts := &deriveOptions{}
	rootCmd := &cobra.Command{
		Use:   "slotpass",
		Short: "Derive a claim password from two storage-slot values",
		Long: `slotpass reconstructs a numeric password from two storage-slot values: a
hidden base value and a public salt. The values are added, the sum is encoded
as a 32-byte big-endian word, the word is hashed with legacy Keccak-256, and
the digest is reinterpreted as a big-endian unsigned integer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.value, "value", "", "hidden slot value (decimal or 0x-hex)")
	rootCmd.PersistentFlags().StringVar(&opts.salt, "salt", "", "salt slot value (decimal or 0x-hex)")
	rootCmd.PersistentFlags().StringVar(&opts.claim, "claim", "", "YAML claim file holding value and salt")
	rootCmd.Flags().BoolVar(&opts.hex, "hex", false, "print the password as 0x-hex instead of decimal")
	rootCmd.Flags().BoolVar(&opts.quiet, "quiet", false, "print the bare password without the Password: prefix")
	rootCmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the password to the system clipboard")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "trace the pipeline intermediates on stderr")

	rootCmd.AddCommand(newEncodeCmd(opts))
	return rootCmd
}

// newEncodeCmd exposes the intermediate 32-byte word for inspection.
func newEncodeCmd(opts *deriveOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Print the 32-byte big-endian word fed to the hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, salt, err := resolveSlotValues(opts)
			if err != nil {
				return err
			}
			combined, err := Combine(value, salt)
			if err != nil {
				return err
			}
			word, err := EncodeWord(combined)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
}

func runDerive(cmd *cobra.Command, opts *deriveOptions) error {
	value, salt, err := resolveSlotValues(opts)
	if err != nil {
		return err
	}
	combined, err := Combine(value, salt)
	if err != nil {
		return err
	}
	word, err := EncodeWord(combined)
	if err != nil {
		return err
	}
	password, err := Default().DeriveWord(word)
	if err != nil {
		return err
	}
	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		logger.Info("combined slot values", "value", value, "salt", salt, "combined", combined)
		logger.Info("encoded word", "word", word)
		logger.Info("derived password", "digest", fmt.Sprintf("%064x", password), "password", password)
	}
	out := password.String()
	if opts.hex {
		out = fmt.Sprintf("0x%064x", password)
	}
	if opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Password:", out)
	}
	if opts.copy {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "error copying password:", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "password copied to clipboard")
		}
	}
	return nil
}

// resolveSlotValues applies the flag > environment > claim file > prompt
// precedence and parses the two slot values. The salt is resolved before
// any prompt so a missing salt fails without an interactive round trip.
func resolveSlotValues(opts *deriveOptions) (*big.Int, *big.Int, error) {
	envCfg, err := FromEnv()
	if err != nil {
		return nil, nil, err
	}
	var claimCfg Config
	if opts.claim != "" {
		claimCfg, err = LoadClaimFile(opts.claim)
		if err != nil {
			return nil, nil, err
		}
	}
	rawValue := firstSet(opts.value, envCfg.Value, claimCfg.Value)
	rawSalt := firstSet(opts.salt, envCfg.Salt, claimCfg.Salt)
	if rawSalt == "" {
		return nil, nil, fmt.Errorf("salt not supplied (use --salt, SLOTPASS_SALT, or a claim file): %w", ErrInvalidInput)
	}
	if rawValue == "" {
		rawValue, err = PromptValue()
		if err != nil {
			return nil, nil, err
		}
	}
	value, err := ParseSlotValue(rawValue)
	if err != nil {
		return nil, nil, fmt.Errorf("value: %w", err)
	}
	salt, err := ParseSlotValue(rawSalt)
	if err != nil {
		return nil, nil, fmt.Errorf("salt: %w", err)
	}
	return value, salt, nil
}

func firstSet(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// Execute runs the slotpass CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
