package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	punct "github.com/azielinski/go-punct"
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore punctuation in plain text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			cfg := activeCfg
			restorer, err := punct.New(cfg.Paths.ModelPath, cfg.Paths.TokenizerPath,
				punct.WithMaxSeqLen(cfg.Chunk.MaxSeqLen))
			if err != nil {
				return err
			}
			defer restorer.Close()

			restored, err := restorer.Restore(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), restored)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to punctuate; omitted, text is read from stdin")

	return cmd
}

func readInputText(flagText string, stdin io.Reader) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(data))
	if input == "" {
		return "", fmt.Errorf("no input text, pass --text or pipe to stdin")
	}
	return input, nil
}
