package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/rpg-converter/internal/handlers/converter/v1alpha1"
)

var parseTextCmd = &cobra.Command{
	Use:   "parse-text [file]",
	Short: "Parse stat-block text on the server",
	Long: `Send stat-block text from file, or stdin when file is "-" or missing, and print
the parsed record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, args, v1alpha1.ConverterServiceClient.ParseText)
	},
}

var convertTextCmd = &cobra.Command{
	Use:   "convert-text [file]",
	Short: "Convert stat-block text on the server",
	Long:  `Send stat-block text and print the Daggerheart adversary document.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, args, v1alpha1.ConverterServiceClient.ConvertText)
	},
}

type method func(
	v1alpha1.ConverterServiceClient,
	context.Context,
	*wrapperspb.StringValue,
	...grpc.CallOption,
) (*structpb.Struct, error)

func call(cmd *cobra.Command, args []string, m method) error {
	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	client, cleanup, err := createConverterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := m(client, ctx, wrapperspb.String(text))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "    "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- path is a user argument
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
