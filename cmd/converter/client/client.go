// Package client provides commands that call a running converter server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-converter/internal/handlers/converter/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the converter server",
	Long:  `Client commands send stat-block text to a running converter server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "gRPC server address (default from config)")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(parseTextCmd)
	ClientCmd.AddCommand(convertTextCmd)
}

// SetDefaultAddr sets the address used when --server is not given
func SetDefaultAddr(addr string) {
	if serverAddr == "" {
		serverAddr = addr
	}
}

// createConverterClient creates a converter service client
func createConverterClient() (v1alpha1.ConverterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewConverterServiceClient(conn), cleanup, nil
}
