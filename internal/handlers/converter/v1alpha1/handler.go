// Package v1alpha1 handles the converter grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
)

// HandlerConfig holds dependencies for the converter handler
type HandlerConfig struct {
	Importer importer.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Importer == nil {
		return errors.InvalidArgument("importer is required")
	}
	return nil
}

// Handler implements ConverterServiceServer
type Handler struct {
	importer importer.Service
}

var _ ConverterServiceServer = (*Handler)(nil)

// NewHandler creates a new converter handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{importer: cfg.Importer}, nil
}

// ParseText parses stat-block text and returns the record
func (h *Handler) ParseText(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	out, err := h.parse(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result, err := toStruct(out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return result, nil
}

// ConvertText parses stat-block text and returns the adversary document
func (h *Handler) ConvertText(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	out, err := h.parse(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result, err := toStruct(out.Output.Adversary)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return result, nil
}

func (h *Handler) parse(ctx context.Context, req *wrapperspb.StringValue) (*importer.ParseTextOutput, error) {
	if req == nil || strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.InvalidArgument("text is required")
	}

	return h.importer.ParseText(ctx, &importer.ParseTextInput{Text: req.GetValue()})
}

// toStruct goes through JSON so the struct matches the written documents
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	result := &structpb.Struct{}
	if err := protojson.Unmarshal(data, result); err != nil {
		return nil, errors.Wrap(err, "failed to build response struct")
	}
	return result, nil
}
