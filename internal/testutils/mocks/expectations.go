// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	ocrmock "github.com/KirkDiggler/rpg-converter/internal/clients/ocr/mock"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache"
	ocrcachemock "github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache/mock"
)

// ExpectCacheHit sets up a cache lookup that returns text
func ExpectCacheHit(
	ctx context.Context, mockRepo *ocrcachemock.MockRepository,
	imageHash, text string,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, ocrcache.GetInput{ImageHash: imageHash}).
		Return(&ocrcache.GetOutput{Entry: &ocrcache.Entry{ImageHash: imageHash, Text: text}}, nil)
}

// ExpectCacheMiss sets up a cache lookup that finds nothing
func ExpectCacheMiss(
	ctx context.Context, mockRepo *ocrcachemock.MockRepository,
	imageHash string,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, ocrcache.GetInput{ImageHash: imageHash}).
		Return(nil, errors.NotFoundf("ocr text for %s not cached", imageHash))
}

// ExpectRecognize sets up an OCR run on path
func ExpectRecognize(
	ctx context.Context, mockEngine *ocrmock.MockEngine,
	path, text string, err error,
) *gomock.Call {
	return mockEngine.EXPECT().
		Recognize(ctx, path).
		Return(text, err)
}

// ExpectCacheStore sets up the write that follows a fresh OCR run
func ExpectCacheStore(
	ctx context.Context, mockRepo *ocrcachemock.MockRepository,
	imageHash, source, text string,
) *gomock.Call {
	return mockRepo.EXPECT().
		Put(ctx, ocrcache.PutInput{ImageHash: imageHash, Source: source, Text: text}).
		Return(&ocrcache.PutOutput{}, nil)
}
