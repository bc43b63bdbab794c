package logic

import (
	"context"
	"fmt"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_documents.go -package mocks twitter_webview/logic IDocuments

// IDocuments renders the content behind a content URI.
type IDocuments interface {
	Render(ctx context.Context, uri string) (string, error)
}

type documents struct {
	logger    shared.ILogger
	registry  IRegistry
	formatter IFormatter
}

func NewDocuments(logger shared.ILogger, registry IRegistry, formatter IFormatter) IDocuments {
	return &documents{
		logger:    logger,
		registry:  registry,
		formatter: formatter,
	}
}

// Render bootstraps the timeline on first use. A failed fetch is returned as an error, never as a partial page.
func (d *documents) Render(ctx context.Context, uri string) (string, error) {
	ref, err := shared.ParseContentUri(uri)
	if err != nil {
		return "", err
	}
	if ref.Kind == shared.ContentImage {
		return d.formatter.RenderImage(ref.Param), nil
	}
	tl := d.registry.Resolve(ref.Feed, ref.Param)
	if tl == nil {
		return "", fmt.Errorf("%w: no feed for '%s'", shared.ErrBadContentUri, uri)
	}
	if err = tl.EnsureLoaded(ctx); err != nil {
		d.logger.Warnf("Failed to load %s: %v", uri, err)
		return "", err
	}
	return d.formatter.FormatTimeline(tl), nil
}
