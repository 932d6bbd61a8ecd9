package publisher

import (
	"context"
	"fmt"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"

	"github.com/google/uuid"
)

// PlatformPublisher pushes one video to a single social platform and
// returns the platform-side post ID.
type PlatformPublisher interface {
	Platform() entity.Platform
	Publish(ctx context.Context, video *entity.PostingVideo, caption, hashtags string) (string, error)
}

// Registry resolves publishers by platform name.
type Registry struct {
	publishers map[entity.Platform]PlatformPublisher
}

func NewRegistry(publishers ...PlatformPublisher) *Registry {
	byPlatform := make(map[entity.Platform]PlatformPublisher, len(publishers))
	for _, p := range publishers {
		byPlatform[p.Platform()] = p
	}
	return &Registry{publishers: byPlatform}
}

func (r *Registry) Get(platform entity.Platform) (PlatformPublisher, error) {
	p, ok := r.publishers[platform]
	if !ok {
		return nil, apperr.Validation("no publisher configured for platform %s", platform)
	}
	return p, nil
}

// stubPublisher stands in for a real platform integration. It accepts every
// publish and fabricates a post ID, which is enough for the dashboard flow
// until platform credentials are wired up.
type stubPublisher struct {
	platform entity.Platform
	logger   *logger.Logger
}

func NewStubPublisher(platform entity.Platform, l *logger.Logger) PlatformPublisher {
	return &stubPublisher{platform: platform, logger: l}
}

func (p *stubPublisher) Platform() entity.Platform {
	return p.platform
}

func (p *stubPublisher) Publish(ctx context.Context, video *entity.PostingVideo, caption, hashtags string) (string, error) {
	select {
	case <-ctx.Done():
		return "", apperr.ExternalAdapter(ctx.Err(), "publish to %s cancelled", p.platform)
	default:
	}

	externalID := fmt.Sprintf("%s-%s", p.platform, uuid.New().String())
	p.logger.Info("Published video %s to %s as %s (caption %q)", video.ID, p.platform, externalID, caption)
	return externalID, nil
}

// DefaultRegistry wires a stub publisher for every supported platform.
func DefaultRegistry(l *logger.Logger) *Registry {
	publishers := make([]PlatformPublisher, 0, len(entity.Platforms()))
	for _, platform := range entity.Platforms() {
		publishers = append(publishers, NewStubPublisher(platform, l))
	}
	return NewRegistry(publishers...)
}
