package collector

import (
	"context"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/OmiShrestha/rpi5-system-info/internal/history"
	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
	"github.com/OmiShrestha/rpi5-system-info/internal/sysinfo"
)

type service struct {
	sampler sysinfo.Sampler
	store   history.Store
	log     logger.Logger
}

func NewService(sampler sysinfo.Sampler, store history.Store, log logger.Logger) (Service, error) {
	errFactory := errors.New()

	if sampler == nil {
		return nil, errFactory.New(ErrNilSampler)
	}

	if store == nil {
		return nil, errFactory.New(ErrNilStore)
	}

	if log == nil {
		log = logger.New()
	}

	return &service{
		sampler: sampler,
		store:   store,
		log:     log,
	}, nil
}

func (s *service) Status(ctx context.Context) sysinfo.Snapshot {
	snap := s.sampler.Collect(ctx)

	if err := s.store.Append(snap); err != nil {
		var domainErr errors.Error
		if errors.As(err, &domainErr) {
			s.log.ErrorWithCode(domainErr).Msg("Failed to record history entry")
		} else {
			s.log.Error().Err(err).Msg("Failed to record history entry")
		}
	}

	return snap
}

func (s *service) History(hours int) []history.Entry {
	return s.store.Recent(hours)
}
