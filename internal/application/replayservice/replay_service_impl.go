package replayservice

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tuncanbit/txe/internal/application/ledgerservice"
	"github.com/tuncanbit/txe/internal/domain"
	"github.com/tuncanbit/txe/internal/infrastructure/csvio"
	"github.com/tuncanbit/txe/internal/repositories/accountrepo"
	"github.com/tuncanbit/txe/internal/repositories/depositrepo"
	"github.com/tuncanbit/txe/pkg/config"
)

type replayService struct {
	cfg    config.EngineConfig
	logger zerolog.Logger
}

func New(cfg config.EngineConfig, logger zerolog.Logger) IReplayService {
	return &replayService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *replayService) Run(input io.Reader, output io.Writer) error {
	records, _, err := s.RunSnapshot(input)
	if err != nil {
		return err
	}
	return csvio.WriteSnapshot(output, records)
}

func (s *replayService) RunSnapshot(input io.Reader) ([]domain.AccountRecord, ledgerservice.Stats, error) {
	deposits, err := s.newDepositIndex()
	if err != nil {
		return nil, ledgerservice.Stats{}, err
	}
	defer deposits.Close()

	ledger := ledgerservice.NewLedgerService(accountrepo.New(), deposits, s.logger)

	if err := ledger.Replay(csvio.NewReader(input)); err != nil {
		return nil, ledgerservice.Stats{}, err
	}

	return ledger.Snapshot(), ledger.Stats(), nil
}

func (s *replayService) newDepositIndex() (depositrepo.IDepositRepository, error) {
	switch s.cfg.Index {
	case config.IndexMemory, "":
		return depositrepo.New(), nil
	case config.IndexDisk:
		return depositrepo.NewBolt(s.cfg.IndexPath)
	default:
		return nil, fmt.Errorf("unknown deposit index backend: %q", s.cfg.Index)
	}
}
