package ledgerservice

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/txe/internal/domain"
	"github.com/tuncanbit/txe/internal/domain/interfaces"
	"github.com/tuncanbit/txe/internal/repositories/accountrepo"
	"github.com/tuncanbit/txe/internal/repositories/depositrepo"
)

type ledgerService struct {
	accounts accountrepo.IAccountRepository
	deposits depositrepo.IDepositRepository
	logger   zerolog.Logger
	runID    string
	stats    Stats
}

func NewLedgerService(
	accounts accountrepo.IAccountRepository,
	deposits depositrepo.IDepositRepository,
	logger zerolog.Logger,
) ILedgerService {
	runID := uuid.New().String()
	return &ledgerService{
		accounts: accounts,
		deposits: deposits,
		logger:   logger.With().Str("run_id", runID).Logger(),
		runID:    runID,
	}
}

func (s *ledgerService) Apply(tx *domain.Transaction) error {
	switch tx.Type {
	case domain.TypeDeposit:
		return s.applyDeposit(tx)
	case domain.TypeWithdrawal:
		return s.applyWithdrawal(tx)
	case domain.TypeDispute:
		return s.applyDispute(tx)
	case domain.TypeResolve:
		return s.applyResolve(tx)
	case domain.TypeChargeback:
		return s.applyChargeback(tx)
	default:
		return fmt.Errorf("unknown transaction type: %q", tx.Type)
	}
}

func (s *ledgerService) applyDeposit(tx *domain.Transaction) error {
	if account, ok := s.accounts.Get(tx.Client); ok && account.Locked {
		s.dropLocked(tx)
		return nil
	}

	account := s.accounts.GetOrCreate(tx.Client)
	newAvailable, err := account.Available.Add(tx.Amount)
	if err != nil {
		return fmt.Errorf("deposit tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	record := &domain.DepositRecord{
		Client: tx.Client,
		Amount: tx.Amount,
		Status: domain.StatusOpen,
	}
	if err := s.deposits.Put(tx.Tx, record); err != nil {
		return fmt.Errorf("deposit tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	account.Available = newAvailable
	s.stats.Applied++
	return nil
}

func (s *ledgerService) applyWithdrawal(tx *domain.Transaction) error {
	if account, ok := s.accounts.Get(tx.Client); ok && account.Locked {
		s.dropLocked(tx)
		return nil
	}

	account := s.accounts.GetOrCreate(tx.Client)
	if account.Available < tx.Amount {
		s.stats.InsufficientFunds++
		s.logger.Debug().
			Uint32("tx", uint32(tx.Tx)).
			Uint16("client", uint16(tx.Client)).
			Msg("Withdrawal exceeds available funds, dropped")
		return nil
	}

	newAvailable, err := account.Available.Sub(tx.Amount)
	if err != nil {
		return fmt.Errorf("withdrawal tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	account.Available = newAvailable
	s.stats.Applied++
	return nil
}

// applyDispute moves the disputed deposit's amount from available to held.
// There is deliberately no lock check on the dispute family: a dispute is
// honored even against a locked account. Available may go negative here when
// a withdrawal landed between the deposit and the dispute; that is the
// documented outcome, not an error.
func (s *ledgerService) applyDispute(tx *domain.Transaction) error {
	record, ok, err := s.lookup(tx, domain.StatusOpen)
	if err != nil || !ok {
		return err
	}

	account, found := s.accounts.Get(tx.Client)
	if !found {
		s.stats.UnknownTransaction++
		return nil
	}

	newAvailable, err := account.Available.Sub(record.Amount)
	if err != nil {
		return fmt.Errorf("dispute of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}
	newHeld, err := account.Held.Add(record.Amount)
	if err != nil {
		return fmt.Errorf("dispute of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	if err := s.deposits.SetStatus(tx.Tx, domain.StatusDisputed); err != nil {
		return fmt.Errorf("dispute of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	account.Available = newAvailable
	account.Held = newHeld
	s.stats.Applied++
	return nil
}

func (s *ledgerService) applyResolve(tx *domain.Transaction) error {
	record, ok, err := s.lookup(tx, domain.StatusDisputed)
	if err != nil || !ok {
		return err
	}

	account, found := s.accounts.Get(tx.Client)
	if !found {
		s.stats.UnknownTransaction++
		return nil
	}

	newHeld, err := account.Held.Sub(record.Amount)
	if err != nil {
		return fmt.Errorf("resolve of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}
	newAvailable, err := account.Available.Add(record.Amount)
	if err != nil {
		return fmt.Errorf("resolve of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	if err := s.deposits.SetStatus(tx.Tx, domain.StatusResolved); err != nil {
		return fmt.Errorf("resolve of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	account.Available = newAvailable
	account.Held = newHeld
	s.stats.Applied++
	return nil
}

func (s *ledgerService) applyChargeback(tx *domain.Transaction) error {
	record, ok, err := s.lookup(tx, domain.StatusDisputed)
	if err != nil || !ok {
		return err
	}

	account, found := s.accounts.Get(tx.Client)
	if !found {
		s.stats.UnknownTransaction++
		return nil
	}

	newHeld, err := account.Held.Sub(record.Amount)
	if err != nil {
		return fmt.Errorf("chargeback of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	if err := s.deposits.SetStatus(tx.Tx, domain.StatusChargedBack); err != nil {
		return fmt.Errorf("chargeback of tx %d for client %d: %w", tx.Tx, tx.Client, err)
	}

	account.Held = newHeld
	account.Locked = true
	s.stats.Applied++

	s.logger.Debug().
		Uint32("tx", uint32(tx.Tx)).
		Uint16("client", uint16(tx.Client)).
		Msg("Chargeback applied, account locked")
	return nil
}

// lookup fetches the referenced deposit record and screens the dispute-family
// preconditions: the record must exist, belong to the event's client and be
// in wantStatus. Any miss is a silent no-op (ok=false, err=nil); an index
// I/O failure is fatal.
func (s *ledgerService) lookup(tx *domain.Transaction, wantStatus domain.DepositStatus) (*domain.DepositRecord, bool, error) {
	record, err := s.deposits.Get(tx.Tx)
	if errors.Is(err, depositrepo.ErrNotFound) {
		s.stats.UnknownTransaction++
		s.logger.Debug().
			Uint32("tx", uint32(tx.Tx)).
			Uint16("client", uint16(tx.Client)).
			Str("type", string(tx.Type)).
			Msg("Referenced transaction not found, dropped")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s of tx %d for client %d: %w", tx.Type, tx.Tx, tx.Client, err)
	}

	if record.Client != tx.Client {
		s.stats.ClientMismatch++
		s.logger.Debug().
			Uint32("tx", uint32(tx.Tx)).
			Uint16("client", uint16(tx.Client)).
			Str("type", string(tx.Type)).
			Msg("Referenced transaction belongs to another client, dropped")
		return nil, false, nil
	}

	if record.Status != wantStatus {
		s.stats.InvalidStatus++
		s.logger.Debug().
			Uint32("tx", uint32(tx.Tx)).
			Uint16("client", uint16(tx.Client)).
			Str("type", string(tx.Type)).
			Str("status", string(record.Status)).
			Msg("Referenced transaction not in required status, dropped")
		return nil, false, nil
	}

	return record, true, nil
}

func (s *ledgerService) dropLocked(tx *domain.Transaction) {
	s.stats.LockedAccount++
	s.logger.Debug().
		Uint32("tx", uint32(tx.Tx)).
		Uint16("client", uint16(tx.Client)).
		Str("type", string(tx.Type)).
		Msg("Account is locked, transaction dropped")
}

func (s *ledgerService) Replay(source interfaces.EventSource) error {
	startTime := time.Now()
	var total uint64

	for {
		tx, err := source.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to decode transaction log: %w", err)
		}
		if err := s.Apply(tx); err != nil {
			return err
		}
		total++
	}

	s.logger.Info().
		Uint64("transactions", total).
		Uint64("applied", s.stats.Applied).
		Uint64("dropped", total-s.stats.Applied).
		Int("accounts", s.accounts.Len()).
		Dur("elapsed", time.Since(startTime)).
		Msg("Replay completed")

	return nil
}

func (s *ledgerService) Snapshot() []domain.AccountRecord {
	return s.accounts.Snapshot()
}

func (s *ledgerService) Stats() Stats {
	return s.stats
}
