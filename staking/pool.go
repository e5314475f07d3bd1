package staking

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

// ErrInsufficientBalance is returned when the pool can't cover a payment.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Pool is the reward pool finality evidence submitters are paid from.
type Pool struct {
	logger *zap.Logger

	mu      sync.Mutex
	balance types.Amount
	paid    map[types.ValidatorID]types.Amount
}

// NewPool creates a pool holding balance.
func NewPool(logger *zap.Logger, balance types.Amount) *Pool {
	return &Pool{
		logger:  logger,
		balance: balance,
		paid:    map[types.ValidatorID]types.Amount{},
	}
}

// Balance returns the current balance.
func (p *Pool) Balance() types.Amount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}

// Deposit adds amount to the pool and returns the new balance.
func (p *Pool) Deposit(amount types.Amount) types.Amount {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance += amount
	return p.balance
}

// Pay transfers amount to recipient.
func (p *Pool) Pay(recipient types.ValidatorID, amount types.Amount) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount > p.balance {
		return fmt.Errorf("%w: pay %d, balance %d", ErrInsufficientBalance, amount, p.balance)
	}
	p.balance -= amount
	p.paid[recipient] += amount
	p.logger.Info("paid reward",
		zap.Stringer("recipient", recipient),
		zap.Uint64("amount", uint64(amount)),
		zap.Uint64("balance", uint64(p.balance)),
	)
	return nil
}

// Paid returns the total amount paid to recipient.
func (p *Pool) Paid(recipient types.ValidatorID) types.Amount {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paid[recipient]
}
