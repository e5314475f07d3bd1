// Package staking holds the validator set and the reward pool of a standalone node.
package staking

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

var (
	// ErrValidatorExists is returned when adding a validator twice.
	ErrValidatorExists = errors.New("validator already exists")
	// ErrValidatorNotFound is returned for an unknown validator.
	ErrValidatorNotFound = errors.New("validator not found")
)

// Status of a validator in the set.
type Status struct {
	Jailed       bool   `json:"jailed"`
	Misdemeanors uint64 `json:"misdemeanors"`
	Felonies     uint64 `json:"felonies"`
}

type member struct {
	types.Validator
	Status
}

// Set is the current validator set. A felony jails a validator, jailed validators
// are neither current members nor living validators until they are released.
type Set struct {
	logger *zap.Logger

	mu      sync.RWMutex
	members []*member
	index   map[types.ValidatorID]*member
}

// NewSet creates a set with validators. Duplicates are rejected.
func NewSet(logger *zap.Logger, validators []types.Validator) (*Set, error) {
	s := &Set{
		logger: logger,
		index:  make(map[types.ValidatorID]*member, len(validators)),
	}
	for _, v := range validators {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add a validator to the set.
func (s *Set) Add(v types.Validator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[v.ID]; exists {
		return fmt.Errorf("%w: %s", ErrValidatorExists, v.ID)
	}
	m := &member{Validator: v}
	s.members = append(s.members, m)
	s.index[v.ID] = m
	return nil
}

// IsCurrentMember returns true if id is in the set and not jailed.
func (s *Set) IsCurrentMember(id types.ValidatorID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, exists := s.index[id]
	return exists && !m.Jailed
}

// LivingValidators returns validators that are not jailed, in the order they were added.
func (s *Set) LivingValidators() []types.Validator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rst := make([]types.Validator, 0, len(s.members))
	for _, m := range s.members {
		if !m.Jailed {
			rst = append(rst, m.Validator)
		}
	}
	return rst
}

// EscalateFelony jails the validator.
func (s *Set) EscalateFelony(id types.ValidatorID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.index[id]
	if !exists {
		s.logger.Warn("felony for unknown validator", zap.Stringer("validator", id))
		return
	}
	m.Felonies++
	m.Jailed = true
	s.logger.Info("validator jailed", zap.Stringer("validator", id), zap.Uint64("felonies", m.Felonies))
}

// EscalateMisdemeanor records a misdemeanor.
func (s *Set) EscalateMisdemeanor(id types.ValidatorID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.index[id]
	if !exists {
		s.logger.Warn("misdemeanor for unknown validator", zap.Stringer("validator", id))
		return
	}
	m.Misdemeanors++
	s.logger.Debug("validator misdemeanor",
		zap.Stringer("validator", id),
		zap.Uint64("misdemeanors", m.Misdemeanors),
	)
}

// Release returns a jailed validator to the set.
func (s *Set) Release(id types.ValidatorID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.index[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrValidatorNotFound, id)
	}
	m.Jailed = false
	return nil
}

// Status returns the status of the validator.
func (s *Set) Status(id types.ValidatorID) (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, exists := s.index[id]
	if !exists {
		return Status{}, fmt.Errorf("%w: %s", ErrValidatorNotFound, id)
	}
	return m.Status, nil
}
