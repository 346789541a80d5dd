package workflow

import (
	"fmt"
	"sync"

	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
)

// Step is one of the user triggered workflow steps
type Step string

// Workflow steps in their natural order
const (
	StepConnect Step = "connect"
	StepKeypair Step = "keypair"
	StepClient  Step = "client"
	StepDeploy  Step = "deploy"
	StepSignup  Step = "signup"
	StepVote    Step = "vote"
)

// Steps returns all steps in their natural order
func Steps() []Step {
	return []Step{StepConnect, StepKeypair, StepClient, StepDeploy, StepSignup, StepVote}
}

// ParseStep returns the step with the given name
func ParseStep(name string) (Step, error) {
	for _, step := range Steps() {
		if string(step) == name {
			return step, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownStep, name)
}

// SignerSession is a connected wallet account
type SignerSession struct {
	Signer  OfflineSigner
	Address string
}

// TxRecord references a transaction submitted by a step
type TxRecord struct {
	Hash        string `json:"hash"`
	ExplorerURL string `json:"explorer_url"`
}

type keypairSlot struct {
	keypair maci.Keypair
	owner   string
}

// Session holds the state chaining the workflow steps
type Session struct {
	mu      sync.RWMutex
	signer  utils.Option[SignerSession]
	keypair utils.Option[keypairSlot]
	client  utils.Option[ProtocolClient]
	round   utils.Option[string]
	txs     map[Step]TxRecord
	busy    map[Step]bool
}

// NewSession returns an empty session
func NewSession() *Session {
	return &Session{
		txs:  make(map[Step]TxRecord),
		busy: make(map[Step]bool),
	}
}

// Signer returns the connected wallet account
func (s *Session) Signer() utils.Option[SignerSession] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.signer
}

// Keypair returns the derived voting keypair
func (s *Session) Keypair() utils.Option[maci.Keypair] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if slot, ok := s.keypair.Get(); ok {
		return utils.Some(slot.keypair)
	}

	return utils.None[maci.Keypair]()
}

// Client returns the protocol client
func (s *Session) Client() utils.Option[ProtocolClient] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.client
}

// Round returns the address of the deployed round
func (s *Session) Round() utils.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.round
}

// TxRecord returns the transaction record of the given step
func (s *Session) TxRecord(step Step) (TxRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.txs[step]
	return record, ok
}

// IsBusy returns true while the given step runs
func (s *Session) IsBusy(step Step) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.busy[step]
}

// acquire marks the step busy. The returned release must be called exactly once.
func (s *Session) acquire(step Step) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy[step] {
		return nil, fmt.Errorf("%w: %s", ErrStepBusy, step)
	}
	s.busy[step] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			s.busy[step] = false
		})
	}, nil
}

// setSigner replaces the connected account. The client is dropped unless the same account reconnects,
// and a keypair derived for another account is dropped as well.
func (s *Session) setSigner(signer utils.Option[SignerSession]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, wasConnected := s.signer.Get()
	next, connected := signer.Get()
	if !connected || !wasConnected || prev.Address != next.Address {
		s.client = utils.None[ProtocolClient]()
	}

	if slot, ok := s.keypair.Get(); ok && connected && slot.owner != next.Address {
		s.keypair = utils.None[keypairSlot]()
	}

	s.signer = signer
}

func (s *Session) keypairOf(owner string) (maci.Keypair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.keypair.Get()
	if !ok || slot.owner != owner {
		return maci.Keypair{}, false
	}

	return slot.keypair, true
}

// setKeypair stores a new keypair and drops the client built from the previous one
func (s *Session) setKeypair(owner string, keypair maci.Keypair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keypair = utils.Some(keypairSlot{keypair: keypair, owner: owner})
	s.client = utils.None[ProtocolClient]()
}

func (s *Session) setClient(client ProtocolClient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.client = utils.Some(client)
}

func (s *Session) setRound(round string, record TxRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round = utils.Some(round)
	s.txs[StepDeploy] = record
}

func (s *Session) setTxRecord(step Step, record TxRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs[step] = record
}

// Status is a snapshot of the session
type Status struct {
	Network      string            `json:"network"`
	ChainID      string            `json:"chain_id"`
	Address      string            `json:"address,omitempty"`
	PubKey       []string          `json:"pubkey,omitempty"`
	PackedPubKey string            `json:"packed_pubkey,omitempty"`
	HasClient    bool              `json:"has_client"`
	Round        string            `json:"round,omitempty"`
	Txs          map[Step]TxRecord `json:"txs"`
	Busy         map[Step]bool     `json:"busy"`
}

func (s *Session) snapshot() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		Txs:       make(map[Step]TxRecord, len(s.txs)),
		Busy:      make(map[Step]bool, len(Steps())),
		HasClient: s.client.IsSome(),
		Round:     s.round.OrElse(""),
	}

	if signer, ok := s.signer.Get(); ok {
		status.Address = signer.Address
	}

	if slot, ok := s.keypair.Get(); ok {
		status.PubKey = []string{slot.keypair.PubKey[0].String(), slot.keypair.PubKey[1].String()}
		status.PackedPubKey = maci.PackPubKey(slot.keypair.PubKey).String()
	}

	for step, record := range s.txs {
		status.Txs[step] = record
	}

	for _, step := range Steps() {
		status.Busy[step] = s.busy[step]
	}

	return status
}
