package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// AuditorPartyRepository is the slice of party storage the auditor reads
type AuditorPartyRepository interface {
	ListAll(ctx context.Context) ([]model.Party, error)
}

// AuditorMemberRepository is the slice of member storage the auditor
// reads
type AuditorMemberRepository interface {
	List(ctx context.Context) ([]model.Member, error)
}

// IntegrityAuditor periodically verifies the slot occupancy invariants
// across all stored parties and logs any violation. It repairs nothing;
// a violation means a write path has a bug.
type IntegrityAuditor struct {
	partyRepo  AuditorPartyRepository
	memberRepo AuditorMemberRepository
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	running    bool
	mu         sync.Mutex
}

// NewIntegrityAuditor creates a new integrity auditor job
func NewIntegrityAuditor(partyRepo AuditorPartyRepository, memberRepo AuditorMemberRepository, interval time.Duration) *IntegrityAuditor {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	return &IntegrityAuditor{
		partyRepo:  partyRepo,
		memberRepo: memberRepo,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the auditor job
func (a *IntegrityAuditor) Start() {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.mu.Unlock()

	a.wg.Add(1)
	go a.run()
	slog.Info("integrity auditor started", slog.Duration("interval", a.interval))
}

// Stop gracefully stops the auditor job
func (a *IntegrityAuditor) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	a.mu.Unlock()

	close(a.stopCh)
	a.wg.Wait()
	slog.Info("integrity auditor stopped")
}

// IsRunning returns whether the auditor is running
func (a *IntegrityAuditor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *IntegrityAuditor) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.audit()
		case <-a.stopCh:
			return
		}
	}
}

func (a *IntegrityAuditor) audit() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := a.RunOnce(ctx); err != nil {
		slog.Error("integrity audit failed", slog.Any("error", err))
	}
}

// RunOnce performs one audit pass. Returns an error only when the data
// could not be read; violations are logged, not returned.
func (a *IntegrityAuditor) RunOnce(ctx context.Context) error {
	parties, err := a.partyRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list parties: %w", err)
	}
	members, err := a.memberRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	known := make(map[int64]struct{}, len(members))
	for _, m := range members {
		known[m.ID] = struct{}{}
	}

	for _, t := range model.PartyTypes {
		if dups := model.DuplicateAssignments(parties, t); len(dups) > 0 {
			slog.Error("duplicate slot assignments detected",
				slog.String("party_type", string(t)),
				slog.Any("member_ids", dups),
			)
		}
	}

	for i := range parties {
		for _, id := range parties[i].AssignedIDs() {
			if _, ok := known[id]; !ok {
				slog.Error("slot holds unknown member",
					slog.String("party_id", parties[i].ID),
					slog.Int64("member_id", id),
				)
			}
		}
	}

	return nil
}
