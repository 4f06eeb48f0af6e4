package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/domain/scoring"
	"fanvoyage/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLeadID = errors.New("invalid lead id")
)

// InvalidTransitionError reports a status move rejected by the transition
// table.
type InvalidTransitionError struct {
	From entities.LeadStatus
	To   entities.LeadStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ILeadUseCase exposes lead lifecycle operations.
//
// TransitionStatus is the only sanctioned way to change a lead's status; it
// appends a history entry and rescores the lead on every move.
type ILeadUseCase interface {
	Create(ctx context.Context, input CreateLeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, id string, patch entities.LeadPatch) (entities.Lead, error)
	TransitionStatus(ctx context.Context, id string, to entities.LeadStatus, actor, note string) (entities.Lead, error)
}

type CreateLeadInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Position string
	Actor    string
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, log *zap.Logger) *LeadUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadUseCase{repo: repo, log: log, now: time.Now}
}

func (u *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (entities.Lead, error) {
	now := u.now().UTC()
	l := entities.Lead{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Company:   strings.TrimSpace(input.Company),
		Position:  strings.TrimSpace(input.Position),
		Status:    entities.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.StatusHistory = append(l.StatusHistory, entities.LeadStatusHistory{
		To:    entities.LeadStatusNew,
		Actor: actorOrSystem(input.Actor),
		Note:  "Lead created",
		At:    now,
	})
	l.Score = scoring.Score(l, now)

	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

// Update applies a partial update onto the stored lead snapshot and rescores
// it. Fields absent from the patch keep their current value.
func (u *LeadUseCase) Update(ctx context.Context, id string, patch entities.LeadPatch) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	now := u.now().UTC()
	merged := entities.MergeLead(l, patch)
	merged.Score = scoring.Score(merged, now)
	merged.UpdatedAt = now

	return u.repo.Update(ctx, merged)
}

func (u *LeadUseCase) TransitionStatus(ctx context.Context, id string, to entities.LeadStatus, actor, note string) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	now := u.now().UTC()
	if err := applyTransition(&l, to, actorOrSystem(actor), note, now); err != nil {
		return entities.Lead{}, err
	}

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	u.log.Info("lead status transitioned",
		zap.String("lead_id", l.ID),
		zap.String("status", string(to)),
		zap.Int("score", updated.Score))
	return updated, nil
}

// applyTransition mutates the lead in place: status, history entry, score.
// Rejected moves leave the lead untouched.
func applyTransition(l *entities.Lead, to entities.LeadStatus, actor, note string, now time.Time) error {
	if !entities.ValidateTransition(l.Status, to) {
		return &InvalidTransitionError{From: l.Status, To: to}
	}

	prev := l.Status
	l.Status = to
	l.StatusHistory = append(l.StatusHistory, entities.LeadStatusHistory{
		From:  &prev,
		To:    to,
		Actor: actor,
		Note:  note,
		At:    now,
	})
	l.Score = scoring.Score(*l, now)
	l.UpdatedAt = now
	return nil
}

func actorOrSystem(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "system"
	}
	return actor
}
