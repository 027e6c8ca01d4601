package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	"github.com/riskibarqy/roster-manager/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// RosterService owns the session roster and the snapshot repository behind it.
type RosterService struct {
	repo   roster.Repository
	roster *roster.Roster
	logger *logging.Logger
}

func NewRosterService(repo roster.Repository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		repo:   repo,
		roster: roster.New(),
		logger: logger,
	}
}

// Open loads the starting snapshot. found is false when the source does not
// exist, in which case the session starts with an empty roster.
func (s *RosterService) Open(ctx context.Context) (found bool, err error) {
	ctx, span := startRosterSpan(ctx, "Open")
	defer func() { finishRosterSpan(span, err) }()

	loaded, err := s.repo.Load(ctx)
	if errors.Is(err, roster.ErrSourceNotFound) {
		s.roster = roster.New()
		span.SetAttributes(attrSource.String(s.repo.Source()), attribute.Bool("roster.source_found", false))
		s.logger.InfoContext(ctx, "roster source not found, starting empty", "source", s.repo.Source())
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load roster: %w", err)
	}
	if loaded == nil {
		loaded = roster.New()
	}

	s.roster = loaded
	span.SetAttributes(attrSource.String(s.repo.Source()), attrPlayers.Int(loaded.Len()))
	s.logger.InfoContext(ctx, "roster loaded", "source", s.repo.Source(), "players", loaded.Len())
	return true, nil
}

// Source names where Open reads from.
func (s *RosterService) Source() string {
	return s.repo.Source()
}

// Persist saves the whole roster.
func (s *RosterService) Persist(ctx context.Context) (err error) {
	ctx, span := startRosterSpan(ctx, "Persist", attrPlayers.Int(s.roster.Len()))
	defer func() { finishRosterSpan(span, err) }()

	if err := s.repo.Save(ctx, s.roster); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}

	s.logger.InfoContext(ctx, "roster saved", "players", s.roster.Len())
	return nil
}

func (s *RosterService) Contains(jerseyNumber int) bool {
	return s.roster.Contains(jerseyNumber)
}

func (s *RosterService) AddPlayer(ctx context.Context, jerseyNumber, rating int) (err error) {
	ctx, span := startRosterSpan(ctx, "AddPlayer", attrJerseyNumber.Int(jerseyNumber), attrRating.Int(rating))
	defer func() { finishRosterSpan(span, err) }()

	if err := validateJerseyNumber(jerseyNumber); err != nil {
		return err
	}
	if err := validateRating(rating); err != nil {
		return err
	}
	if s.roster.Contains(jerseyNumber) {
		return fmt.Errorf("%w: jersey=%d", ErrAlreadyOnRoster, jerseyNumber)
	}

	s.roster.Set(jerseyNumber, rating)
	s.logger.DebugContext(ctx, "player added", "jersey_number", jerseyNumber, "rating", rating)
	return nil
}

func (s *RosterService) RemovePlayer(ctx context.Context, jerseyNumber int) (err error) {
	ctx, span := startRosterSpan(ctx, "RemovePlayer", attrJerseyNumber.Int(jerseyNumber))
	defer func() { finishRosterSpan(span, err) }()

	if err := validateJerseyNumber(jerseyNumber); err != nil {
		return err
	}
	if !s.roster.Delete(jerseyNumber) {
		return fmt.Errorf("%w: jersey=%d", ErrNotOnRoster, jerseyNumber)
	}

	s.logger.DebugContext(ctx, "player removed", "jersey_number", jerseyNumber)
	return nil
}

func (s *RosterService) UpdatePlayerRating(ctx context.Context, jerseyNumber, rating int) (err error) {
	ctx, span := startRosterSpan(ctx, "UpdatePlayerRating", attrJerseyNumber.Int(jerseyNumber), attrRating.Int(rating))
	defer func() { finishRosterSpan(span, err) }()

	if err := validateJerseyNumber(jerseyNumber); err != nil {
		return err
	}
	if err := validateRating(rating); err != nil {
		return err
	}
	if !s.roster.Contains(jerseyNumber) {
		return fmt.Errorf("%w: jersey=%d", ErrNotOnRoster, jerseyNumber)
	}

	s.roster.Set(jerseyNumber, rating)
	s.logger.DebugContext(ctx, "player rating updated", "jersey_number", jerseyNumber, "rating", rating)
	return nil
}

// TopRated returns the highest rating and all jersey numbers holding it, ascending.
func (s *RosterService) TopRated(ctx context.Context) (maxRating int, top []int, err error) {
	_, span := startRosterSpan(ctx, "TopRated", attrPlayers.Int(s.roster.Len()))
	defer func() { finishRosterSpan(span, err) }()

	if s.roster.Len() == 0 {
		return 0, nil, ErrEmptyRoster
	}

	maxRating, top = s.roster.TopRated()
	span.SetAttributes(attrRating.Int(maxRating))
	return maxRating, top, nil
}

// CutRoster removes every player rated lower than threshold and returns the
// removed jersey numbers in roster order.
func (s *RosterService) CutRoster(ctx context.Context, threshold int) (cut []int, err error) {
	ctx, span := startRosterSpan(ctx, "CutRoster", attrThreshold.Int(threshold))
	defer func() { finishRosterSpan(span, err) }()

	if err := validateRating(threshold); err != nil {
		return nil, err
	}

	cut = s.roster.Cut(threshold)
	span.SetAttributes(attribute.Int("roster.cut_count", len(cut)))
	s.logger.DebugContext(ctx, "roster cut", "threshold", threshold, "cut", len(cut))
	return cut, nil
}

// ListRoster returns every player ascending by jersey number.
func (s *RosterService) ListRoster(ctx context.Context) (entries []roster.Entry, err error) {
	_, span := startRosterSpan(ctx, "ListRoster", attrPlayers.Int(s.roster.Len()))
	defer func() { finishRosterSpan(span, err) }()

	if s.roster.Len() == 0 {
		return nil, ErrEmptyRoster
	}

	return s.roster.Sorted(), nil
}

func validateJerseyNumber(n int) error {
	if n < roster.MinJerseyNumber || n > roster.MaxJerseyNumber {
		return fmt.Errorf("%w: jersey number %d outside %d..%d", ErrInvalidInput, n, roster.MinJerseyNumber, roster.MaxJerseyNumber)
	}
	return nil
}

func validateRating(r int) error {
	if r < roster.MinRating || r > roster.MaxRating {
		return fmt.Errorf("%w: rating %d outside %d..%d", ErrInvalidInput, r, roster.MinRating, roster.MaxRating)
	}
	return nil
}
