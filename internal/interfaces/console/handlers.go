package console

import (
	"context"
	"errors"

	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	"github.com/riskibarqy/roster-manager/internal/usecase"
)

func (s *Session) readJerseyNumber(prompt string) (int, error) {
	return s.prompter.Int(prompt, roster.MinJerseyNumber, roster.MaxJerseyNumber)
}

func (s *Session) readRating(prompt string) (int, error) {
	return s.prompter.Int(prompt, roster.MinRating, roster.MaxRating)
}

// The rating prompt is only issued once the jersey number is known to be free.
func (s *Session) handleAdd(ctx context.Context) error {
	jerseyNumber, err := s.readJerseyNumber("Enter jersey number to add: ")
	if err != nil {
		return err
	}
	if s.service.Contains(jerseyNumber) {
		s.println("Cannot add player. Already on roster.")
		return nil
	}

	rating, err := s.readRating("Enter rating: ")
	if err != nil {
		return err
	}
	if err := s.service.AddPlayer(ctx, jerseyNumber, rating); err != nil {
		if errors.Is(err, usecase.ErrAlreadyOnRoster) {
			s.println("Cannot add player. Already on roster.")
			return nil
		}
		return err
	}

	s.printf("Added player %d with rating %d to roster.\n", jerseyNumber, rating)
	return nil
}

func (s *Session) handleRemove(ctx context.Context) error {
	jerseyNumber, err := s.readJerseyNumber("Enter jersey number to remove: ")
	if err != nil {
		return err
	}

	if err := s.service.RemovePlayer(ctx, jerseyNumber); err != nil {
		if errors.Is(err, usecase.ErrNotOnRoster) {
			s.println("Player not on roster. Cannot remove.")
			return nil
		}
		return err
	}

	s.printf("Removed player %d from roster.\n", jerseyNumber)
	return nil
}

func (s *Session) handleUpdate(ctx context.Context) error {
	jerseyNumber, err := s.readJerseyNumber("Enter jersey number to update: ")
	if err != nil {
		return err
	}
	if !s.service.Contains(jerseyNumber) {
		s.println("Player not on roster. Cannot update.")
		return nil
	}

	rating, err := s.readRating("Enter new rating: ")
	if err != nil {
		return err
	}
	if err := s.service.UpdatePlayerRating(ctx, jerseyNumber, rating); err != nil {
		if errors.Is(err, usecase.ErrNotOnRoster) {
			s.println("Player not on roster. Cannot update.")
			return nil
		}
		return err
	}

	s.printf("Updated player %d to rating %d.\n", jerseyNumber, rating)
	return nil
}

func (s *Session) handleTopRated(ctx context.Context) error {
	maxRating, top, err := s.service.TopRated(ctx)
	if errors.Is(err, usecase.ErrEmptyRoster) {
		s.println("No players in roster.")
		return nil
	}
	if err != nil {
		return err
	}

	s.printf("Players with highest rating of %d:\n", maxRating)
	for _, jerseyNumber := range top {
		s.printf("%d\n", jerseyNumber)
	}
	return nil
}

func (s *Session) handleCut(ctx context.Context) error {
	s.println("All players rated lower than the entered rating will be cut from the roster.")
	threshold, err := s.readRating("Enter rating: ")
	if err != nil {
		return err
	}

	cut, err := s.service.CutRoster(ctx, threshold)
	if err != nil {
		return err
	}
	if len(cut) == 0 {
		s.println("No players were cut.")
		return nil
	}

	s.println("Players cut from roster:")
	for _, jerseyNumber := range cut {
		s.printf("%d\n", jerseyNumber)
	}
	return nil
}

func (s *Session) handleOutput(ctx context.Context) error {
	entries, err := s.service.ListRoster(ctx)
	if errors.Is(err, usecase.ErrEmptyRoster) {
		s.println("No players in roster.")
		return nil
	}
	if err != nil {
		return err
	}

	s.println("Number Rating")
	for _, e := range entries {
		s.printf("%4d %6d\n", e.JerseyNumber, e.Rating)
	}
	return nil
}
