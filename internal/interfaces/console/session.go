package console

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/roster-manager/internal/platform/logging"
	"github.com/riskibarqy/roster-manager/internal/usecase"
)

type handlerFunc func(ctx context.Context) error

// Session runs the menu loop over one roster from open to save.
type Session struct {
	service  *usecase.RosterService
	prompter *Prompter
	out      io.Writer
	logger   *logging.Logger
	handlers map[Choice]handlerFunc
}

func NewSession(service *usecase.RosterService, in io.Reader, out io.Writer, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Session{
		service:  service,
		prompter: NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}
	s.handlers = map[Choice]handlerFunc{
		ChoiceAdd:      s.handleAdd,
		ChoiceRemove:   s.handleRemove,
		ChoiceUpdate:   s.handleUpdate,
		ChoiceTopRated: s.handleTopRated,
		ChoiceCut:      s.handleCut,
		ChoiceOutput:   s.handleOutput,
	}

	return s
}

// Run loads the roster, serves menu choices until Quit and then saves.
// Nothing is saved when input ends before Quit.
func (s *Session) Run(ctx context.Context) error {
	found, err := s.service.Open(ctx)
	if err != nil {
		return err
	}
	if !found {
		s.printf("%s not found. Starting with an empty roster.\n", s.service.Source())
	}

	s.println(title)
	s.println("")

	for {
		writeMenu(s.out)
		n, err := s.prompter.Int("Enter choice: ", int(ChoiceAdd), int(ChoiceQuit))
		if err != nil {
			return err
		}

		choice := Choice(n)
		if choice == ChoiceQuit {
			break
		}

		handler, ok := s.handlers[choice]
		if !ok {
			return fmt.Errorf("no handler for menu choice %d", choice)
		}
		if err := handler(ctx); err != nil {
			return err
		}
		s.println("")
	}

	if err := s.service.Persist(ctx); err != nil {
		return err
	}
	s.println("Roster saved. Goodbye!")
	s.logger.InfoContext(ctx, "session finished")

	return nil
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
