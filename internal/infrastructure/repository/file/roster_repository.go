package file

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	"github.com/riskibarqy/roster-manager/internal/platform/logging"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	InputPath  string
	OutputPath string
	Format     string
	// SkipMalformed drops bad records with a warning instead of failing Load.
	SkipMalformed bool
}

// record is one decoded snapshot item. pos is the 1-based line (text) or
// array index (json) used in diagnostics.
type record struct {
	pos   int
	entry roster.Entry
	err   error
}

// RosterRepository reads the roster from one file and writes it to another.
type RosterRepository struct {
	opts     Options
	validate *validator.Validate
	logger   *logging.Logger
}

func NewRosterRepository(opts Options, logger *logging.Logger) *RosterRepository {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	return &RosterRepository{
		opts:     opts,
		validate: validator.New(),
		logger:   logger,
	}
}

func (r *RosterRepository) Source() string {
	return "File " + r.opts.InputPath
}

func (r *RosterRepository) Load(ctx context.Context) (*roster.Roster, error) {
	raw, err := os.ReadFile(r.opts.InputPath)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, roster.ErrSourceNotFound
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read roster file %s", r.opts.InputPath)
	}

	var records []record
	switch r.opts.Format {
	case FormatJSON:
		records, err = decodeJSON(raw)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode roster file %s", r.opts.InputPath)
		}
	default:
		records, err = decodeText(raw)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode roster file %s", r.opts.InputPath)
		}
	}

	out := roster.New()
	for _, rec := range records {
		if rec.err == nil {
			if err := r.validate.StructCtx(ctx, rec.entry); err != nil {
				rec.err = crerr.Wrap(err, "entry out of range")
			}
		}
		if rec.err != nil {
			if !r.opts.SkipMalformed {
				return nil, crerr.Wrapf(rec.err, "%s %s %d", r.opts.InputPath, r.positionLabel(), rec.pos)
			}
			r.logger.WarnContext(ctx, "skipping malformed roster record",
				"file", r.opts.InputPath,
				r.positionLabel(), rec.pos,
				"error", rec.err,
			)
			continue
		}
		out.Set(rec.entry.JerseyNumber, rec.entry.Rating)
	}

	return out, nil
}

// positionLabel names what record.pos counts for the configured format.
func (r *RosterRepository) positionLabel() string {
	if r.opts.Format == FormatJSON {
		return "entry"
	}
	return "line"
}

func (r *RosterRepository) Save(ctx context.Context, rs *roster.Roster) error {
	entries := rs.Entries()

	var (
		body []byte
		err  error
	)
	switch r.opts.Format {
	case FormatJSON:
		body, err = encodeJSON(entries)
		if err != nil {
			return crerr.Wrap(err, "encode roster json")
		}
	default:
		body = encodeText(entries)
	}

	if err := os.WriteFile(r.opts.OutputPath, body, 0o644); err != nil {
		return crerr.Wrapf(err, "write roster file %s", r.opts.OutputPath)
	}

	r.logger.InfoContext(ctx, "roster file written", "file", r.opts.OutputPath, "players", len(entries))
	return nil
}
