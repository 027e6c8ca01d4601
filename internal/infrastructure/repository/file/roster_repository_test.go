package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/riskibarqy/roster-manager/internal/domain/roster"
)

func newTestRepository(t *testing.T, format, input string, skip bool) (*RosterRepository, string) {
	t.Helper()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "roster.txt")
	outPath := filepath.Join(dir, "update.txt")
	if input != "" {
		if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	repo := NewRosterRepository(Options{
		InputPath:     inPath,
		OutputPath:    outPath,
		Format:        format,
		SkipMalformed: skip,
	}, nil)
	return repo, outPath
}

func TestRosterRepository_LoadMissingFile(t *testing.T) {
	repo, _ := newTestRepository(t, FormatText, "", false)

	if _, err := repo.Load(context.Background()); !errors.Is(err, roster.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
	if !strings.HasPrefix(repo.Source(), "File ") || !strings.HasSuffix(repo.Source(), "roster.txt") {
		t.Fatalf("unexpected source: %q", repo.Source())
	}
}

func TestRosterRepository_LoadUnreadableIsNotMissing(t *testing.T) {
	dir := t.TempDir()
	repo := NewRosterRepository(Options{InputPath: dir, OutputPath: filepath.Join(dir, "update.txt")}, nil)

	_, err := repo.Load(context.Background())
	if err == nil {
		t.Fatalf("expected read error for a directory input")
	}
	if errors.Is(err, roster.ErrSourceNotFound) {
		t.Fatalf("unreadable input must not start an empty roster: %v", err)
	}
}

func TestRosterRepository_LoadText(t *testing.T) {
	repo, _ := newTestRepository(t, FormatText, "84 7\n\n  23\t4 extra\n4 5\n", false)

	rs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []roster.Entry{{JerseyNumber: 84, Rating: 7}, {JerseyNumber: 23, Rating: 4}, {JerseyNumber: 4, Rating: 5}}
	if got := rs.Entries(); !slices.Equal(got, want) {
		t.Fatalf("unexpected entries: got=%v want=%v", got, want)
	}
}

func TestRosterRepository_LoadMalformed(t *testing.T) {
	cases := map[string]string{
		"non integer":      "84 7\nabc 4\n",
		"missing rating":   "84 7\n23\n",
		"jersey too large": "84 7\n100 4\n",
		"rating zero":      "84 7\n23 0\n",
	}

	for name, input := range cases {
		t.Run(name+" fails by default", func(t *testing.T) {
			repo, _ := newTestRepository(t, FormatText, input, false)

			_, err := repo.Load(context.Background())
			if err == nil {
				t.Fatalf("expected load error")
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Fatalf("expected line number in error, got %v", err)
			}
		})

		t.Run(name+" skipped when configured", func(t *testing.T) {
			repo, _ := newTestRepository(t, FormatText, input, true)

			rs, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got := rs.Entries(); !slices.Equal(got, []roster.Entry{{JerseyNumber: 84, Rating: 7}}) {
				t.Fatalf("unexpected entries: %v", got)
			}
		})
	}
}

func TestRosterRepository_LoadLongLines(t *testing.T) {
	long := strings.Repeat("x", 70000)

	t.Run("long trailing tokens are ignored", func(t *testing.T) {
		repo, _ := newTestRepository(t, FormatText, "84 7\n1 2 "+long+"\n23 4\n", false)

		rs, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		want := []roster.Entry{{JerseyNumber: 84, Rating: 7}, {JerseyNumber: 1, Rating: 2}, {JerseyNumber: 23, Rating: 4}}
		if got := rs.Entries(); !slices.Equal(got, want) {
			t.Fatalf("unexpected entries: got=%v want=%v", got, want)
		}
	})

	t.Run("long malformed line fails at its own line", func(t *testing.T) {
		repo, _ := newTestRepository(t, FormatText, "84 7\n"+long+" 2\n23 4\n", false)

		_, err := repo.Load(context.Background())
		if err == nil {
			t.Fatalf("expected load error")
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("expected line number in error, got %v", err)
		}
		if len(err.Error()) > 1024 {
			t.Fatalf("expected a truncated diagnostic, got %d bytes", len(err.Error()))
		}
	})

	t.Run("long malformed line skipped keeps later lines", func(t *testing.T) {
		repo, _ := newTestRepository(t, FormatText, "84 7\n"+long+" 2\n23 4", true)

		rs, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		want := []roster.Entry{{JerseyNumber: 84, Rating: 7}, {JerseyNumber: 23, Rating: 4}}
		if got := rs.Entries(); !slices.Equal(got, want) {
			t.Fatalf("unexpected entries: got=%v want=%v", got, want)
		}
	})
}

func TestRosterRepository_SaveTextInInsertionOrder(t *testing.T) {
	repo, outPath := newTestRepository(t, FormatText, "", false)

	rs := roster.FromEntries([]roster.Entry{{JerseyNumber: 10, Rating: 3}, {JerseyNumber: 20, Rating: 9}, {JerseyNumber: 5, Rating: 1}})
	rs.Cut(5)
	if err := repo.Save(context.Background(), rs); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(raw) != "20 9\n" {
		t.Fatalf("unexpected output file: %q", raw)
	}
}

func TestRosterRepository_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			first := filepath.Join(dir, "a")
			second := filepath.Join(dir, "b")

			writer := NewRosterRepository(Options{InputPath: second, OutputPath: first, Format: format}, nil)
			reader := NewRosterRepository(Options{InputPath: first, OutputPath: second, Format: format}, nil)

			want := []roster.Entry{{JerseyNumber: 99, Rating: 10}, {JerseyNumber: 1, Rating: 1}, {JerseyNumber: 50, Rating: 6}}
			if err := writer.Save(context.Background(), roster.FromEntries(want)); err != nil {
				t.Fatalf("save: %v", err)
			}

			rs, err := reader.Load(context.Background())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got := rs.Entries(); !slices.Equal(got, want) {
				t.Fatalf("round trip mismatch: got=%v want=%v", got, want)
			}
		})
	}
}

func TestRosterRepository_JSON(t *testing.T) {
	t.Run("empty roster saves an empty array", func(t *testing.T) {
		repo, outPath := newTestRepository(t, FormatJSON, "", false)
		if err := repo.Save(context.Background(), roster.New()); err != nil {
			t.Fatalf("save: %v", err)
		}
		raw, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if strings.TrimSpace(string(raw)) != "[]" {
			t.Fatalf("unexpected output: %q", raw)
		}
	})

	t.Run("undecodable body always fails", func(t *testing.T) {
		repo, _ := newTestRepository(t, FormatJSON, "{not json", true)
		if _, err := repo.Load(context.Background()); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("out of range entry follows policy", func(t *testing.T) {
		input := `[{"jersey_number":7,"rating":4},{"jersey_number":7,"rating":12}]`

		strict, _ := newTestRepository(t, FormatJSON, input, false)
		_, err := strict.Load(context.Background())
		if err == nil {
			t.Fatalf("expected validation error")
		}
		if !strings.Contains(err.Error(), "entry 2") || strings.Contains(err.Error(), "line 2") {
			t.Fatalf("expected entry index in error, got %v", err)
		}

		lenient, _ := newTestRepository(t, FormatJSON, input, true)
		rs, err := lenient.Load(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if rating, ok := rs.Rating(7); !ok || rating != 4 {
			t.Fatalf("unexpected rating for 7: %d %t", rating, ok)
		}
	})
}
