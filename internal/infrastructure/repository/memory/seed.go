package memory

import "github.com/riskibarqy/roster-manager/internal/domain/roster"

// SeedRoster is the demo roster served by the memory backend.
func SeedRoster() []roster.Entry {
	return []roster.Entry{
		{JerseyNumber: 84, Rating: 7},
		{JerseyNumber: 23, Rating: 4},
		{JerseyNumber: 4, Rating: 5},
		{JerseyNumber: 30, Rating: 2},
		{JerseyNumber: 66, Rating: 9},
	}
}
