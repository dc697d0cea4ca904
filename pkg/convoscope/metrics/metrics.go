// Package metrics computes conversation-level and corpus-level statistics
// over a loaded dataset. Aggregation always runs against the original
// dataset so turn counts are not skewed by noise filtering.
package metrics

import (
	"sort"

	"github.com/cognicore/convoscope/pkg/convoscope/dataset"
)

// LongConversationTurns is the threshold above which a conversation counts
// as long.
const LongConversationTurns = 10

// ConversationStats summarizes one conversation.
type ConversationStats struct {
	Conversation string
	MaxTurns     int
	Interactions int
	Escalated    bool
	Ended        bool
}

// LengthBucket is one slice of the conversation-length distribution.
type LengthBucket struct {
	Label string
	Count int
}

// Metrics holds corpus-level aggregates plus the per-conversation breakdown
// they were computed from. A zero Metrics means "no data".
type Metrics struct {
	TotalConversations int
	TotalInteractions  int
	AvgTurns           float64
	MedianTurns        float64
	LongConversations  int
	Escalations        int
	Endings            int

	Conversations      []ConversationStats
	LengthDistribution []LengthBucket
}

// Aggregate groups the dataset by conversation and computes fresh aggregates.
// Empty or nil input yields a zero Metrics, never an error. Conversations
// appear in first-appearance order; MaxTurns is the maximum turn position,
// which defines conversation length even when turns are not contiguous.
func Aggregate(d *dataset.Dataset) Metrics {
	if d.Len() == 0 {
		return Metrics{}
	}

	byName := make(map[string]int, d.Len())
	var convs []ConversationStats
	for _, rec := range d.Records {
		i, ok := byName[rec.Conversation]
		if !ok {
			i = len(convs)
			byName[rec.Conversation] = i
			convs = append(convs, ConversationStats{Conversation: rec.Conversation})
		}
		c := &convs[i]
		c.Interactions++
		if rec.Turn > c.MaxTurns {
			c.MaxTurns = rec.Turn
		}
		if d.HasEscalation && rec.Escalated {
			c.Escalated = true
		}
		if d.HasSessionEnd && rec.Ended {
			c.Ended = true
		}
	}

	m := Metrics{
		TotalConversations: len(convs),
		TotalInteractions:  d.Len(),
		Conversations:      convs,
	}

	turns := make([]int, len(convs))
	total := 0
	for i, c := range convs {
		turns[i] = c.MaxTurns
		total += c.MaxTurns
		if c.MaxTurns > LongConversationTurns {
			m.LongConversations++
		}
		if c.Escalated {
			m.Escalations++
		}
		if c.Ended {
			m.Endings++
		}
	}

	m.AvgTurns = float64(total) / float64(len(turns))
	m.MedianTurns = median(turns)
	m.LengthDistribution = lengthDistribution(turns)

	return m
}

func median(values []int) float64 {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// lengthDistribution buckets conversations by turn count. The buckets are
// fixed so distributions from different uploads are comparable.
func lengthDistribution(turns []int) []LengthBucket {
	buckets := []LengthBucket{
		{Label: "1-2 turnos"},
		{Label: "3-5 turnos"},
		{Label: "6-10 turnos"},
		{Label: "11+ turnos"},
	}
	for _, t := range turns {
		switch {
		case t <= 2:
			buckets[0].Count++
		case t <= 5:
			buckets[1].Count++
		case t <= LongConversationTurns:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}
