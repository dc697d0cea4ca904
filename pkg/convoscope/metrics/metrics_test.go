package metrics

import (
	"strings"
	"testing"

	"github.com/cognicore/convoscope/pkg/convoscope/dataset"
)

func load(t *testing.T, payload string) *dataset.Dataset {
	t.Helper()
	original, _, err := dataset.Load(strings.NewReader(payload), dataset.Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return original
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil)
	if m.TotalConversations != 0 || m.TotalInteractions != 0 || m.Conversations != nil {
		t.Errorf("Expected zero metrics for nil dataset, got %+v", m)
	}

	m = Aggregate(load(t, "user_utterances,conversation_name,turn_position\n"))
	if m.TotalConversations != 0 || m.LengthDistribution != nil {
		t.Errorf("Expected zero metrics for empty dataset, got %+v", m)
	}
}

func TestAggregateScenario(t *testing.T) {
	payload := "user_utterances,conversation_name,turn_position\n" +
		"Hola,A,1\n" +
		"quiero rastrear mi pedido,A,2\n" +
		"hola buenos dias,B,1\n"
	m := Aggregate(load(t, payload))

	if m.TotalConversations != 2 {
		t.Errorf("TotalConversations = %d, want 2", m.TotalConversations)
	}
	if m.TotalInteractions != 3 {
		t.Errorf("TotalInteractions = %d, want 3", m.TotalInteractions)
	}
	if len(m.Conversations) != 2 {
		t.Fatalf("Expected 2 conversation stats, got %d", len(m.Conversations))
	}
	a := m.Conversations[0]
	if a.Conversation != "A" || a.MaxTurns != 2 || a.Interactions != 2 {
		t.Errorf("Conversation A stats wrong: %+v", a)
	}
	if m.AvgTurns != 1.5 || m.MedianTurns != 1.5 {
		t.Errorf("AvgTurns/MedianTurns = %v/%v, want 1.5/1.5", m.AvgTurns, m.MedianTurns)
	}
	if m.LongConversations != 0 {
		t.Errorf("LongConversations = %d, want 0", m.LongConversations)
	}
}

func TestAggregateNonContiguousTurns(t *testing.T) {
	// Max turn position defines conversation length even with gaps.
	payload := "user_utterances,conversation_name,turn_position\n" +
		"primera pregunta,A,1\n" +
		"pregunta muy tardia,A,12\n"
	m := Aggregate(load(t, payload))

	if m.Conversations[0].MaxTurns != 12 {
		t.Errorf("MaxTurns = %d, want 12", m.Conversations[0].MaxTurns)
	}
	if m.LongConversations != 1 {
		t.Errorf("LongConversations = %d, want 1", m.LongConversations)
	}
}

func TestMedianOddCount(t *testing.T) {
	payload := "user_utterances,conversation_name,turn_position\n" +
		"x uno,A,1\n" +
		"x dos,B,4\n" +
		"x tres,C,9\n"
	m := Aggregate(load(t, payload))

	if m.MedianTurns != 4 {
		t.Errorf("MedianTurns = %v, want 4", m.MedianTurns)
	}
}

func TestEscalationsAndEndings(t *testing.T) {
	payload := "user_utterances,conversation_name,turn_position,live_agent_handoff,end_session_exit\n" +
		"quiero un agente,A,1,1,0\n" +
		"sigo esperando respuesta,A,2,0,0\n" +
		"todo resuelto gracias,B,1,0,1\n" +
		"otra pregunta mas,C,1,0,0\n"
	m := Aggregate(load(t, payload))

	// Per-conversation OR, then counted once per conversation.
	if m.Escalations != 1 {
		t.Errorf("Escalations = %d, want 1", m.Escalations)
	}
	if m.Endings != 1 {
		t.Errorf("Endings = %d, want 1", m.Endings)
	}
	if !m.Conversations[0].Escalated || m.Conversations[0].Ended {
		t.Errorf("Conversation A flags wrong: %+v", m.Conversations[0])
	}
}

func TestFlagsAbsentColumns(t *testing.T) {
	payload := "user_utterances,conversation_name,turn_position\n" +
		"cualquier pregunta,A,1\n"
	m := Aggregate(load(t, payload))

	if m.Escalations != 0 || m.Endings != 0 {
		t.Errorf("Flags should be zero without their columns, got %+v", m)
	}
}

func TestLengthDistributionBuckets(t *testing.T) {
	payload := "user_utterances,conversation_name,turn_position\n" +
		"x a,A,2\n" +
		"x b,B,3\n" +
		"x c,C,5\n" +
		"x d,D,6\n" +
		"x e,E,10\n" +
		"x f,F,11\n"
	m := Aggregate(load(t, payload))

	want := map[string]int{
		"1-2 turnos":  1,
		"3-5 turnos":  2,
		"6-10 turnos": 2,
		"11+ turnos":  1,
	}
	for _, b := range m.LengthDistribution {
		if b.Count != want[b.Label] {
			t.Errorf("Bucket %q = %d, want %d", b.Label, b.Count, want[b.Label])
		}
	}
}
