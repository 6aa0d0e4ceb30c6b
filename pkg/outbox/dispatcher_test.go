package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomchat/companion/pkg/models"
)

type fakeEntrySource struct {
	entries []Entry
}

func (f *fakeEntrySource) FetchAfter(_ context.Context, cursor int64, limit int, kinds ...string) ([]Entry, error) {
	var out []Entry
	for _, e := range f.entries {
		if e.ID <= cursor {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeStreamStore struct {
	streams map[string]*models.Stream
	members map[string]bool // streamID+userID
}

func (f *fakeStreamStore) GetStream(_ context.Context, streamID string) (*models.Stream, error) {
	s, ok := f.streams[streamID]
	if !ok {
		return nil, fmt.Errorf("stream %s: %w", streamID, models.ErrNotFound)
	}
	return s, nil
}

func (f *fakeStreamStore) IsHumanMember(_ context.Context, streamID, userID string) (bool, error) {
	return f.members[streamID+"/"+userID], nil
}

type fakePersonaStore struct {
	byID   map[string]*models.Persona
	bySlug map[string]*models.Persona
}

func (f *fakePersonaStore) GetPersona(_ context.Context, id string) (*models.Persona, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("persona %s: %w", id, models.ErrNotFound)
	}
	return p, nil
}

func (f *fakePersonaStore) FindBySlug(_ context.Context, _, slug string) (*models.Persona, error) {
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("persona %s: %w", slug, models.ErrNotFound)
	}
	return p, nil
}

type fakeSessionReader struct {
	active   map[string]bool
	absorbed map[string]int64 // streamID/personaID
}

func (f *fakeSessionReader) HasActiveSession(_ context.Context, streamID string) (bool, error) {
	return f.active[streamID], nil
}

func (f *fakeSessionReader) LastAbsorbedSequence(_ context.Context, streamID, personaID string) (int64, error) {
	return f.absorbed[streamID+"/"+personaID], nil
}

type fakeQueue struct {
	sent []models.PersonaJob
}

func (f *fakeQueue) Send(_ context.Context, _ string, payload any) error {
	raw, _ := json.Marshal(payload)
	var job models.PersonaJob
	_ = json.Unmarshal(raw, &job)
	f.sent = append(f.sent, job)
	return nil
}

func messageEntry(id int64, p models.MessageCreatedPayload) Entry {
	raw, _ := json.Marshal(p)
	var m map[string]interface{}
	_ = json.Unmarshal(raw, &m)
	return Entry{ID: id, Kind: models.OutboxMessageCreated, Payload: m}
}

func newCompanionFixture() (*fakeStreamStore, *fakePersonaStore, *fakeSessionReader, *fakeQueue) {
	streams := &fakeStreamStore{
		streams: map[string]*models.Stream{
			"s1": {ID: "s1", WorkspaceID: "w1", Type: models.StreamChannel, CompanionMode: true, PersonaID: "p1"},
		},
		members: map[string]bool{"s1/alice": true},
	}
	personas := &fakePersonaStore{
		byID: map[string]*models.Persona{
			"p1": {ID: "p1", WorkspaceID: "w1", Slug: "sage", Active: true},
		},
	}
	sessions := &fakeSessionReader{active: map[string]bool{}, absorbed: map[string]int64{}}
	return streams, personas, sessions, &fakeQueue{}
}

func humanMessage(seq int64) models.MessageCreatedPayload {
	return models.MessageCreatedPayload{
		WorkspaceID:     "w1",
		StreamID:        "s1",
		MessageID:       "m1",
		AuthorID:        "alice",
		AuthorType:      models.AuthorHuman,
		Sequence:        seq,
		ContentMarkdown: "hello",
	}
}

func TestCompanionDispatcherEnqueues(t *testing.T) {
	streams, personas, sessions, queue := newCompanionFixture()
	src := &fakeEntrySource{entries: []Entry{messageEntry(1, humanMessage(5))}}
	d := NewCompanionDispatcher(src, streams, personas, sessions, queue, 100, slog.Default())

	cursor, err := d.Process(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cursor)
	require.Len(t, queue.sent, 1)
	assert.Equal(t, models.PersonaJob{
		WorkspaceID: "w1",
		StreamID:    "s1",
		MessageID:   "m1",
		PersonaID:   "p1",
		TriggeredBy: models.TriggerCompanion,
	}, queue.sent[0])
}

func TestCompanionDispatcherSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStreamStore, *fakePersonaStore, *fakeSessionReader, *models.MessageCreatedPayload)
	}{
		{
			name: "persona author",
			setup: func(_ *fakeStreamStore, _ *fakePersonaStore, _ *fakeSessionReader, p *models.MessageCreatedPayload) {
				p.AuthorType = models.AuthorPersona
			},
		},
		{
			name: "companion mode off",
			setup: func(s *fakeStreamStore, _ *fakePersonaStore, _ *fakeSessionReader, _ *models.MessageCreatedPayload) {
				s.streams["s1"].CompanionMode = false
			},
		},
		{
			name: "author not a member",
			setup: func(_ *fakeStreamStore, _ *fakePersonaStore, _ *fakeSessionReader, p *models.MessageCreatedPayload) {
				p.AuthorID = "mallory"
			},
		},
		{
			name: "stream deleted",
			setup: func(s *fakeStreamStore, _ *fakePersonaStore, _ *fakeSessionReader, _ *models.MessageCreatedPayload) {
				delete(s.streams, "s1")
			},
		},
		{
			name: "persona deleted",
			setup: func(_ *fakeStreamStore, ps *fakePersonaStore, _ *fakeSessionReader, _ *models.MessageCreatedPayload) {
				delete(ps.byID, "p1")
			},
		},
		{
			name: "persona inactive",
			setup: func(_ *fakeStreamStore, ps *fakePersonaStore, _ *fakeSessionReader, _ *models.MessageCreatedPayload) {
				ps.byID["p1"].Active = false
			},
		},
		{
			name: "session already active",
			setup: func(_ *fakeStreamStore, _ *fakePersonaStore, sr *fakeSessionReader, _ *models.MessageCreatedPayload) {
				sr.active["s1"] = true
			},
		},
		{
			name: "sequence already absorbed",
			setup: func(_ *fakeStreamStore, _ *fakePersonaStore, sr *fakeSessionReader, _ *models.MessageCreatedPayload) {
				sr.absorbed["s1/p1"] = 5
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streams, personas, sessions, queue := newCompanionFixture()
			payload := humanMessage(5)
			tt.setup(streams, personas, sessions, &payload)

			src := &fakeEntrySource{entries: []Entry{messageEntry(1, payload)}}
			d := NewCompanionDispatcher(src, streams, personas, sessions, queue, 100, slog.Default())

			cursor, err := d.Process(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1), cursor, "cursor advances past skipped entries")
			assert.Empty(t, queue.sent)
		})
	}
}

func TestCompanionDispatcherAbsorbedBoundary(t *testing.T) {
	// A sequence one past the absorbed high-water mark must dispatch.
	streams, personas, sessions, queue := newCompanionFixture()
	sessions.absorbed["s1/p1"] = 5
	src := &fakeEntrySource{entries: []Entry{messageEntry(1, humanMessage(6))}}
	d := NewCompanionDispatcher(src, streams, personas, sessions, queue, 100, slog.Default())

	_, err := d.Process(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, queue.sent, 1)
}

func TestCompanionDispatcherProcessesInOrder(t *testing.T) {
	streams, personas, sessions, queue := newCompanionFixture()
	first := humanMessage(5)
	second := humanMessage(6)
	second.MessageID = "m2"
	src := &fakeEntrySource{entries: []Entry{messageEntry(1, first), messageEntry(2, second)}}
	d := NewCompanionDispatcher(src, streams, personas, sessions, queue, 100, slog.Default())

	cursor, err := d.Process(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cursor)
	require.Len(t, queue.sent, 2)
	assert.Equal(t, "m1", queue.sent[0].MessageID)
	assert.Equal(t, "m2", queue.sent[1].MessageID)
}

func TestMentionDispatcher(t *testing.T) {
	personas := &fakePersonaStore{
		bySlug: map[string]*models.Persona{
			"sage":   {ID: "p1", WorkspaceID: "w1", Slug: "sage", Active: true},
			"scribe": {ID: "p2", WorkspaceID: "w1", Slug: "scribe", Active: false},
		},
	}

	t.Run("active persona gets one job per message", func(t *testing.T) {
		queue := &fakeQueue{}
		payload := humanMessage(5)
		payload.ContentMarkdown = "@sage hello, @sage are you there?"
		src := &fakeEntrySource{entries: []Entry{messageEntry(1, payload)}}
		d := NewMentionDispatcher(src, personas, queue, 100, slog.Default())

		_, err := d.Process(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, queue.sent, 1)
		assert.Equal(t, "p1", queue.sent[0].PersonaID)
		assert.Equal(t, models.TriggerMention, queue.sent[0].TriggeredBy)
	})

	t.Run("inactive or unknown personas produce no job", func(t *testing.T) {
		queue := &fakeQueue{}
		payload := humanMessage(5)
		payload.ContentMarkdown = "@scribe @ghost anyone home?"
		src := &fakeEntrySource{entries: []Entry{messageEntry(1, payload)}}
		d := NewMentionDispatcher(src, personas, queue, 100, slog.Default())

		cursor, err := d.Process(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), cursor)
		assert.Empty(t, queue.sent)
	})

	t.Run("unknown slug never pins the cursor", func(t *testing.T) {
		queue := &fakeQueue{}
		payload := humanMessage(5)
		payload.ContentMarkdown = "ping my @gmail address"
		follow := humanMessage(6)
		follow.MessageID = "m2"
		follow.ContentMarkdown = "@sage summarize this"
		src := &fakeEntrySource{entries: []Entry{messageEntry(1, payload), messageEntry(2, follow)}}
		d := NewMentionDispatcher(src, personas, queue, 100, slog.Default())

		cursor := int64(0)
		for i := 0; i < 3; i++ {
			var err error
			cursor, err = d.Process(context.Background(), cursor)
			require.NoError(t, err)
			assert.Equal(t, int64(2), cursor, "cursor advances past the unknown-slug entry")
		}
		require.Len(t, queue.sent, 1, "the entry behind the unknown slug still dispatches")
		assert.Equal(t, "p1", queue.sent[0].PersonaID)
	})

	t.Run("persona messages never re-trigger", func(t *testing.T) {
		queue := &fakeQueue{}
		payload := humanMessage(5)
		payload.AuthorType = models.AuthorPersona
		payload.ContentMarkdown = "thanks @sage"
		src := &fakeEntrySource{entries: []Entry{messageEntry(1, payload)}}
		d := NewMentionDispatcher(src, personas, queue, 100, slog.Default())

		_, err := d.Process(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, queue.sent)
	})
}
