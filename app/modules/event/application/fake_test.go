package eventservice

import (
	"context"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	"github.com/sports-arena/event-service/app/shared/sharedtypes"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Event Repo
// ------------------------

// FakeEventRepo is an in-memory EventRepository. Behavior can be overridden
// per method with the ...Func hooks; otherwise the stored rows answer.
type FakeEventRepo struct {
	trace  []string
	events map[sharedtypes.EventID]*eventdb.Event
	nextID sharedtypes.EventID

	CreateFunc           func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	GetByIDFunc          func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error)
	GetByIDForUpdateFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error)
}

func NewFakeEventRepo() *FakeEventRepo {
	return &FakeEventRepo{
		trace:  []string{},
		events: map[sharedtypes.EventID]*eventdb.Event{},
	}
}

func (f *FakeEventRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// Seed stores an event, assigning an ID when none is set.
func (f *FakeEventRepo) Seed(event *eventdb.Event) *eventdb.Event {
	if event.ID == 0 {
		f.nextID++
		event.ID = f.nextID
	} else if event.ID > f.nextID {
		f.nextID = event.ID
	}
	stored := *event
	f.events[event.ID] = &stored
	return event
}

func (f *FakeEventRepo) Create(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, event)
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	f.Seed(event)
	return nil
}

func (f *FakeEventRepo) GetByID(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return f.get(eventID)
}

func (f *FakeEventRepo) GetByIDForUpdate(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error) {
	f.record("GetByIDForUpdate")
	if f.GetByIDForUpdateFunc != nil {
		return f.GetByIDForUpdateFunc(ctx, db, eventID)
	}
	return f.get(eventID)
}

func (f *FakeEventRepo) get(eventID sharedtypes.EventID) (*eventdb.Event, error) {
	event, ok := f.events[eventID]
	if !ok {
		return nil, eventdb.ErrEventNotFound
	}
	out := *event
	return &out, nil
}

func (f *FakeEventRepo) ListAvailable(ctx context.Context, db bun.IDB, now time.Time) ([]eventdb.Event, error) {
	f.record("ListAvailable")
	var out []eventdb.Event
	for _, event := range f.events {
		if event.IsPublic && event.Status == sharedtypes.EventStatusPlanned && event.EventDate.After(now) {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *FakeEventRepo) Search(ctx context.Context, db bun.IDB, query string) ([]eventdb.Event, error) {
	f.record("Search")
	q := strings.ToLower(query)
	var out []eventdb.Event
	for _, event := range f.events {
		if !event.IsPublic || event.Status != sharedtypes.EventStatusPlanned {
			continue
		}
		haystack := strings.ToLower(event.Title + " " + event.Description + " " + event.Location + " " + event.SportType)
		if strings.Contains(haystack, q) {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *FakeEventRepo) ListByOrganizer(ctx context.Context, db bun.IDB, organizerID sharedtypes.UserID) ([]eventdb.Event, error) {
	f.record("ListByOrganizer")
	var out []eventdb.Event
	for _, event := range f.events {
		if event.OrganizerID == organizerID {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *FakeEventRepo) ListByIDs(ctx context.Context, db bun.IDB, eventIDs []sharedtypes.EventID) ([]eventdb.Event, error) {
	f.record("ListByIDs")
	var out []eventdb.Event
	for _, id := range eventIDs {
		if event, ok := f.events[id]; ok {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *FakeEventRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ eventdb.EventRepository = (*FakeEventRepo)(nil)

// ------------------------
// Fake Participant Repo
// ------------------------

type FakeParticipantRepo struct {
	trace  []string
	rows   []eventdb.Participant
	nextID sharedtypes.ParticipantID

	InsertFunc        func(ctx context.Context, db bun.IDB, participant *eventdb.Participant) error
	UpdateFunc        func(ctx context.Context, db bun.IDB, participant *eventdb.Participant) error
	CountAcceptedFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (int, error)
}

func NewFakeParticipantRepo() *FakeParticipantRepo {
	return &FakeParticipantRepo{trace: []string{}}
}

func (f *FakeParticipantRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// Seed stores a participant row, assigning an ID when none is set.
func (f *FakeParticipantRepo) Seed(participant *eventdb.Participant) *eventdb.Participant {
	if participant.ID == 0 {
		f.nextID++
		participant.ID = f.nextID
	} else if participant.ID > f.nextID {
		f.nextID = participant.ID
	}
	f.rows = append(f.rows, *participant)
	return participant
}

// Rows returns a copy of all stored rows.
func (f *FakeParticipantRepo) Rows() []eventdb.Participant {
	out := make([]eventdb.Participant, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *FakeParticipantRepo) Insert(ctx context.Context, db bun.IDB, participant *eventdb.Participant) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, participant)
	}
	now := time.Now()
	participant.CreatedAt = now
	participant.UpdatedAt = now
	f.Seed(participant)
	return nil
}

func (f *FakeParticipantRepo) Update(ctx context.Context, db bun.IDB, participant *eventdb.Participant) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, participant)
	}
	for i := range f.rows {
		if f.rows[i].ID == participant.ID {
			participant.UpdatedAt = time.Now()
			f.rows[i] = *participant
			return nil
		}
	}
	return eventdb.ErrParticipantNotFound
}

func (f *FakeParticipantRepo) GetByID(ctx context.Context, db bun.IDB, participantID sharedtypes.ParticipantID) (*eventdb.Participant, error) {
	f.record("GetByID")
	for i := range f.rows {
		if f.rows[i].ID == participantID {
			out := f.rows[i]
			return &out, nil
		}
	}
	return nil, eventdb.ErrParticipantNotFound
}

func (f *FakeParticipantRepo) FindActiveByPlayer(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, playerID sharedtypes.UserID) (*eventdb.Participant, error) {
	f.record("FindActiveByPlayer")
	for i := range f.rows {
		row := &f.rows[i]
		if row.EventID == eventID && row.Status != sharedtypes.ParticipantStatusRemoved &&
			row.PlayerID != nil && *row.PlayerID == playerID {
			out := *row
			return &out, nil
		}
	}
	return nil, nil
}

func (f *FakeParticipantRepo) FindActiveByEmail(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID, email string) (*eventdb.Participant, error) {
	f.record("FindActiveByEmail")
	for i := range f.rows {
		row := &f.rows[i]
		if row.EventID == eventID && row.Status != sharedtypes.ParticipantStatusRemoved &&
			strings.EqualFold(row.PlayerEmail, email) {
			out := *row
			return &out, nil
		}
	}
	return nil, nil
}

func (f *FakeParticipantRepo) ListByEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]eventdb.Participant, error) {
	f.record("ListByEvent")
	var out []eventdb.Participant
	for i := range f.rows {
		if f.rows[i].EventID == eventID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *FakeParticipantRepo) ListByPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.UserID) ([]eventdb.Participant, error) {
	f.record("ListByPlayer")
	var out []eventdb.Participant
	for i := range f.rows {
		if f.rows[i].PlayerID != nil && *f.rows[i].PlayerID == playerID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *FakeParticipantRepo) CountAccepted(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (int, error) {
	f.record("CountAccepted")
	if f.CountAcceptedFunc != nil {
		return f.CountAcceptedFunc(ctx, db, eventID)
	}
	count := 0
	for i := range f.rows {
		if f.rows[i].EventID == eventID && f.rows[i].Status == sharedtypes.ParticipantStatusAccepted {
			count++
		}
	}
	return count, nil
}

func (f *FakeParticipantRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ eventdb.ParticipantRepository = (*FakeParticipantRepo)(nil)

// ------------------------
// Fake Rating Source
// ------------------------

type FakeRatingSource struct {
	Average float64
	Count   int

	AggregateForEventFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error)
}

func (f *FakeRatingSource) AggregateForEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (float64, int, error) {
	if f.AggregateForEventFunc != nil {
		return f.AggregateForEventFunc(ctx, db, eventID)
	}
	return f.Average, f.Count, nil
}

var _ RatingSource = (*FakeRatingSource)(nil)

// ------------------------
// Fake Field Lookup
// ------------------------

type FakeFieldLookup struct {
	Status FieldStatus

	FieldExistsFunc func(ctx context.Context, fieldID int64) (FieldStatus, error)
}

func NewFakeFieldLookup() *FakeFieldLookup {
	return &FakeFieldLookup{Status: FieldStatus{Exists: true, Enabled: true}}
}

func (f *FakeFieldLookup) FieldExists(ctx context.Context, fieldID int64) (FieldStatus, error) {
	if f.FieldExistsFunc != nil {
		return f.FieldExistsFunc(ctx, fieldID)
	}
	return f.Status, nil
}

var _ FieldLookup = (*FakeFieldLookup)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type publishedMessage struct {
	Topic   string
	Message *message.Message
}

type FakePublisher struct {
	published []publishedMessage

	PublishFunc func(topic string, messages ...*message.Message) error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	if f.PublishFunc != nil {
		return f.PublishFunc(topic, messages...)
	}
	for _, msg := range messages {
		f.published = append(f.published, publishedMessage{Topic: topic, Message: msg})
	}
	return nil
}

// Topics returns the topics published to, in order.
func (f *FakePublisher) Topics() []string {
	out := make([]string, 0, len(f.published))
	for _, p := range f.published {
		out = append(out, p.Topic)
	}
	return out
}

var _ Publisher = (*FakePublisher)(nil)

// newTestService wires a service over the fakes with no real database.
func newTestService(events *FakeEventRepo, participants *FakeParticipantRepo, ratings *FakeRatingSource, fields *FakeFieldLookup, publisher *FakePublisher) *EventService {
	if ratings == nil {
		ratings = &FakeRatingSource{}
	}
	if fields == nil {
		fields = NewFakeFieldLookup()
	}
	var pub Publisher
	if publisher != nil {
		pub = publisher
	}
	return NewEventService(events, participants, ratings, fields, pub, nil, nil, nil, nil)
}
