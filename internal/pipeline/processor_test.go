package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// --- fakes ---

type fakeTemplates struct {
	defs map[uuid.UUID]*entity.ExtractionDefinition
	// callsUntilDrop simulates a definition being deleted mid-run: after
	// this many FindActiveDefinitionsByIDs calls, dropID stops resolving.
	calls          int
	callsUntilDrop int
	dropID         uuid.UUID
}

func (f *fakeTemplates) FindActiveDefinitionsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.ExtractionDefinition, error) {
	f.calls++
	var out []*entity.ExtractionDefinition
	for _, id := range ids {
		if f.callsUntilDrop > 0 && f.calls > f.callsUntilDrop && id == f.dropID {
			continue
		}
		if d, ok := f.defs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeTemplates) GetSummarizationPrompt(_ context.Context, id uuid.UUID) (*entity.SummarizationPrompt, error) {
	return nil, errors.New("not found")
}

type fakeFiles struct {
	files map[uuid.UUID]*entity.TranscriptFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.TranscriptFile, error) {
	if file, ok := f.files[id]; ok {
		return file, nil
	}
	return nil, errors.New("transcript file not found")
}

func (f *fakeFiles) Create(_ context.Context, _, _ string, _ *string, _ json.RawMessage) (*entity.TranscriptFile, error) {
	return nil, errors.New("not implemented")
}

type fakeSessions struct {
	sessions map[uuid.UUID]*entity.ProcessingSession
}

func (f *fakeSessions) Start(_ context.Context, req *repository.StartSessionRequest) (*entity.ProcessingSession, error) {
	s := &entity.ProcessingSession{
		ID:                      uuid.New(),
		FileID:                  req.FileID,
		ExtractionDefinitionIDs: req.ExtractionDefinitionIDs,
		SystemPrompt:            req.SystemPrompt,
		Model:                   req.Model,
		Status:                  string(constants.SessionProcessing),
	}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeSessions) Complete(_ context.Context, sessionID uuid.UUID, aiResponse string, parsed json.RawMessage, warning string, elapsedMs int64, tokenCount *int) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("session not found")
	}
	if s.Status == string(constants.SessionCompleted) || s.Status == string(constants.SessionFailed) {
		return fmt.Errorf("session %s is already terminal", sessionID)
	}
	s.Status = string(constants.SessionCompleted)
	s.AIResponse = &aiResponse
	s.ParsedResponse = parsed
	if warning != "" {
		s.ErrorMessage = &warning
	}
	s.ProcessingTimeMs = elapsedMs
	return nil
}

func (f *fakeSessions) Fail(_ context.Context, sessionID uuid.UUID, message string, aiResponse string, elapsedMs int64) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("session not found")
	}
	if s.Status == string(constants.SessionCompleted) || s.Status == string(constants.SessionFailed) {
		return fmt.Errorf("session %s is already terminal", sessionID)
	}
	s.Status = string(constants.SessionFailed)
	s.ErrorMessage = &message
	s.ProcessingTimeMs = elapsedMs
	return nil
}

func (f *fakeSessions) GetByID(_ context.Context, sessionID uuid.UUID) (*entity.ProcessingSession, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, errors.New("session not found")
}

func (f *fakeSessions) single(t *testing.T) *entity.ProcessingSession {
	t.Helper()
	if len(f.sessions) != 1 {
		t.Fatalf("sessions recorded = %d, want 1", len(f.sessions))
	}
	for _, s := range f.sessions {
		return s
	}
	return nil
}

type fakeResults struct {
	inserted  []*repository.InsertResultRequest
	summaries []*repository.InsertSummarizationRequest
	failKeys  map[string]bool
}

func (f *fakeResults) InsertExtractionResult(_ context.Context, req *repository.InsertResultRequest) (*entity.ExtractionResult, error) {
	if f.failKeys[req.ExtractionType] {
		return nil, errors.New("insert failed")
	}
	f.inserted = append(f.inserted, req)
	return &entity.ExtractionResult{
		ID:             uuid.New(),
		FileID:         req.FileID,
		SessionID:      req.SessionID,
		DefinitionID:   req.DefinitionID,
		ExtractionType: req.ExtractionType,
		Content:        req.Content,
		Model:          req.Model,
	}, nil
}

func (f *fakeResults) InsertSummarization(_ context.Context, req *repository.InsertSummarizationRequest) (*entity.Summarization, error) {
	f.summaries = append(f.summaries, req)
	return &entity.Summarization{
		ID:        uuid.New(),
		FileID:    req.FileID,
		SessionID: req.SessionID,
		Content:   req.Content,
		Model:     req.Model,
	}, nil
}

func (f *fakeResults) ListExtractionResultsByFile(_ context.Context, _ uuid.UUID) ([]*entity.ExtractionResult, error) {
	return nil, nil
}

func (f *fakeResults) ListSummarizationsByFile(_ context.Context, _ uuid.UUID) ([]*entity.Summarization, error) {
	return nil, nil
}

type fakeGenerator struct {
	raw string
	err error
}

func (f *fakeGenerator) Generate(_ context.Context, _ llm.GenerationRequest) (string, error) {
	return f.raw, f.err
}

type generatorFunc func(ctx context.Context, req llm.GenerationRequest) (string, error)

func (f generatorFunc) Generate(ctx context.Context, req llm.GenerationRequest) (string, error) {
	return f(ctx, req)
}

// --- fixture ---

type fixture struct {
	processor *Processor
	templates *fakeTemplates
	files     *fakeFiles
	sessions  *fakeSessions
	results   *fakeResults

	fileID uuid.UUID
	tasks  *entity.ExtractionDefinition
	mood   *entity.ExtractionDefinition
}

func newFixture(gen llm.Generator) *fixture {
	tasks := &entity.ExtractionDefinition{
		ID: uuid.New(), Name: "Tasks", JSONKey: "tasks",
		AIInstructions: "List every task.", OutputType: "array",
		Category: "extraction", IsActive: true, SortOrder: 1,
	}
	mood := &entity.ExtractionDefinition{
		ID: uuid.New(), Name: "Mood", JSONKey: "mood",
		AIInstructions: "Describe the speaker's mood.", OutputType: "value",
		Category: "datapoint", IsActive: true, SortOrder: 2,
	}
	templates := &fakeTemplates{defs: map[uuid.UUID]*entity.ExtractionDefinition{
		tasks.ID: tasks,
		mood.ID:  mood,
	}}

	fileID := uuid.New()
	text := "Remember to renew the passport and book flights."
	files := &fakeFiles{files: map[uuid.UUID]*entity.TranscriptFile{
		fileID: {ID: fileID, Filename: "note.m4a", TranscriptText: &text},
	}}

	sessions := &fakeSessions{sessions: make(map[uuid.UUID]*entity.ProcessingSession)}
	results := &fakeResults{failKeys: make(map[string]bool)}

	processor := NewProcessor(
		Config{Model: "test-model", MaxTokens: 1000},
		files, templates, sessions,
		llm.NewComposer(templates, nil),
		gen,
		NewRouter(results, nil),
		nil,
	)
	return &fixture{
		processor: processor, templates: templates, files: files,
		sessions: sessions, results: results,
		fileID: fileID, tasks: tasks, mood: mood,
	}
}

// --- tests ---

func TestProcessor_Run_Success(t *testing.T) {
	gen := &fakeGenerator{raw: `{"tasks":["renew passport","book flights"],"mood":"focused","summary":"Travel prep note."}`}
	fx := newFixture(gen)

	result, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                    fx.fileID,
		ExtractionDefinitionIDs:   []uuid.UUID{fx.tasks.ID, fx.mood.ID},
		CustomSummarizationPrompt: "Summarize in one sentence.",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.ExtractionResultsCount != 2 {
		t.Errorf("ExtractionResultsCount = %d, want 2", result.ExtractionResultsCount)
	}
	if !result.SummaryWritten {
		t.Error("SummaryWritten = false")
	}
	if result.Warning != "" {
		t.Errorf("Warning = %q, want empty", result.Warning)
	}

	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionCompleted) {
		t.Errorf("session status = %q, want completed", session.Status)
	}
	if session.ErrorMessage != nil {
		t.Errorf("session warning = %q, want none", *session.ErrorMessage)
	}
	if len(fx.results.inserted) != 2 {
		t.Fatalf("rows inserted = %d, want 2", len(fx.results.inserted))
	}
	// Row count for a completed session always equals the resolved selection.
	if got := len(fx.results.inserted); got != len(session.ExtractionDefinitionIDs) {
		t.Errorf("rows = %d, selection = %d", got, len(session.ExtractionDefinitionIDs))
	}
	if len(fx.results.summaries) != 1 {
		t.Fatalf("summaries inserted = %d, want 1", len(fx.results.summaries))
	}
	if fx.results.summaries[0].Content != "Travel prep note." {
		t.Errorf("summary content = %q", fx.results.summaries[0].Content)
	}
}

func TestProcessor_Run_BackendFailureDegradesToFallback(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream timeout")}
	fx := newFixture(gen)

	result, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil: fallback write succeeded", err)
	}

	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionFailed) {
		t.Errorf("session status = %q, want failed", session.Status)
	}
	if session.ErrorMessage == nil {
		t.Error("failed session has no error message")
	}

	if len(fx.results.inserted) != 2 {
		t.Fatalf("fallback rows = %d, want one per key", len(fx.results.inserted))
	}
	byKey := make(map[string]string)
	for _, r := range fx.results.inserted {
		byKey[r.ExtractionType] = string(r.Content)
	}
	if byKey["tasks"] != "[]" {
		t.Errorf("tasks fallback = %s, want []", byKey["tasks"])
	}
	if byKey["mood"] != `""` {
		t.Errorf("mood fallback = %s, want \"\"", byKey["mood"])
	}
	if result.ExtractionResultsCount != 2 {
		t.Errorf("ExtractionResultsCount = %d, want 2", result.ExtractionResultsCount)
	}
}

func TestProcessor_Run_CancellationFailsSessionAndWritesFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gen := generatorFunc(func(ctx context.Context, _ llm.GenerationRequest) (string, error) {
		// Caller aborts mid-call; the backend surfaces the cancellation.
		cancel()
		return "", ctx.Err()
	})
	fx := newFixture(gen)

	result, err := fx.processor.Run(ctx, &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil: fallback write succeeded", err)
	}

	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionFailed) {
		t.Errorf("session status = %q, want failed: cancelled runs must not stay processing", session.Status)
	}
	if session.ErrorMessage == nil || !strings.HasPrefix(*session.ErrorMessage, "cancelled:") {
		t.Errorf("session error = %v, want a cancelled-prefixed message", session.ErrorMessage)
	}
	if len(fx.results.inserted) != 2 {
		t.Fatalf("fallback rows = %d, want one per key despite cancellation", len(fx.results.inserted))
	}
	if result.ExtractionResultsCount != 2 {
		t.Errorf("ExtractionResultsCount = %d, want 2", result.ExtractionResultsCount)
	}
}

func TestProcessor_Run_BackendAndFallbackFailureSurfacesBoth(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream timeout")}
	fx := newFixture(gen)
	fx.results.failKeys["tasks"] = true

	_, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})
	if err == nil {
		t.Fatal("Run() error = nil, want the incomplete fallback write surfaced")
	}
	if !errors.Is(err, gen.err) {
		t.Errorf("error %v does not wrap the generation failure", err)
	}
	if !strings.Contains(err.Error(), "tasks") {
		t.Errorf("error %v does not name the failed write", err)
	}
	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionFailed) {
		t.Errorf("session status = %q, want failed", session.Status)
	}
}

func TestProcessor_Run_MalformedResponseCompletesWithWarning(t *testing.T) {
	gen := &fakeGenerator{raw: "Sorry, I can't help with that."}
	fx := newFixture(gen)

	result, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})
	if err != nil {
		t.Fatalf("Run() error = %v: malformed output must never escalate", err)
	}

	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionCompleted) {
		t.Errorf("session status = %q, want completed", session.Status)
	}
	if session.ErrorMessage == nil {
		t.Error("degraded completed session should record a warning")
	}
	if result.Warning == "" {
		t.Error("RunResult.Warning empty on degraded run")
	}
	if len(fx.results.inserted) != 2 {
		t.Errorf("fallback rows = %d, want 2", len(fx.results.inserted))
	}
}

func TestProcessor_Run_EmptySelection(t *testing.T) {
	fx := newFixture(&fakeGenerator{raw: "{}"})

	_, err := fx.processor.Run(context.Background(), &RunRequest{FileID: fx.fileID})
	if !errors.Is(err, llm.ErrEmptySelection) {
		t.Fatalf("Run() error = %v, want ErrEmptySelection", err)
	}
	if len(fx.sessions.sessions) != 0 {
		t.Error("empty selection must not create a session")
	}
}

func TestProcessor_Run_UnknownTemplate(t *testing.T) {
	fx := newFixture(&fakeGenerator{raw: "{}"})

	_, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{uuid.New()},
	})
	var unknown *llm.UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("Run() error = %v, want UnknownTemplateError", err)
	}
	if len(fx.sessions.sessions) != 0 {
		t.Error("unknown template must not create a session")
	}
}

func TestProcessor_Run_DefinitionDeletedMidRunAbortsWrites(t *testing.T) {
	gen := &fakeGenerator{raw: `{"tasks":["a"],"mood":"fine"}`}
	fx := newFixture(gen)
	// First resolution (composition) sees both definitions; the re-check
	// before writing no longer finds tasks.
	fx.templates.callsUntilDrop = 1
	fx.templates.dropID = fx.tasks.ID

	_, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})

	var integrity *DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("Run() error = %v, want DataIntegrityError", err)
	}
	if len(fx.results.inserted) != 0 {
		t.Errorf("rows inserted = %d, want 0: integrity violations abort all writes", len(fx.results.inserted))
	}
	session := fx.sessions.single(t)
	if session.Status != string(constants.SessionFailed) {
		t.Errorf("session status = %q, want failed", session.Status)
	}
}

func TestProcessor_Run_MissingFile(t *testing.T) {
	fx := newFixture(&fakeGenerator{raw: "{}"})

	_, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  uuid.New(),
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID},
	})
	var integrity *DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("Run() error = %v, want DataIntegrityError", err)
	}
	if len(fx.sessions.sessions) != 0 {
		t.Error("missing file must not create a session")
	}
}

func TestProcessor_Run_PartialWriteFailureKeepsSiblings(t *testing.T) {
	gen := &fakeGenerator{raw: `{"tasks":["a"],"mood":"fine"}`}
	fx := newFixture(gen)
	fx.results.failKeys["mood"] = true

	result, err := fx.processor.Run(context.Background(), &RunRequest{
		FileID:                  fx.fileID,
		ExtractionDefinitionIDs: []uuid.UUID{fx.tasks.ID, fx.mood.ID},
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.ExtractionResultsCount != 1 {
		t.Errorf("ExtractionResultsCount = %d, want 1", result.ExtractionResultsCount)
	}
	if result.Warning == "" {
		t.Error("partial write failure should surface as a warning")
	}
	if len(fx.results.inserted) != 1 || fx.results.inserted[0].ExtractionType != "tasks" {
		t.Errorf("surviving rows = %+v, want the tasks row", fx.results.inserted)
	}
}
