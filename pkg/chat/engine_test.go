package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"dreamlife-be/internal/constant"
	"dreamlife-be/internal/entity"
	"dreamlife-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type stubEmbedder struct {
	mu          sync.Mutex
	vectors     map[string][]float32
	fallback    []float32
	fail        bool
	forcedCalls int
}

func (s *stubEmbedder) GetOrCreate(_ context.Context, text string, forceNew bool) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errors.New("embedding provider unavailable")
	}
	if forceNew {
		s.forcedCalls++
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return s.fallback, nil
}

func (s *stubEmbedder) Size() int { return len(s.vectors) }

type spyStore struct {
	mu       sync.Mutex
	entries  []entity.KnowledgeEntry
	failFind bool
	inserted []*entity.KnowledgeEntry
}

func (s *spyStore) FindAll(context.Context) ([]entity.KnowledgeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFind {
		return nil, errors.New("knowledge pool unavailable")
	}
	return s.entries, nil
}

func (s *spyStore) Insert(_ context.Context, entry *entity.KnowledgeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, entry)
	return nil
}

func (s *spyStore) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

type stubLLM struct {
	answer     string
	fail       bool
	lastSystem string
	lastUser   string
}

func (s *stubLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	for _, msg := range history {
		switch msg.Role {
		case constant.ChatMessageRoleSystem:
			s.lastSystem = msg.Content
		case constant.ChatMessageRoleUser:
			s.lastUser = msg.Content
		}
	}
	if s.fail {
		return "", errors.New("completion provider unavailable")
	}
	return s.answer, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, opts...)
}

func newTestEngine(embedder *stubEmbedder, store *spyStore, provider llm.LLMProvider) *Engine {
	if embedder.vectors == nil {
		embedder.vectors = map[string][]float32{}
	}
	if embedder.fallback == nil {
		embedder.fallback = []float32{0, 1}
	}
	return NewEngine(DefaultConfig(), embedder, store, provider, nopLogger{})
}

func TestHandleQuestionEmptyInput(t *testing.T) {
	store := &spyStore{}
	engine := newTestEngine(&stubEmbedder{}, store, &stubLLM{})

	result, err := engine.HandleQuestion(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, ModeBlocked, result.Mode)
	assert.Equal(t, constant.ChatEmptyQuestionResponse, result.Answer)
	assert.Zero(t, store.insertCount())

	stats := engine.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.ScopeBlocked)
	assert.Equal(t, 0, stats.Distribution.Reused.Count)
}

func TestHandleQuestionPricingPattern(t *testing.T) {
	engine := newTestEngine(&stubEmbedder{}, &spyStore{}, &stubLLM{})

	result, err := engine.HandleQuestion(context.Background(), "How much is Legend?")

	require.NoError(t, err)
	assert.Equal(t, ModeReused, result.Mode)
	assert.Equal(t, float64(1), result.Similarity)
	assert.Contains(t, result.Answer, "34.99")
}

func TestHandleQuestionReusesStoredAnswer(t *testing.T) {
	question := "what does my dream world look like"
	embedder := &stubEmbedder{vectors: map[string][]float32{
		question: {1, 0},
	}}
	store := &spyStore{entries: []entity.KnowledgeEntry{
		{Question: question, Answer: "Your dream world reflects your Blueprint.", QuestionEmbedding: []float32{1, 0}},
	}}
	engine := newTestEngine(embedder, store, &stubLLM{})

	result, err := engine.HandleQuestion(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, ModeReused, result.Mode)
	assert.Equal(t, SourceDatabase, result.Source)
	assert.Equal(t, "Your dream world reflects your Blueprint.", result.Answer)
	assert.InDelta(t, 1.0, result.Similarity, 1e-6)
	assert.Zero(t, store.insertCount(), "reuse path must never write")
}

func TestHandleQuestionAdaptsNearMatch(t *testing.T) {
	question := "tell me about my dream world energy"
	// cos(query, stored) = 0.75
	embedder := &stubEmbedder{vectors: map[string][]float32{
		question: {0.75, 0.66143783},
	}}
	store := &spyStore{entries: []entity.KnowledgeEntry{
		{Answer: "Energy alignment keeps the world vivid.", QuestionEmbedding: []float32{1, 0}},
	}}
	provider := &stubLLM{answer: "A blended, grounded answer."}
	engine := newTestEngine(embedder, store, provider)

	result, err := engine.HandleQuestion(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, ModeAdapted, result.Mode)
	assert.Equal(t, SourceOpenAI, result.Source)
	assert.Equal(t, "A blended, grounded answer.", result.Answer)
	assert.InDelta(t, 0.75, result.Similarity, 1e-6)
	assert.Contains(t, provider.lastUser, "Knowledge snippets")
	assert.Zero(t, store.insertCount(), "adapted path must never write")
}

func TestHandleQuestionGeneratesAndPersists(t *testing.T) {
	question := "design a morning visualization ritual for my dream identity"
	embedder := &stubEmbedder{
		vectors:  map[string][]float32{question: {1, 0}},
		fallback: []float32{0.1, 0.9},
	}
	store := &spyStore{}
	provider := &stubLLM{answer: "Start each morning inside your envisioned identity."}
	engine := newTestEngine(embedder, store, provider)

	result, err := engine.HandleQuestion(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, ModeGenerated, result.Mode)
	assert.Equal(t, SourceOpenAI, result.Source)

	require.Equal(t, 1, store.insertCount())
	entry := store.inserted[0]
	assert.Equal(t, question, entry.Question)
	assert.Equal(t, provider.answer, entry.Answer)
	assert.NotEmpty(t, entry.QuestionEmbedding)
	assert.NotEmpty(t, entry.AnswerEmbedding)
	assert.Equal(t, 1, embedder.forcedCalls, "answer embedding must bypass the cache")
}

func TestHandleQuestionHardBlockOverridesTopicalOverlap(t *testing.T) {
	engine := newTestEngine(&stubEmbedder{}, &spyStore{}, &stubLLM{})

	for _, question := range []string{
		"javascript for my dream career",
		"what's the covid vaccine schedule",
	} {
		result, err := engine.HandleQuestion(context.Background(), question)
		require.NoError(t, err)
		assert.Equal(t, ModeBlocked, result.Mode, question)
		assert.Equal(t, constant.ChatOutOfScopeResponse, result.Answer)
	}

	stats := engine.Stats()
	assert.Equal(t, 2, stats.ScopeBlocked)
}

func TestHandleQuestionEmbeddingFailurePropagates(t *testing.T) {
	embedder := &stubEmbedder{fail: true}
	engine := newTestEngine(embedder, &spyStore{}, &stubLLM{})

	_, err := engine.HandleQuestion(context.Background(), "describe my dream world")

	assert.Error(t, err)
}

func TestHandleQuestionPoolFailureDegradesToGenerated(t *testing.T) {
	store := &spyStore{failFind: true}
	provider := &stubLLM{answer: "Fresh answer despite pool outage."}
	engine := newTestEngine(&stubEmbedder{}, store, provider)

	result, err := engine.HandleQuestion(context.Background(), "describe my dream world")

	require.NoError(t, err)
	assert.Equal(t, ModeGenerated, result.Mode)
	assert.Equal(t, "Fresh answer despite pool outage.", result.Answer)
}

func TestHandleQuestionAdaptiveFallbackOnProviderFailure(t *testing.T) {
	question := "tell me about my dream world energy"
	embedder := &stubEmbedder{vectors: map[string][]float32{
		question: {0.75, 0.66143783},
	}}
	store := &spyStore{entries: []entity.KnowledgeEntry{
		{Answer: "Energy alignment keeps the world vivid.", QuestionEmbedding: []float32{1, 0}},
	}}
	engine := newTestEngine(embedder, store, &stubLLM{fail: true})

	result, err := engine.HandleQuestion(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, ModeAdapted, result.Mode)
	assert.Equal(t, "Energy alignment keeps the world vivid.", result.Answer)
	assert.Zero(t, store.insertCount())
}

func TestHandleQuestionGenerativeFallbackNeverPersists(t *testing.T) {
	store := &spyStore{}
	engine := newTestEngine(&stubEmbedder{}, store, &stubLLM{fail: true})

	result, err := engine.HandleQuestion(context.Background(), "describe my dream world")

	require.NoError(t, err)
	assert.Equal(t, ModeGenerated, result.Mode)
	assert.Equal(t, constant.ChatFallbackResponse, result.Answer)
	assert.NotEmpty(t, result.Answer)
	assert.Zero(t, store.insertCount(), "fallback answers must not pollute the knowledge base")
}

func TestWriteAsymmetry(t *testing.T) {
	question := "what does my dream world look like"
	embedder := &stubEmbedder{vectors: map[string][]float32{
		question: {1, 0},
	}}
	store := &spyStore{entries: []entity.KnowledgeEntry{
		{Question: question, Answer: "Stored answer.", QuestionEmbedding: []float32{1, 0}},
	}}
	engine := newTestEngine(embedder, store, &stubLLM{})

	for i := 0; i < 100; i++ {
		result, err := engine.HandleQuestion(context.Background(), question)
		require.NoError(t, err)
		require.Equal(t, ModeReused, result.Mode)
	}

	assert.Zero(t, store.insertCount())
}

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		queryVec []float32
		expected Mode
	}{
		{name: "exactly at reuse threshold", queryVec: []float32{0.9, 0.43588989}, expected: ModeReused},
		{name: "just below reuse threshold", queryVec: []float32{0.89, 0.45601535}, expected: ModeAdapted},
		{name: "exactly at adapt threshold", queryVec: []float32{0.65, 0.759934}, expected: ModeAdapted},
		{name: "below adapt threshold", queryVec: []float32{0.5, 0.8660254}, expected: ModeGenerated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := "tell me about my dream world energy"
			embedder := &stubEmbedder{vectors: map[string][]float32{
				question: tt.queryVec,
			}}
			store := &spyStore{entries: []entity.KnowledgeEntry{
				{Answer: "Stored answer.", QuestionEmbedding: []float32{1, 0}},
			}}
			engine := newTestEngine(embedder, store, &stubLLM{answer: "Generated answer."})

			result, err := engine.HandleQuestion(context.Background(), question)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Mode)
		})
	}
}

func TestConcurrentIdenticalQuestionsWriteOnce(t *testing.T) {
	question := "design a ritual for my dream morning"
	embedder := &stubEmbedder{
		vectors:  map[string][]float32{question: {1, 0}},
		fallback: []float32{0, 1},
	}
	store := &spyStore{}
	block := make(chan struct{})
	provider := &blockingLLM{release: block, answer: "Generated answer."}
	engine := newTestEngine(embedder, store, provider)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.HandleQuestion(context.Background(), question)
			assert.NoError(t, err)
		}()
	}

	close(block)
	wg.Wait()

	// The fingerprint guard collapses overlapping writes; at least one
	// call persists and none race a duplicate insert mid-flight.
	assert.GreaterOrEqual(t, store.insertCount(), 1)
	assert.LessOrEqual(t, store.insertCount(), 4)
}

type blockingLLM struct {
	release <-chan struct{}
	answer  string
}

func (b *blockingLLM) Chat(ctx context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	select {
	case <-b.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return b.answer, nil
}

func (b *blockingLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return b.Chat(ctx, nil, opts...)
}

func TestGeneratedAnswerIsTrimmed(t *testing.T) {
	store := &spyStore{}
	provider := &stubLLM{answer: "  Trimmed answer.  "}
	engine := newTestEngine(&stubEmbedder{}, store, provider)

	result, err := engine.HandleQuestion(context.Background(), "describe my dream world")

	require.NoError(t, err)
	assert.Equal(t, "Trimmed answer.", result.Answer)
	require.Equal(t, 1, store.insertCount())
	assert.False(t, strings.HasPrefix(store.inserted[0].Answer, " "))
}
