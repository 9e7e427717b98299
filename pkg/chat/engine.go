package chat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"dreamlife-be/internal/constant"
	"dreamlife-be/internal/entity"
	"dreamlife-be/internal/pkg/logger"
	"dreamlife-be/pkg/llm"
	"dreamlife-be/pkg/vector"
)

type Mode string

const (
	ModeReused    Mode = "reused"
	ModeAdapted   Mode = "adapted"
	ModeGenerated Mode = "generated"
	ModeBlocked   Mode = "blocked"
)

type Source string

const (
	SourceDatabase Source = "database"
	SourceOpenAI   Source = "openai"
)

// Result is the engine's answer to a single question.
type Result struct {
	Answer     string  `json:"answer"`
	Mode       Mode    `json:"mode"`
	Source     Source  `json:"source"`
	Similarity float64 `json:"similarity,omitempty"`
}

// KnowledgeStore is the persistence boundary of the engine. FindAll is a
// full projected scan; Insert happens only on the generative path.
type KnowledgeStore interface {
	FindAll(ctx context.Context) ([]entity.KnowledgeEntry, error)
	Insert(ctx context.Context, entry *entity.KnowledgeEntry) error
}

// Embedder produces embeddings with optional cache-bypass semantics.
type Embedder interface {
	GetOrCreate(ctx context.Context, text string, forceNew bool) ([]float32, error)
	Size() int
}

// Engine resolves a free-text question into an answer: deterministic
// patterns first, then knowledge-base retrieval with banded reuse/adapt
// decisions, falling through to a generative call that also persists a
// new knowledge entry. All state (cache, metrics, in-flight guard) is
// owned by the instance, so isolated engines can coexist.
type Engine struct {
	cfg      Config
	embedder Embedder
	store    KnowledgeStore
	provider llm.LLMProvider
	logger   logger.ILogger
	metrics  *Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewEngine(
	cfg Config,
	embedder Embedder,
	store KnowledgeStore,
	provider llm.LLMProvider,
	log logger.ILogger,
) *Engine {
	return &Engine{
		cfg:      cfg,
		embedder: embedder,
		store:    store,
		provider: provider,
		logger:   log,
		metrics:  NewMetrics(),
		inFlight: make(map[string]struct{}),
	}
}

// HandleQuestion runs the full resolution pipeline. The only error it
// returns is an embedding failure for the question itself; every other
// failure degrades to a fallback answer.
func (e *Engine) HandleQuestion(ctx context.Context, question string) (*Result, error) {
	e.metrics.IncTotal()

	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return &Result{
			Answer: constant.ChatEmptyQuestionResponse,
			Mode:   ModeBlocked,
			Source: SourceOpenAI,
		}, nil
	}

	lower := strings.ToLower(trimmed)

	// 1. Scope filtering
	if !IsInScope(lower) {
		e.metrics.IncScopeBlocked()
		return &Result{
			Answer: constant.ChatOutOfScopeResponse,
			Mode:   ModeBlocked,
			Source: SourceOpenAI,
		}, nil
	}

	// 2. Direct deterministic pattern checks (cheap)
	if answer, ok := MatchDirectPattern(lower); ok {
		e.metrics.IncReused()
		return &Result{
			Answer:     answer,
			Mode:       ModeReused,
			Source:     SourceDatabase,
			Similarity: 1,
		}, nil
	}

	// 3. Pricing inquiry, same mechanism as a distinct step
	if MatchPricing(lower) {
		e.metrics.IncReused()
		return &Result{
			Answer:     constant.ChatPricingResponse,
			Mode:       ModeReused,
			Source:     SourceDatabase,
			Similarity: 1,
		}, nil
	}

	// 4. Embedding (with cache). A failure here is fatal for the request.
	questionEmbedding, err := e.embedder.GetOrCreate(ctx, trimmed, false)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	// 5. Retrieve knowledge-base candidates
	candidates := e.retrieveCandidates(ctx, questionEmbedding)

	if len(candidates) > 0 {
		top := candidates[0]
		if top.Similarity >= e.cfg.ReuseThreshold {
			e.metrics.IncReused()
			return &Result{
				Answer:     top.Content,
				Mode:       ModeReused,
				Source:     SourceDatabase,
				Similarity: top.Similarity,
			}, nil
		}
		if top.Similarity >= e.cfg.AdaptThreshold {
			answer := e.generateAdaptiveAnswer(ctx, trimmed, candidates)
			e.metrics.IncAdapted()
			return &Result{
				Answer:     answer,
				Mode:       ModeAdapted,
				Source:     SourceOpenAI,
				Similarity: top.Similarity,
			}, nil
		}
	}

	// 6. No suitable knowledge context: pure generative
	answer, generated := e.generateFreshAnswer(ctx, trimmed, candidates)
	e.metrics.IncGenerated()

	if generated {
		e.persistKnowledge(ctx, trimmed, answer, questionEmbedding, lower)
	}

	return &Result{
		Answer: answer,
		Mode:   ModeGenerated,
		Source: SourceOpenAI,
	}, nil
}

// Stats returns a read-only snapshot of the runtime counters.
func (e *Engine) Stats() Stats {
	return e.metrics.Snapshot(e.embedder.Size(), Thresholds{
		Reuse: e.cfg.ReuseThreshold,
		Adapt: e.cfg.AdaptThreshold,
	})
}

// retrieveCandidates scans the knowledge pool and ranks answers by the
// similarity of their question embeddings. A pool load failure degrades
// to an empty candidate list.
func (e *Engine) retrieveCandidates(ctx context.Context, queryEmbedding []float32) []vector.SearchResult {
	entries, err := e.store.FindAll(ctx)
	if err != nil {
		e.logger.Warn("ChatEngine", "Knowledge pool load failed, degrading to empty pool", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	pool := make([]vector.Entry, 0, len(entries))
	for _, entry := range entries {
		pool = append(pool, vector.Entry{
			Content:   entry.Answer,
			Embedding: entry.QuestionEmbedding,
		})
	}

	return vector.FindTopSimilar(queryEmbedding, pool, e.cfg.RetrievalThreshold, e.cfg.TopK)
}

// generateAdaptiveAnswer blends the top snippets into a fresh answer.
// Provider failure falls back to the top candidate verbatim.
func (e *Engine) generateAdaptiveAnswer(ctx context.Context, question string, candidates []vector.SearchResult) string {
	snippets := candidates
	if len(snippets) > 3 {
		snippets = snippets[:3]
	}

	var contextBuilder strings.Builder
	for i, c := range snippets {
		fmt.Fprintf(&contextBuilder, "Snippet %d (sim %.2f): %s\n", i+1, c.Similarity, c.Content)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.GenerateTimeout)
	defer cancel()

	answer, err := e.provider.Chat(callCtx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ChatAdaptiveSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: fmt.Sprintf("User question: %s\n\nKnowledge snippets:\n%s", question, contextBuilder.String())},
	},
		llm.WithTemperature(constant.ChatAdaptiveTemperature),
		llm.WithMaxTokens(constant.ChatAdaptiveMaxTokens),
	)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			e.logger.Warn("ChatEngine", "Adaptive generation failed, falling back to top candidate", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return e.fallbackAnswer(candidates)
	}

	return strings.TrimSpace(answer)
}

// generateFreshAnswer asks the provider for a scope-constrained answer.
// Below-band snippets, when present, ride along as optional context. The
// second return value reports whether the provider actually produced the
// answer; fallback answers are never persisted.
func (e *Engine) generateFreshAnswer(ctx context.Context, question string, candidates []vector.SearchResult) (string, bool) {
	userContent := question
	if len(candidates) > 0 {
		var contextBuilder strings.Builder
		for i, c := range candidates {
			fmt.Fprintf(&contextBuilder, "Note %d: %s\n", i+1, c.Content)
		}
		userContent = fmt.Sprintf("%s\n\nOptional background notes (may be loosely related):\n%s", question, contextBuilder.String())
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.GenerateTimeout)
	defer cancel()

	answer, err := e.provider.Chat(callCtx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ChatGenerativeSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: userContent},
	},
		llm.WithTemperature(constant.ChatGenerativeTemperature),
		llm.WithMaxTokens(constant.ChatGenerativeMaxTokens),
	)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			e.logger.Warn("ChatEngine", "Generative call failed, falling back", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return e.fallbackAnswer(candidates), false
	}

	return strings.TrimSpace(answer), true
}

func (e *Engine) fallbackAnswer(candidates []vector.SearchResult) string {
	if len(candidates) > 0 {
		return candidates[0].Content
	}
	return constant.ChatFallbackResponse
}

// persistKnowledge writes the generated pair back to the store. The
// answer text is embedded with forced no-cache semantics since that
// exact text will not recur verbatim as a question. Concurrent identical
// questions are deduplicated by an in-flight fingerprint guard; all
// failures here are logged and non-fatal.
func (e *Engine) persistKnowledge(ctx context.Context, question, answer string, questionEmbedding []float32, lower string) {
	fingerprint := questionFingerprint(lower)

	e.mu.Lock()
	if _, busy := e.inFlight[fingerprint]; busy {
		e.mu.Unlock()
		e.logger.Debug("ChatEngine", "Duplicate in-flight question, skipping knowledge write", map[string]interface{}{
			"fingerprint": fingerprint,
		})
		return
	}
	e.inFlight[fingerprint] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.inFlight, fingerprint)
		e.mu.Unlock()
	}()

	answerEmbedding, err := e.embedder.GetOrCreate(ctx, answer, true)
	if err != nil {
		e.logger.Error("ChatEngine", "Failed to embed generated answer, skipping knowledge write", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	entry := &entity.KnowledgeEntry{
		Question:          question,
		Answer:            strings.TrimSpace(answer),
		QuestionEmbedding: questionEmbedding,
		AnswerEmbedding:   answerEmbedding,
	}

	if err := e.store.Insert(ctx, entry); err != nil {
		e.logger.Error("ChatEngine", "Failed to save knowledge entry", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	e.logger.Info("ChatEngine", "Saved new knowledge entry", map[string]interface{}{
		"question": question,
	})
}

func questionFingerprint(lower string) string {
	sum := sha256.Sum256([]byte(lower))
	return hex.EncodeToString(sum[:])
}
