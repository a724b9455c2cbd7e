package views

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/config"
	"github.com/garrettborunda-lab/movefitrx-poc/events"
	"github.com/garrettborunda-lab/movefitrx-poc/progress"
)

const digestCacheSize = 128

type viewKind int

const (
	viewList viewKind = iota + 1
	viewDetail
)

// observer is one armed polling loop. The cancel function tears down its
// timer goroutine; inFlight guarantees a tick never overlaps itself.
type observer struct {
	kind      viewKind
	patientId string
	cancel    context.CancelFunc
	inFlight  atomic.Bool
}

// Synchronizer keeps the active clinician view consistent with the registry
// and log. At most one observer is armed at any instant. Mutations reach the
// view immediately through the event bus; the polling loop bounds staleness
// for anything the bus misses.
type Synchronizer struct {
	calculator *progress.Calculator
	renderer   Renderer
	logger     *zap.SugaredLogger
	interval   time.Duration

	mu      sync.Mutex
	active  *observer
	digests *simplelru.LRU

	unsubscribe func()
}

func NewSynchronizer(calculator *progress.Calculator, renderer Renderer, bus *events.Bus, cfg *config.Config, logger *zap.SugaredLogger) (*Synchronizer, error) {
	digests, err := simplelru.NewLRU(digestCacheSize, nil)
	if err != nil {
		return nil, err
	}

	s := &Synchronizer{
		calculator: calculator,
		renderer:   renderer,
		logger:     logger,
		interval:   cfg.PollInterval,
		digests:    digests,
	}
	s.unsubscribe = bus.Subscribe(s.onEvent)

	return s, nil
}

// ArmList arms the patient-list observer. Any previously armed observer is
// disarmed first, so arming is idempotent and duplicate timers cannot
// accumulate.
func (s *Synchronizer) ArmList() {
	s.arm(viewList, "")
}

// ArmDetail arms the detail observer for one specific patient.
func (s *Synchronizer) ArmDetail(patientId string) {
	s.arm(viewDetail, patientId)
}

// Disarm cancels the armed observer, if any. No tick fires after Disarm
// returns.
func (s *Synchronizer) Disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
}

// CloseDetail disarms the detail observer and re-arms the list observer,
// matching the panel transition back to the clinician list.
func (s *Synchronizer) CloseDetail() {
	s.ArmList()
}

func (s *Synchronizer) Close() {
	s.unsubscribe()
	s.Disarm()
}

func (s *Synchronizer) arm(kind viewKind, patientId string) {
	ctx, cancel := context.WithCancel(context.Background())
	obs := &observer{
		kind:      kind,
		patientId: patientId,
		cancel:    cancel,
	}

	s.mu.Lock()
	s.disarmLocked()
	s.active = obs
	s.mu.Unlock()

	// Render once right away; the timer only covers subsequent staleness.
	s.refresh(obs)
	go s.poll(ctx, obs)
}

func (s *Synchronizer) disarmLocked() {
	if s.active != nil {
		s.active.cancel()
		s.active = nil
	}
}

func (s *Synchronizer) poll(ctx context.Context, obs *observer) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(obs)
		}
	}
}

func (s *Synchronizer) onEvent(event events.Event) {
	s.mu.Lock()
	obs := s.active
	s.mu.Unlock()

	if obs != nil {
		s.refresh(obs)
	}
}

func (s *Synchronizer) refresh(obs *observer) {
	// At most one refresh in flight per observer; a tick that arrives while
	// the previous one is still rendering is skipped, never run concurrently.
	if !obs.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer obs.inFlight.Store(false)

	if !s.isArmed(obs) {
		return
	}

	ctx := context.Background()
	switch obs.kind {
	case viewList:
		s.refreshList(ctx, obs)
	case viewDetail:
		s.refreshDetail(ctx, obs)
	}
}

func (s *Synchronizer) refreshList(ctx context.Context, obs *observer) {
	summaries, err := s.calculator.ListSummaries(ctx)
	if err != nil {
		s.logger.Errorw("error computing patient list", "error", err)
		return
	}
	if !s.isArmed(obs) || !s.shouldRender("list", summaries) {
		return
	}
	if err := s.renderer.RenderPatientList(ctx, summaries); err != nil {
		s.logger.Errorw("error rendering patient list", "error", err)
	}
}

func (s *Synchronizer) refreshDetail(ctx context.Context, obs *observer) {
	detail, err := s.calculator.Detail(ctx, obs.patientId)
	if err != nil {
		s.logger.Errorw("error computing patient detail", "patientId", obs.patientId, "error", err)
		return
	}
	if !s.isArmed(obs) || !s.shouldRender("detail:"+obs.patientId, detail) {
		return
	}
	if err := s.renderer.RenderPatientDetail(ctx, detail); err != nil {
		s.logger.Errorw("error rendering patient detail", "patientId", obs.patientId, "error", err)
	}
}

func (s *Synchronizer) isArmed(obs *observer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active == obs
}

// shouldRender suppresses repaints of unchanged snapshots. The digest of the
// last rendered view model is kept per view key.
func (s *Synchronizer) shouldRender(key string, model interface{}) bool {
	encoded, err := json.Marshal(model)
	if err != nil {
		return true
	}
	h := fnv.New64a()
	_, _ = h.Write(encoded)
	digest := h.Sum64()

	s.mu.Lock()
	defer s.mu.Unlock()
	if previous, ok := s.digests.Get(key); ok && previous.(uint64) == digest {
		return false
	}
	s.digests.Add(key, digest)
	return true
}
