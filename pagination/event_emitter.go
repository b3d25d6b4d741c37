package pagination

import (
	"runtime/debug"
	"sync"
)

type emitterEvent interface {
	isEmitterEvent()
}

type emitterData interface {
	isEmitterData()
}

// eventEmitter delivers session events to subscribers. Each subscriber has
// its own queue: it sees events one at a time and in emit order, while
// different subscribers run concurrently. Emit never waits for a handler.
type eventEmitter struct {
	mtx  sync.Mutex
	subs map[emitterEvent]map[*subscriber]struct{} // nil key: every event
	log  logger
}

type subscriber struct {
	handler func(emitterData)
	once    bool

	mtx     sync.Mutex
	pending []emitterData
	running bool
}

func newEventEmitter(log logger) *eventEmitter {
	return &eventEmitter{
		subs: map[emitterEvent]map[*subscriber]struct{}{},
		log:  log,
	}
}

// deliver queues data and starts draining the queue unless a drain is
// already running.
func (s *subscriber) deliver(data emitterData, log logger) {
	s.mtx.Lock()
	s.pending = append(s.pending, data)
	if s.running {
		s.mtx.Unlock()
		return
	}
	s.running = true
	s.mtx.Unlock()

	go s.drain(log)
}

func (s *subscriber) drain(log logger) {
	for {
		s.mtx.Lock()
		if len(s.pending) == 0 {
			s.running = false
			s.mtx.Unlock()
			return
		}
		data := s.pending[0]
		s.pending = s.pending[1:]
		s.mtx.Unlock()

		s.call(data, log)
	}
}

func (s *subscriber) call(data emitterData, log logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic in session event handler: %v\n%s", r, debug.Stack())
		}
	}()
	s.handler(data)
}

func (em *eventEmitter) On(event emitterEvent, handle func(emitterData)) (off func()) {
	return em.subscribe(event, handle, false)
}

func (em *eventEmitter) OnAll(handle func(emitterData)) (off func()) {
	return em.subscribe(nil, handle, false)
}

func (em *eventEmitter) Once(event emitterEvent, handle func(emitterData)) (off func()) {
	return em.subscribe(event, handle, true)
}

func (em *eventEmitter) OnceAll(handle func(emitterData)) (off func()) {
	return em.subscribe(nil, handle, true)
}

func (em *eventEmitter) subscribe(event emitterEvent, handle func(emitterData), once bool) (off func()) {
	s := &subscriber{handler: handle, once: once}

	em.mtx.Lock()
	defer em.mtx.Unlock()
	set, ok := em.subs[event]
	if !ok {
		set = map[*subscriber]struct{}{}
		em.subs[event] = set
	}
	set[s] = struct{}{}

	return func() {
		em.mtx.Lock()
		defer em.mtx.Unlock()
		delete(em.subs[event], s)
	}
}

// Off removes the handlers registered for event with On or Once.
func (em *eventEmitter) Off(event emitterEvent) {
	em.mtx.Lock()
	defer em.mtx.Unlock()
	delete(em.subs, event)
}

// OffAll removes every handler.
func (em *eventEmitter) OffAll() {
	em.mtx.Lock()
	defer em.mtx.Unlock()
	em.subs = map[emitterEvent]map[*subscriber]struct{}{}
}

// Emit hands data to the handlers of event and to the catch-all handlers.
// Handlers may subscribe and unsubscribe from within a call.
func (em *eventEmitter) Emit(event emitterEvent, data emitterData) {
	for _, s := range em.take(event) {
		s.deliver(data, em.log)
	}
}

// take returns the subscribers for event, dropping the once subscribers.
func (em *eventEmitter) take(event emitterEvent) []*subscriber {
	em.mtx.Lock()
	defer em.mtx.Unlock()

	var subs []*subscriber
	collect := func(set map[*subscriber]struct{}) {
		for s := range set {
			if s.once {
				delete(set, s)
			}
			subs = append(subs, s)
		}
	}
	collect(em.subs[nil])
	if event != nil {
		collect(em.subs[event])
	}
	return subs
}
