package region

// ObserverState tracks an Observer's position in its lifecycle:
// Created -> Subscribed -> Receiving -> Done. Kept for diagnostics only:
// Publisher never checks it, so double subscription and delivery after
// Done are not prevented.
type ObserverState int

const (
	ObserverCreated ObserverState = iota
	ObserverSubscribed
	ObserverReceiving
	ObserverDone
)

func (s ObserverState) String() string {
	switch s {
	case ObserverCreated:
		return "Created"
	case ObserverSubscribed:
		return "Subscribed"
	case ObserverReceiving:
		return "Receiving"
	case ObserverDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Event is a single kind-tagged message delivered by a Publisher to its
// Subscribers. Payload carries the event's data -- conventionally a
// Region for a begin/end, or a RegionPair for an intersect.
type Event struct {
	Kind    EventKind
	Payload any
}

// Observer receives events from a Publisher it has subscribed to. OnInit
// fires once before the first event; OnEvent fires once per delivered
// Event; OnDone fires once after the Publisher has published its last
// event. Event.Kind is a closed enum (EventBegin/EventIntersect/EventEnd),
// so an Observer dispatches with an exhaustive switch on it rather than a
// runtime on_<kind> lookup by name.
type Observer interface {
	OnInit()
	OnEvent(Event)
	OnDone()
}

// HandlerFn processes a single Event.
type HandlerFn func(Event)

// Subscriber is an Observer that dispatches events to the handler
// registered for their kind via On, falling back to a default handler
// registered with OnDefault. Dispatch in OnEvent is an exhaustive switch
// over the closed EventKind enum, matching dimensionObserver.OnEvent's
// dispatch in graph.go, not a map keyed by an open-ended name.
type Subscriber struct {
	state       ObserverState
	onInit      func()
	onDone      func()
	onBegin     HandlerFn
	onIntersect HandlerFn
	onEnd       HandlerFn
	fallback    HandlerFn
}

// NewSubscriber constructs an empty Subscriber; register handlers with On,
// OnInitFn, OnDoneFn and OnDefault before subscribing it to a Publisher.
func NewSubscriber() *Subscriber {
	return &Subscriber{}
}

// OnInitFn registers the handler run once before the first event.
func (s *Subscriber) OnInitFn(fn func()) *Subscriber {
	s.onInit = fn
	return s
}

// OnDoneFn registers the handler run once after the last event.
func (s *Subscriber) OnDoneFn(fn func()) *Subscriber {
	s.onDone = fn
	return s
}

// On registers the handler invoked for events of the given kind.
func (s *Subscriber) On(kind EventKind, fn HandlerFn) *Subscriber {
	switch kind {
	case EventBegin:
		s.onBegin = fn
	case EventIntersect:
		s.onIntersect = fn
	case EventEnd:
		s.onEnd = fn
	}
	return s
}

// OnDefault registers the handler invoked for events whose kind has no
// specific handler registered via On.
func (s *Subscriber) OnDefault(fn HandlerFn) *Subscriber {
	s.fallback = fn
	return s
}

// State returns the Subscriber's current lifecycle state.
func (s *Subscriber) State() ObserverState { return s.state }

// OnInit implements Observer.
func (s *Subscriber) OnInit() {
	s.state = ObserverReceiving
	if s.onInit != nil {
		s.onInit()
	}
}

// OnEvent implements Observer, dispatching by Event.Kind with an
// exhaustive switch over the closed EventKind enum.
func (s *Subscriber) OnEvent(ev Event) {
	var fn HandlerFn
	switch ev.Kind {
	case EventBegin:
		fn = s.onBegin
	case EventIntersect:
		fn = s.onIntersect
	case EventEnd:
		fn = s.onEnd
	}
	if fn != nil {
		fn(ev)
		return
	}
	if s.fallback != nil {
		s.fallback(ev)
	}
}

// OnDone implements Observer.
func (s *Subscriber) OnDone() {
	s.state = ObserverDone
	if s.onDone != nil {
		s.onDone()
	}
}

// Publisher is a synchronous, single-threaded, FIFO event bus: Publish
// queues an event for delivery to every current Subscriber and drains the
// queue in order before returning. There is
// no background goroutine -- delivery happens on the publishing
// goroutine, matching the teacher's preference for explicit, synchronous
// control flow over implicit fan-out.
type Publisher struct {
	subs  []Observer
	queue []Event
}

// NewPublisher constructs an empty Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscribe registers obs to receive every event published from this
// point on, and immediately calls obs.OnInit.
func (p *Publisher) Subscribe(obs Observer) {
	if sub, ok := obs.(*Subscriber); ok {
		sub.state = ObserverSubscribed
	}
	obs.OnInit()
	p.subs = append(p.subs, obs)
}

// Publish enqueues ev and immediately delivers it, in FIFO order, to every
// subscriber, including any events enqueued by earlier deliveries of
// events already in the queue.
func (p *Publisher) Publish(ev Event) {
	p.queue = append(p.queue, ev)
	p.drain()
}

func (p *Publisher) drain() {
	for len(p.queue) > 0 {
		ev := p.queue[0]
		p.queue = p.queue[1:]
		for _, obs := range p.subs {
			obs.OnEvent(ev)
		}
	}
}

// Done notifies every subscriber that no further events will be
// published.
func (p *Publisher) Done() {
	for _, obs := range p.subs {
		obs.OnDone()
	}
}
