package manager

import "github.com/rs/zerolog"

// ZerologPublisher forwards manager events to a structured logger.
type ZerologPublisher struct {
	log zerolog.Logger
}

func NewZerologPublisher(log zerolog.Logger) *ZerologPublisher {
	return &ZerologPublisher{log: log}
}

func (p *ZerologPublisher) Publish(e Event) {
	ev := p.log.Info().Str("event", e.Name).Str("backend", e.BackendID)
	for k, v := range e.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg("manager event")
}
