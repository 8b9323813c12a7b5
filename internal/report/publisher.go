package report

import (
	"context"
	"fmt"

	"github.com/vk/ppcheck/internal/config"
)

// Publisher pushes reports to an external destination.
type Publisher interface {
	Publish(ctx context.Context, reports []*FileReport) error
}

// NewPublishers builds one publisher per configured reporter.
func NewPublishers(reporters []*config.Reporter) ([]Publisher, error) {
	pubs := make([]Publisher, 0, len(reporters))
	for _, r := range reporters {
		switch {
		case r.Type == "socketio" && r.SocketIO != nil:
			pubs = append(pubs, NewSocketIO(r.SocketIO))
		default:
			return nil, fmt.Errorf("unsupported reporter %q", r.Type)
		}
	}
	return pubs, nil
}
